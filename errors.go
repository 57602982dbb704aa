// SPDX-License-Identifier: MIT

package robotstxt

import "errors"

// Sentinel errors for robotstxt operations.
var (
	// ErrReadRobotsBody indicates a read failure on the io.Reader passed to ParseReader.
	ErrReadRobotsBody = errors.New("read robots.txt body")
	// ErrParseURL indicates PathFromURL was given a URL net/url could not parse.
	ErrParseURL = errors.New("parse url")
)
