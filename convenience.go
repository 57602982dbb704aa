// SPDX-License-Identifier: MIT

package robotstxt

import (
	"io"
	"net/url"

	"golang.org/x/xerrors"
)

// Parse builds a RuleSet from the raw bytes of a robots.txt document. Parse
// never returns a non-nil error: parsing is permissive and total, and every
// tolerated anomaly degrades to "ignore this line." The error return exists
// only to keep Parse's and ParseReader's signatures interchangeable at call
// sites.
func Parse(robotsBody []byte, opts ...ParseOption) (*RuleSet, error) {
	o := buildParseOptions(opts)
	lex := NewLexer(robotsBody, o)
	return parseDirectives(lex), nil
}

// ParseReader reads robotsBody in full from r and parses it. It is the only
// parse entry point in this package that can fail, and only because reading
// from r failed; a read failure is wrapped in ErrReadRobotsBody.
func ParseReader(r io.Reader, opts ...ParseOption) (*RuleSet, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, xerrors.Errorf("%w: %v", ErrReadRobotsBody, err)
	}
	return Parse(body, opts...)
}

// IsUserAgentAllowed is the one-shot convenience form: parse robotsBody and
// decide whether userAgent may fetch rawURL. Equivalent to calling Parse
// followed by RuleSet.AllowedByRobots, amortizing nothing — callers checking
// more than one URL against the same document should use the two-step form
// instead.
func IsUserAgentAllowed(robotsBody []byte, userAgent, rawURL string) bool {
	rs, _ := Parse(robotsBody)
	return rs.AllowedByRobots(userAgent, rawURL)
}

// PathFromURL extracts the path+query+fragment component of rawURL, the
// form the matcher expects (beginning with "/"). A rawURL that net/url
// cannot parse degrades to the empty path and a wrapped ErrParseURL — a
// conservative result for programmer misuse, not a hard failure. A rawURL
// that parses successfully but carries no path (for example the empty
// string, or a bare "http://host" with nothing after the authority)
// defaults to "/", the same default a bare-domain URL resolves to in
// practice.
func PathFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", xerrors.Errorf("%w: %v", ErrParseURL, err)
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		path += "#" + u.EscapedFragment()
	}
	return path, nil
}
