// SPDX-License-Identifier: MIT

package robotstxt

import (
	"io"

	"github.com/sirupsen/logrus"
)

// maxLineLength is the per-line truncation cap: 2083 * 8, derived from a
// historical maximum-URL-length heuristic. Do not change this constant
// without corpus testing.
const maxLineLength = 2083 * 8

// ParseOptions bundles optional, rarely-changed knobs for Parse/ParseReader.
// The zero value is a fully functional, silent configuration.
type ParseOptions struct {
	// logger receives Debug-level diagnostics for tolerated parse anomalies.
	// buildParseOptions sets it to a discard logger, and NewLexer substitutes
	// one when it is nil.
	logger *logrus.Entry
	// maxLineLength overrides the 16,664-byte truncation cap, mainly for tests
	// that want to exercise truncation without 16KB fixtures.
	maxLineLength int
}

// ParseOption configures a ParseOptions value.
type ParseOption func(*ParseOptions)

// WithLogger attaches a structured diagnostic logger. Diagnostics are
// Debug-level only: truncated lines and lines with no discernible
// separator. Nothing logged here is ever surfaced as an error.
func WithLogger(logger *logrus.Entry) ParseOption {
	return func(o *ParseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxLineLength overrides the per-line truncation cap. Intended for
// tests; production callers should leave this at its default.
func WithMaxLineLength(n int) ParseOption {
	return func(o *ParseOptions) {
		if n > 0 {
			o.maxLineLength = n
		}
	}
}

func buildParseOptions(opts []ParseOption) *ParseOptions {
	o := &ParseOptions{
		logger:        discardLogger(),
		maxLineLength: maxLineLength,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// discardLogger is the null-object default: a real *logrus.Entry whose
// output goes nowhere, so callers of Debug/WithField never need a nil check.
func discardLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
