// SPDX-License-Identifier: MIT

package robotstxt

import "strings"

// keyTable maps a lowercased directive key to its DirectiveKind. Multiple
// spellings (including common typos) map to the same kind; the REP draft
// leaves these unrecognized, but real-world robots.txt files rely on
// tolerance for them.
var keyTable = map[string]DirectiveKind{
	"user-agent": KindUserAgent,
	"useragent":  KindUserAgent,
	"user agent": KindUserAgent,

	"allow": KindAllow,

	"disallow": KindDisallow,
	"dissallow": KindDisallow,
	"dissalow":  KindDisallow,
	"disalow":   KindDisallow,
	"diasllow":  KindDisallow,
	"disallaw":  KindDisallow,

	"sitemap":  KindSitemap,
	"site-map": KindSitemap,
}

// Lexer tokenizes raw robots.txt bytes into a stream of Directive values.
// It tracks 1-based line numbers and tolerates the syntactic noise common in
// real-world robots.txt files: comments, missing colons, and overlong
// lines.
type Lexer struct {
	data    []byte
	pos     int
	line    int
	maxLine int
	logger  logDebugger
}

// logDebugger is the minimal surface of *logrus.Entry the lexer needs;
// declared as an interface so tests can assert against a fake without
// constructing a real logrus entry.
type logDebugger interface {
	Debugf(format string, args ...interface{})
}

// NewLexer creates a Lexer over robotsBody using the given options (or
// package defaults if opts is nil, or for any field of opts left at its zero
// value).
func NewLexer(robotsBody []byte, opts *ParseOptions) *Lexer {
	if opts == nil {
		opts = buildParseOptions(nil)
	}
	l := &Lexer{
		data:    robotsBody,
		maxLine: opts.maxLineLength,
		logger:  opts.logger,
	}
	if opts.logger == nil {
		l.logger = discardLogger()
	}
	if l.maxLine <= 0 {
		l.maxLine = maxLineLength
	}
	return l
}

// Next returns the next Directive in the stream and true, or a zero
// Directive and false once the input is exhausted. Blank lines (and lines
// that become blank once their comment is stripped) are skipped silently,
// so Next never returns a Directive for them.
func (l *Lexer) Next() (Directive, bool) {
	for l.pos < len(l.data) {
		raw, consumed := l.nextLine()
		l.pos += consumed
		l.line++

		if len(raw) > l.maxLine {
			l.logger.Debugf("robots.txt: line %d truncated from %d to %d bytes", l.line, len(raw), l.maxLine)
			raw = raw[:l.maxLine]
		}

		raw = stripComment(raw)
		trimmed := trimASCIISpace(string(raw))
		if trimmed == "" {
			continue
		}

		d, ok := directiveFrom(trimmed)
		if !ok {
			l.logger.Debugf("robots.txt: line %d has no discernible separator", l.line)
		}
		d.Line = l.line
		return d, true
	}
	return Directive{}, false
}

// nextLine returns the next logical line (excluding its terminator) and the
// number of input bytes consumed, including the terminator. Lines terminate
// at LF, CR, or CRLF.
func (l *Lexer) nextLine() ([]byte, int) {
	rest := l.data[l.pos:]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '\n':
			return rest[:i], i + 1
		case '\r':
			if i+1 < len(rest) && rest[i+1] == '\n' {
				return rest[:i], i + 2
			}
			return rest[:i], i + 1
		}
	}
	return rest, len(rest)
}

// stripComment discards the first '#' on a line and everything after it.
func stripComment(line []byte) []byte {
	if i := indexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// directiveFrom maps one trimmed, non-empty line to a Directive. The second
// return value is false when the line has no discernible key/value
// separator, an empty key, or an empty value; the returned Directive is
// still KindUnknown and safe to use (the handler ignores it).
func directiveFrom(trimmed string) (Directive, bool) {
	key, value, ok := splitKeyValue(trimmed)
	if !ok {
		return Directive{Kind: KindUnknown, Value: trimmed}, false
	}

	kind, known := keyTable[asciiLower(key)]
	if !known {
		return Directive{Kind: KindUnknown, Value: value}, true
	}
	return Directive{Kind: kind, Value: value}, true
}

// splitKeyValue implements the "missing colon" tolerance: the key/value
// separator is the first ':' anywhere in the line; only when the line has
// no ':' at all does the first run of ASCII whitespace separating two
// non-empty tokens act as the separator. Colon takes priority regardless of
// any whitespace preceding it (so "User Agent: FooBot" still yields the key
// "User Agent", matching the "user agent" spelling in keyTable), mirroring
// how the reference parser's key/value split tries ':' before whitespace.
func splitKeyValue(line string) (key, value string, ok bool) {
	if idx := strings.IndexByte(line, ':'); idx >= 0 {
		key = trimASCIISpace(line[:idx])
		value = trimASCIISpace(line[idx+1:])
		if key == "" || value == "" {
			return "", "", false
		}
		return key, value, true
	}

	i := 0
	for i < len(line) && !isASCIISpace(line[i]) {
		i++
	}
	if i == 0 || i == len(line) {
		return "", "", false
	}

	key = line[:i]
	j := i
	for j < len(line) && isASCIISpace(line[j]) {
		j++
	}
	value = trimASCIISpace(line[j:])
	if value == "" {
		return "", "", false
	}
	return key, value, true
}
