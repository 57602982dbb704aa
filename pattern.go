// SPDX-License-Identifier: MIT

package robotstxt

import "strings"

// indexHTMLSuffix is the Google-specific directory shorthand suffix: a
// pattern ending in exactly this literal also matches the equivalent "/"
// prefix (so "/X/index.html" also allows "/X/", but not "/X/index.htm" or
// "/X/other").
const indexHTMLSuffix = "/index.html"

// compiledPattern is the precompiled matching strategy for one Rule's
// pattern. Patterns are split into literal segments around '*'; a trailing
// '$' anchors the final segment to the end of the path. Everything else is
// matched byte for byte, case-sensitively.
type compiledPattern struct {
	// raw is the original, uncompiled pattern text — its length (including
	// '*' and '$') is the REP precedence metric, so it is kept verbatim.
	raw string
	// empty reports the degenerate "pattern matches nothing" case.
	empty bool
	// anchoredEnd reports whether the pattern ended in '$'.
	anchoredEnd bool
	// segments are the literal pieces between '*' wildcards, trailing '$' removed.
	segments []string
	// indexShorthand is the "/"-prefix a "/index.html"-suffixed pattern also allows, or "".
	indexShorthand string
}

// compilePattern precompiles one rule pattern.
func compilePattern(raw string) compiledPattern {
	if raw == "" {
		return compiledPattern{raw: raw, empty: true}
	}

	cp := compiledPattern{raw: raw}

	body := raw
	if strings.HasSuffix(body, "$") {
		cp.anchoredEnd = true
		body = body[:len(body)-1]
	}

	cp.segments = strings.Split(collapseStars(body), "*")

	if strings.HasSuffix(raw, indexHTMLSuffix) {
		cp.indexShorthand = raw[:len(raw)-len(indexHTMLSuffix)+1] // keep the "/"
	}

	return cp
}

// length is the REP precedence metric: the pattern's byte length, '*' and
// '$' counting as one byte each, exactly as written in the source.
func (cp compiledPattern) length() int {
	return len(cp.raw)
}

// matches reports whether path, which must begin with "/" or be empty, is
// matched by the pattern: all literal segments occur in order starting at
// path position 0, with the final segment anchored to path's end when the
// pattern ended in '$'.
func (cp compiledPattern) matches(path string) bool {
	if cp.empty {
		return false
	}

	if cp.indexShorthand != "" && path == cp.indexShorthand {
		return true
	}

	return matchSegments(cp.segments, cp.anchoredEnd, path)
}

// collapseStars reduces any run of two or more '*' to a single '*'; REP
// does not give nested/repeated wildcards additional meaning.
func collapseStars(s string) string {
	if !strings.Contains(s, "**") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	runStar := false
	for i := 0; i < len(s); i++ {
		if s[i] == '*' {
			if !runStar {
				b.WriteByte('*')
			}
			runStar = true
			continue
		}
		runStar = false
		b.WriteByte(s[i])
	}
	return b.String()
}

// matchSegments walks the literal segments of a '*'-split pattern against
// path in order: the first segment anchors at path position 0 (or, if
// empty, signals a leading '*' and imposes no constraint); interior
// segments are located at their earliest possible position, which is always
// safe because taking the earliest occurrence never shrinks the search
// space available to a later segment; the final segment is end-anchored
// when the pattern ended in '$', otherwise it only needs to occur.
func matchSegments(segments []string, anchoredEnd bool, path string) bool {
	n := len(segments)

	if n == 1 {
		literal := segments[0]
		if anchoredEnd {
			return path == literal
		}
		return strings.HasPrefix(path, literal)
	}

	cur := 0
	if segments[0] != "" {
		if !strings.HasPrefix(path, segments[0]) {
			return false
		}
		cur = len(segments[0])
	}

	for i := 1; i < n-1; i++ {
		seg := segments[i]
		if seg == "" {
			continue
		}
		idx := strings.Index(path[cur:], seg)
		if idx < 0 {
			return false
		}
		cur += idx + len(seg)
	}

	last := segments[n-1]
	if last == "" {
		// Pattern ends in '*' (optionally followed by '$', which is then a
		// no-op: '*' can always expand to consume whatever remains).
		return true
	}

	if anchoredEnd {
		if len(path)-len(last) < cur {
			return false
		}
		return strings.HasSuffix(path, last)
	}

	return strings.Index(path[cur:], last) >= 0
}
