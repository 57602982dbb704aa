// SPDX-License-Identifier: MIT

package robotstxt

import "strings"

// asciiLower lowercases only ASCII A-Z bytes, leaving every other byte
// (including any non-ASCII byte) unchanged. Case folding beyond ASCII is an
// explicit non-goal.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// isASCIISpace reports whether b is ASCII whitespace.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// trimASCIISpace trims leading and trailing ASCII whitespace.
func trimASCIISpace(s string) string {
	start := 0
	for start < len(s) && isASCIISpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// firstWhitespaceToken returns s truncated at the first run of ASCII
// whitespace, i.e. its first whitespace-delimited token.
func firstWhitespaceToken(s string) string {
	for i := 0; i < len(s); i++ {
		if isASCIISpace(s[i]) {
			return s[:i]
		}
	}
	return s
}

// isAlphaNumASCII reports whether b is an ASCII letter or digit.
func isAlphaNumASCII(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// agentTokenMatches reports whether agentToken (already lowercased, as
// stored on a Group) is a case-insensitive ASCII prefix of requestAgent,
// ending at either end-of-string or a non-alphanumeric byte, per spec ("foo"
// matches "foo" and "foo-bar" but not "foobar").
func agentTokenMatches(agentToken, requestAgent string) bool {
	lowered := asciiLower(requestAgent)
	if !strings.HasPrefix(lowered, agentToken) {
		return false
	}
	if len(lowered) == len(agentToken) {
		return true
	}
	return !isAlphaNumASCII(lowered[len(agentToken)])
}
