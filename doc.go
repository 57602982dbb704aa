// SPDX-License-Identifier: MIT

/*
Package robotstxt implements the Robots Exclusion Protocol (REP) as
practiced by major search-engine crawlers.

The package decides, given the raw bytes of a robots.txt document, a
crawler's user-agent token, and an absolute URL, whether the crawler is
permitted to fetch that URL.

Basic flow, one-shot:

	allowed := robotstxt.IsUserAgentAllowed(body, "FooBot", "https://example.com/path")

Basic flow, amortized across many URL checks against the same document:

	rs, err := robotstxt.Parse(body)
	if err != nil {
		// only ParseReader can fail; Parse itself never does
	}
	allowed := rs.AllowedByRobots("FooBot", "https://example.com/path")

Parsing is permissive by design: malformed lines, unknown directives, and
oversized lines are tolerated and degrade to "ignore this line" rather than
a hard error. The only errors this package surfaces come from collaborators
outside the CORE parser — reading from an io.Reader, or parsing the URL a
caller handed in.

A parsed *RuleSet is immutable and safe for concurrent use by multiple
readers.
*/
package robotstxt
