// SPDX-License-Identifier: MIT

package robotstxt

import (
	"fmt"
	"strings"
	"testing"
)

const (
	benchGroupCount = 32
	benchRulesPerGroup = 12
)

var (
	benchRuleSetSink *RuleSet
	benchBoolSink    bool
)

func buildBenchmarkRobotsTxt(groups, rulesPerGroup int) string {
	var b strings.Builder
	for g := 0; g < groups; g++ {
		fmt.Fprintf(&b, "user-agent: bot-%d\n", g)
		for r := 0; r < rulesPerGroup; r++ {
			if r%3 == 0 {
				fmt.Fprintf(&b, "allow: /path-%d/*.html\n", r)
			} else {
				fmt.Fprintf(&b, "disallow: /path-%d/\n", r)
			}
		}
	}
	b.WriteString("user-agent: *\ndisallow: /private/\n")
	return b.String()
}

func BenchmarkParse(b *testing.B) {
	src := []byte(buildBenchmarkRobotsTxt(benchGroupCount, benchRulesPerGroup))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rs, err := Parse(src)
		if err != nil {
			b.Fatal(err)
		}
		if len(rs.Groups) == 0 {
			b.Fatal("empty rule set")
		}
		benchRuleSetSink = rs
	}
}

func BenchmarkAllowedByRobotsSpecificGroup(b *testing.B) {
	src := []byte(buildBenchmarkRobotsTxt(benchGroupCount, benchRulesPerGroup))
	rs, err := Parse(src)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBoolSink = rs.AllowedByRobots("bot-5", "https://example.com/path-7/index.html")
	}
}

func BenchmarkAllowedByRobotsGlobalFallback(b *testing.B) {
	src := []byte(buildBenchmarkRobotsTxt(benchGroupCount, benchRulesPerGroup))
	rs, err := Parse(src)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBoolSink = rs.AllowedByRobots("unmatched-bot", "https://example.com/private/x")
	}
}

func BenchmarkIsUserAgentAllowedOneShot(b *testing.B) {
	src := []byte(buildBenchmarkRobotsTxt(benchGroupCount, benchRulesPerGroup))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBoolSink = IsUserAgentAllowed(src, "bot-5", "https://example.com/path-7/index.html")
	}
}
