// SPDX-License-Identifier: MIT

package robotstxt

import "testing"

func TestParserSingleGroup(t *testing.T) {
	t.Parallel()

	rs := parseDirectives(NewLexer([]byte("User-agent: FooBot\nDisallow: /a\nAllow: /b\n"), nil))
	if len(rs.Groups) != 1 {
		t.Fatalf("got %d groups, want 1: %+v", len(rs.Groups), rs.Groups)
	}
	g := rs.Groups[0]
	if _, ok := g.Agents["foobot"]; !ok {
		t.Fatalf("agents = %v, want \"foobot\"", g.Agents)
	}
	if len(g.Rules) != 2 {
		t.Fatalf("got %d rules, want 2: %+v", len(g.Rules), g.Rules)
	}
	if g.Rules[0].Kind != RuleDisallow || g.Rules[0].Pattern != "/a" {
		t.Fatalf("rule 0 = %+v", g.Rules[0])
	}
	if g.Rules[1].Kind != RuleAllow || g.Rules[1].Pattern != "/b" {
		t.Fatalf("rule 1 = %+v", g.Rules[1])
	}
}

func TestParserMultipleAgentsOneGroup(t *testing.T) {
	t.Parallel()

	rs := parseDirectives(NewLexer([]byte("User-agent: FooBot\nUser-agent: BarBot\nDisallow: /a\n"), nil))
	if len(rs.Groups) != 1 {
		t.Fatalf("got %d groups, want 1: %+v", len(rs.Groups), rs.Groups)
	}
	g := rs.Groups[0]
	if len(g.Agents) != 2 {
		t.Fatalf("agents = %v, want 2 entries", g.Agents)
	}
	if len(g.Rules) != 1 {
		t.Fatalf("rules = %+v, want 1", g.Rules)
	}
}

func TestParserNewAgentAfterRulesStartsNewGroup(t *testing.T) {
	t.Parallel()

	rs := parseDirectives(NewLexer([]byte(
		"User-agent: FooBot\nDisallow: /a\nUser-agent: BarBot\nDisallow: /b\n"), nil))
	if len(rs.Groups) != 2 {
		t.Fatalf("got %d groups, want 2: %+v", len(rs.Groups), rs.Groups)
	}
	if _, ok := rs.Groups[0].Agents["foobot"]; !ok {
		t.Fatalf("group 0 agents = %v", rs.Groups[0].Agents)
	}
	if _, ok := rs.Groups[1].Agents["barbot"]; !ok {
		t.Fatalf("group 1 agents = %v", rs.Groups[1].Agents)
	}
}

func TestParserRulesBeforeAnyUserAgentAreDiscarded(t *testing.T) {
	t.Parallel()

	rs := parseDirectives(NewLexer([]byte("Disallow: /a\nUser-agent: FooBot\nDisallow: /b\n"), nil))
	if len(rs.Groups) != 1 {
		t.Fatalf("got %d groups, want 1: %+v", len(rs.Groups), rs.Groups)
	}
	if len(rs.Groups[0].Rules) != 1 || rs.Groups[0].Rules[0].Pattern != "/b" {
		t.Fatalf("rules = %+v, want a single /b rule", rs.Groups[0].Rules)
	}
}

func TestParserSitemapIndependentOfGroupState(t *testing.T) {
	t.Parallel()

	rs := parseDirectives(NewLexer([]byte(
		"Sitemap: https://example.com/a.xml\nUser-agent: FooBot\nDisallow: /x\nSitemap: https://example.com/b.xml\n"), nil))
	if len(rs.Sitemaps) != 2 {
		t.Fatalf("sitemaps = %v, want 2 entries", rs.Sitemaps)
	}
	if len(rs.Groups) != 1 || len(rs.Groups[0].Rules) != 1 {
		t.Fatalf("groups = %+v, sitemap lines must not disturb group state", rs.Groups)
	}
}

func TestParserUnknownDirectiveDoesNotResetGroup(t *testing.T) {
	t.Parallel()

	rs := parseDirectives(NewLexer([]byte(
		"User-agent: FooBot\ncrawl-delay: 5\nDisallow: /x\n"), nil))
	if len(rs.Groups) != 1 {
		t.Fatalf("got %d groups, want 1: %+v", len(rs.Groups), rs.Groups)
	}
	if len(rs.Groups[0].Rules) != 1 {
		t.Fatalf("rules = %+v, want 1 (crawl-delay is ignored, not a rule)", rs.Groups[0].Rules)
	}
}

func TestParserEmptyUserAgentValueIgnored(t *testing.T) {
	t.Parallel()

	rs := parseDirectives(NewLexer([]byte("User-agent: \nUser-agent: FooBot\nDisallow: /x\n"), nil))
	if len(rs.Groups) != 1 {
		t.Fatalf("got %d groups, want 1: %+v", len(rs.Groups), rs.Groups)
	}
	if _, ok := rs.Groups[0].Agents["foobot"]; !ok {
		t.Fatalf("agents = %v", rs.Groups[0].Agents)
	}
}

func TestParserGlobalGroupDetected(t *testing.T) {
	t.Parallel()

	rs := parseDirectives(NewLexer([]byte("User-agent: *\nAllow: /\n"), nil))
	if len(rs.Groups) != 1 || !rs.Groups[0].isGlobal() {
		t.Fatalf("groups = %+v, want a single global group", rs.Groups)
	}
}

func TestParserEmptyDocument(t *testing.T) {
	t.Parallel()

	rs := parseDirectives(NewLexer(nil, nil))
	if len(rs.Groups) != 0 || len(rs.Sitemaps) != 0 {
		t.Fatalf("rs = %+v, want a fully empty RuleSet", rs)
	}
}
