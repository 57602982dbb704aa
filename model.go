// SPDX-License-Identifier: MIT

package robotstxt

// DirectiveKind identifies the recognized shape of one parsed robots.txt line.
type DirectiveKind uint8

const (
	// KindUnknown is an unrecognized or malformed directive; it is ignored by the handler.
	KindUnknown DirectiveKind = iota
	// KindUserAgent introduces or extends the user-agent set of a group.
	KindUserAgent
	// KindAllow is an allow rule within the current group.
	KindAllow
	// KindDisallow is a disallow rule within the current group.
	KindDisallow
	// KindSitemap is a sitemap URL, independent of group state.
	KindSitemap
)

// Directive is one parsed (key, value) line, produced by the lexer and
// consumed immediately by the handler; it is never retained.
type Directive struct {
	// Kind is the recognized directive type.
	Kind DirectiveKind
	// Value is the trimmed right-hand side of the directive, verbatim from the source.
	Value string
	// Line is the 1-based source line number, for diagnostics only.
	Line int
}

// RuleKind distinguishes an Allow rule from a Disallow rule.
type RuleKind uint8

const (
	// RuleAllow permits the matching path.
	RuleAllow RuleKind = iota
	// RuleDisallow forbids the matching path.
	RuleDisallow
)

// Rule is one (kind, pattern) pair in source order within a Group.
// Pattern bytes are stored verbatim from the source; no normalization.
type Rule struct {
	Kind    RuleKind
	Pattern string

	compiled compiledPattern
}

// Group is an unordered set of user-agent tokens (lowercased for matching)
// plus an ordered list of Rules in source order.
type Group struct {
	// Agents is the lowercased set of user-agent tokens naming this group.
	Agents map[string]struct{}
	// Rules is the ordered list of Allow/Disallow rules belonging to this group.
	Rules []Rule
}

// isGlobal reports whether this group's agent set contains the "*" wildcard token.
func (g *Group) isGlobal() bool {
	_, ok := g.Agents["*"]
	return ok
}

// matchesAgent reports whether the group has a specific (non-"*") agent token
// that case-insensitively prefix-matches requestAgent at a token boundary.
func (g *Group) matchesAgent(requestAgent string) bool {
	for agent := range g.Agents {
		if agent == "*" {
			continue
		}
		if agentTokenMatches(agent, requestAgent) {
			return true
		}
	}
	return false
}

// RuleSet is the immutable, parsed representation of one robots.txt document:
// the ordered list of Groups as they appeared in the document, plus the
// ordered list of sitemap URLs.
type RuleSet struct {
	Groups   []*Group
	Sitemaps []string
}

// MatchOutcome is the three-valued result of evaluating one (agent, path)
// pair against a RuleSet, before NoRulesApply is folded into Allowed by the
// public API.
type MatchOutcome uint8

const (
	// Allowed means the crawler may fetch the path.
	Allowed MatchOutcome = iota
	// Disallowed means the crawler may not fetch the path.
	Disallowed
	// NoRulesApply means no applicable group existed; the public API treats this as Allowed.
	NoRulesApply
)

// Decision is the optional diagnostic result of RuleSet.Explain: the final
// outcome plus the evidence that produced it. It is not required by any
// caller of AllowedByRobots/IsUserAgentAllowed; it exists for callers that
// want to know *why*.
type Decision struct {
	// Outcome is the three-valued result; the boolean decision folds NoRulesApply to Allowed.
	Outcome MatchOutcome
	// MatchedAgents is the agent token set of the group(s) that applied, empty if NoRulesApply.
	MatchedAgents []string
	// AllowLen is the pattern length of the longest matching Allow rule, or -1 if none matched.
	AllowLen int
	// DisallowLen is the pattern length of the longest matching Disallow rule, or -1 if none matched.
	DisallowLen int
}

// noMatchPriority mirrors the reference implementation's Match::NO_MATCH_PRIORITY:
// a sentinel strictly below any real pattern length (which is always >= 0),
// reported when no rule of a kind matched. Empty patterns never match, so no
// matched length is ever 0.
const noMatchPriority = -1
