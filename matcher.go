// SPDX-License-Identifier: MIT

package robotstxt

import "sort"

// applicableGroups selects the groups that apply to requestAgent: all
// non-global groups whose agent set matches it, if any; otherwise all
// global groups; otherwise none. Once any specific group has matched the
// agent, the global group is ignored for the rest of this call, even if the
// matching specific group turns out to contribute no applicable rule for the
// path under consideration — it is a property of having matched the agent,
// not of having matched a rule.
func (rs *RuleSet) applicableGroups(requestAgent string) []*Group {
	var specific []*Group
	for _, g := range rs.Groups {
		if g.isGlobal() {
			continue
		}
		if g.matchesAgent(requestAgent) {
			specific = append(specific, g)
		}
	}
	if len(specific) > 0 {
		return specific
	}

	var global []*Group
	for _, g := range rs.Groups {
		if g.isGlobal() {
			global = append(global, g)
		}
	}
	return global
}

// mergeRules unions the rules of groups in source order.
func mergeRules(groups []*Group) []Rule {
	var rules []Rule
	for _, g := range groups {
		rules = append(rules, g.Rules...)
	}
	return rules
}

// collectAgents gathers the agent token set of groups, sorted for
// deterministic Decision output.
func collectAgents(groups []*Group) []string {
	seen := make(map[string]struct{})
	for _, g := range groups {
		for agent := range g.Agents {
			seen[agent] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	agents := make([]string, 0, len(seen))
	for agent := range seen {
		agents = append(agents, agent)
	}
	sort.Strings(agents)
	return agents
}

// decide evaluates rules already selected as applicable against path: the
// matching rule with the longest pattern wins, ties resolved in favor of
// Allow. Returns the outcome plus the longest matching Allow/Disallow
// pattern lengths (noMatchPriority if none matched).
func decide(rules []Rule, path string) (outcome MatchOutcome, maxAllow, maxDisallow int) {
	maxAllow, maxDisallow = noMatchPriority, noMatchPriority

	for _, r := range rules {
		if !r.compiled.matches(path) {
			continue
		}
		length := r.compiled.length()
		switch r.Kind {
		case RuleAllow:
			if length > maxAllow {
				maxAllow = length
			}
		case RuleDisallow:
			if length > maxDisallow {
				maxDisallow = length
			}
		}
	}

	if maxAllow >= maxDisallow {
		return Allowed, maxAllow, maxDisallow
	}
	return Disallowed, maxAllow, maxDisallow
}

// Explain evaluates userAgent and rawURL against rs and returns the full
// diagnostic Decision: the outcome, which agent tokens applied, and the
// pattern lengths that decided it. Most callers want AllowedByRobots
// instead; Explain exists for callers that need to know why.
func (rs *RuleSet) Explain(userAgent, rawURL string) Decision {
	agent := trimASCIISpace(userAgent)
	if agent == "" {
		// No document can disallow an unnamed crawler.
		return Decision{Outcome: Allowed, AllowLen: noMatchPriority, DisallowLen: noMatchPriority}
	}
	agent = asciiLower(firstWhitespaceToken(agent))

	path, _ := PathFromURL(rawURL)

	groups := rs.applicableGroups(agent)
	if len(groups) == 0 {
		return Decision{Outcome: NoRulesApply, AllowLen: noMatchPriority, DisallowLen: noMatchPriority}
	}

	outcome, allowLen, disallowLen := decide(mergeRules(groups), path)
	return Decision{
		Outcome:       outcome,
		MatchedAgents: collectAgents(groups),
		AllowLen:      allowLen,
		DisallowLen:   disallowLen,
	}
}

// AllowedByRobots reports whether userAgent may fetch rawURL according to rs.
// An agent with no applicable rules at all is allowed, same as an agent
// whose applicable rules simply don't disallow the path.
func (rs *RuleSet) AllowedByRobots(userAgent, rawURL string) bool {
	return rs.Explain(userAgent, rawURL).Outcome != Disallowed
}

// IsValidUserAgentToObey reports whether token is a well-formed user-agent
// identifier: non-empty, and composed only of [A-Za-z_-]. It is a standalone
// syntactic check used by callers validating their own configuration; the
// matcher never calls it.
func IsValidUserAgentToObey(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}
