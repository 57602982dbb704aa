// SPDX-License-Identifier: MIT

package robotstxt

// parserState tracks which part of a group a directive stream is currently
// building: no group open yet, collecting user-agents for the current
// group's header, or collecting rules for it.
type parserState uint8

const (
	stateStart parserState = iota
	stateCollectingAgents
	stateCollectingRules
)

// parseDirectives drives the group-assembly state machine over a directive
// stream and returns the assembled RuleSet. It never errors: every
// tolerated anomaly degrades to "this line contributes nothing."
func parseDirectives(lex *Lexer) *RuleSet {
	rs := &RuleSet{}

	state := stateStart
	var current *Group

	for {
		d, ok := lex.Next()
		if !ok {
			break
		}

		switch d.Kind {
		case KindUserAgent:
			agent := asciiLower(trimASCIISpace(d.Value))
			if agent == "" {
				continue
			}

			switch state {
			case stateCollectingAgents:
				current.Agents[agent] = struct{}{}
			default:
				current = &Group{Agents: map[string]struct{}{agent: {}}}
				rs.Groups = append(rs.Groups, current)
				state = stateCollectingAgents
			}

		case KindAllow, KindDisallow:
			if state == stateStart {
				// A rule before any user-agent line: discarded.
				continue
			}

			ruleKind := RuleAllow
			if d.Kind == KindDisallow {
				ruleKind = RuleDisallow
			}
			current.Rules = append(current.Rules, Rule{
				Kind:     ruleKind,
				Pattern:  d.Value,
				compiled: compilePattern(d.Value),
			})
			state = stateCollectingRules

		case KindSitemap:
			rs.Sitemaps = append(rs.Sitemaps, d.Value)

		case KindUnknown:
			// Ignored; does not reset group state.
		}
	}

	return rs
}
