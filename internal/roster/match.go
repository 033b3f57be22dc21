package roster

import (
	"github.com/barsleague/rosterize/internal/hierconf"
)

// Matcher resolves free-text position titles to canonical catalog positions.
type Matcher struct {
	catalog *hierconf.Catalog
}

// NewMatcher creates a matcher over the given catalog.
func NewMatcher(catalog *hierconf.Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// Match resolves a row's position text against the active section's
// configured positions. Candidates are tried in declaration order and the
// first hit wins: there is no scoring or longest-match heuristic, so a
// qualifier-specific entry (the WTNB variant of a role) out-ranks a generic
// one purely by being declared earlier. Returns false when the section is
// unknown, is a list section, or no configured position matches.
func (m *Matcher) Match(sectionKey, text string) (hierconf.Position, bool) {
	sec, ok := m.catalog.Sections[sectionKey]
	if !ok || sec.IsList {
		return hierconf.Position{}, false
	}

	folded := Fold(text)
	tokens := tokenSet(text)

	for _, pos := range sec.Positions {
		if matchExact(folded, pos.Match.Exact) || matchFuzzy(tokens, pos.Match.Patterns) {
			return pos, true
		}
	}
	return hierconf.Position{}, false
}

// matchExact tests case-insensitive, whitespace-trimmed equality against
// any configured exact value.
func matchExact(folded string, exact []string) bool {
	for _, e := range exact {
		if folded == Fold(e) {
			return true
		}
	}
	return false
}

// matchFuzzy tests token-set containment: a pattern matches when every one
// of its tokens appears somewhere in the row's token set, independent of
// order or adjacency. "Director of Bowling, Sunday", "Sunday Director
// Bowling", and "BOWLING SUNDAY DIRECTOR" all satisfy [director bowling
// sunday].
func matchFuzzy(tokens map[string]struct{}, patterns [][]string) bool {
	for _, pattern := range patterns {
		if len(pattern) == 0 {
			continue
		}
		all := true
		for _, want := range pattern {
			if _, ok := tokens[want]; !ok {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func tokenSet(text string) map[string]struct{} {
	tokens := Tokens(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
