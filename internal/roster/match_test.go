package roster

import (
	"strings"
	"testing"
)

func TestMatch_Exact(t *testing.T) {
	m := NewMatcher(testCatalog(t))

	pos, ok := m.Match("executive_board", "  commissioner ")
	if !ok {
		t.Fatal("expected match")
	}
	if pos.Role != "commissioner" {
		t.Errorf("Role = %q", pos.Role)
	}
}

func TestMatch_FuzzyOrderAndCase(t *testing.T) {
	m := NewMatcher(testCatalog(t))

	for _, text := range []string{
		"Director of Bowling, Sunday",
		"Sunday Director Bowling",
		"BOWLING SUNDAY DIRECTOR",
	} {
		pos, ok := m.Match("bowling", text)
		if !ok {
			t.Errorf("Match(%q): expected match", text)
			continue
		}
		if pos.Role != "director" || pos.SubSection != "sunday" {
			t.Errorf("Match(%q) = %s/%s", text, pos.SubSection, pos.Role)
		}
	}
}

func TestMatch_MissingTokenFails(t *testing.T) {
	m := NewMatcher(testCatalog(t))

	if _, ok := m.Match("bowling", "Director of Bowling"); ok {
		t.Error("pattern requires the day token, should not match")
	}
}

func TestMatch_AlternatePatterns(t *testing.T) {
	m := NewMatcher(testCatalog(t))

	pos, ok := m.Match("bowling", "Ops Manager, Bowling (Sunday)")
	if !ok {
		t.Fatal("expected match via alternate pattern")
	}
	if pos.Role != "ops_manager" {
		t.Errorf("Role = %q", pos.Role)
	}
}

func TestMatch_WTNBOutranksGeneric(t *testing.T) {
	m := NewMatcher(testCatalog(t))

	// This text satisfies the generic [player experience] pattern too; the
	// WTNB entry must win because it is declared first.
	pos, ok := m.Match("dodgeball", "WTNB+ Player Experience Manager, Dodgeball")
	if !ok {
		t.Fatal("expected match")
	}
	if pos.SubSection != "wtnb" {
		t.Errorf("SubSection = %q, want wtnb", pos.SubSection)
	}
	if !strings.Contains(strings.ToLower(pos.Title), "wtnb") {
		t.Errorf("Title = %q, want WTNB variant", pos.Title)
	}

	// The generic text still resolves to the generic entry.
	pos, ok = m.Match("dodgeball", "Player Experience Manager, Dodgeball")
	if !ok {
		t.Fatal("expected generic match")
	}
	if pos.SubSection != "open" {
		t.Errorf("SubSection = %q, want open", pos.SubSection)
	}
}

func TestMatch_TeamLevel(t *testing.T) {
	m := NewMatcher(testCatalog(t))

	pos, ok := m.Match("dodgeball", "Director, Big Ball")
	if !ok {
		t.Fatal("expected match")
	}
	if pos.SubSection != "open" || pos.Team != "big_ball" || pos.Role != "director" {
		t.Errorf("got %s/%s/%s", pos.SubSection, pos.Team, pos.Role)
	}
}

func TestMatch_NoMatch(t *testing.T) {
	m := NewMatcher(testCatalog(t))

	if _, ok := m.Match("bowling", "Grand Poobah"); ok {
		t.Error("unrecognized title should not match")
	}
	if _, ok := m.Match("nonexistent", "Commissioner"); ok {
		t.Error("unknown section should not match")
	}
	if _, ok := m.Match("committee_members", "Committee Member"); ok {
		t.Error("list sections have no positions to match")
	}
}
