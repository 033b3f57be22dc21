package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func testHierarchy() *Hierarchy {
	h := NewHierarchy(map[string]bool{
		"executive_board":   false,
		"bowling":           false,
		"dodgeball":         false,
		"committee_members": true,
	})
	h.Place("executive_board", "", "", "commissioner",
		&Person{Name: "Jane Smith", Email: "jane@bars.org"})
	h.Place("bowling", "sunday", "", "director",
		&Person{Name: "Alex Kim", Email: "alex@bars.org"})
	h.Place("dodgeball", "open", "big_ball", "ops_manager",
		&Person{Name: "Riley Chen", Email: "riley@bars.org"})
	h.MarkVacant("executive_board", "", "", "vice_commissioner")
	h.AppendMember("committee_members", "committee_member",
		&Person{Name: "Pat Lee", Email: "jane@bars.org"})
	h.AppendMember("committee_members", "committee_member",
		&Person{Name: "No Email"})
	return h
}

func TestLookup(t *testing.T) {
	h := testHierarchy()

	p, ok := h.Lookup("executive_board", "", "", "commissioner")
	if !ok || p.Name != "Jane Smith" {
		t.Errorf("commissioner lookup = %v, %v", p, ok)
	}
	if p, ok := h.Lookup("dodgeball", "open", "big_ball", "ops_manager"); !ok || p.Name != "Riley Chen" {
		t.Errorf("team-level lookup = %v, %v", p, ok)
	}

	// Vacant, unknown, and list addresses all miss.
	if _, ok := h.Lookup("executive_board", "", "", "vice_commissioner"); ok {
		t.Error("vacant seat must not resolve")
	}
	if _, ok := h.Lookup("bowling", "monday", "", "director"); ok {
		t.Error("unknown sub-section must not resolve")
	}
	if _, ok := h.Lookup("committee_members", "", "", "committee_member"); ok {
		t.Error("list sections have no tree lookups")
	}
}

func TestEmails(t *testing.T) {
	h := testHierarchy()

	// jane@bars.org appears twice (commissioner and a committee member) and
	// one member has no email at all.
	want := []string{"alex@bars.org", "jane@bars.org", "riley@bars.org"}
	if got := h.Emails(); !reflect.DeepEqual(got, want) {
		t.Errorf("Emails = %v, want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	h := testHierarchy()

	s := h.Summarize()
	if s.Filled != 5 {
		t.Errorf("Filled = %d, want 5", s.Filled)
	}
	if s.Vacant != 1 {
		t.Errorf("Vacant = %d, want 1", s.Vacant)
	}
	if s.WithAccount != 0 {
		t.Errorf("WithAccount = %d, want 0", s.WithAccount)
	}

	id := "ACC-42"
	h.ApplyAccounts(map[string]*string{
		"jane@bars.org": &id,
		"alex@bars.org": nil, // directory had no account
	})
	s = h.Summarize()
	if s.WithAccount != 2 {
		t.Errorf("WithAccount after enrichment = %d, want 2", s.WithAccount)
	}
	p, _ := h.Lookup("executive_board", "", "", "commissioner")
	if p.AccountID == nil || *p.AccountID != "ACC-42" {
		t.Errorf("AccountID = %v", p.AccountID)
	}
	p, _ = h.Lookup("bowling", "sunday", "", "director")
	if p.AccountID != nil {
		t.Error("nil mapping must leave the record untouched")
	}
}

func TestVacantPaths(t *testing.T) {
	h := testHierarchy()
	h.MarkVacant("dodgeball", "open", "small_ball", "director")

	want := []string{
		"dodgeball.open.small_ball.director",
		"executive_board.vice_commissioner",
	}
	if got := h.VacantPaths(); !reflect.DeepEqual(got, want) {
		t.Errorf("VacantPaths = %v, want %v", got, want)
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		sub, team string
		want      string
	}{
		{"", "", "sec.role"},
		{"sub", "", "sec.sub.role"},
		{"sub", "team", "sec.sub.team.role"},
	}
	for _, tt := range tests {
		if got := Path("sec", tt.sub, tt.team, "role"); got != tt.want {
			t.Errorf("Path(%q, %q) = %q, want %q", tt.sub, tt.team, got, tt.want)
		}
	}
}

func TestSerialize(t *testing.T) {
	h := testHierarchy()
	out := h.Serialize()

	for _, key := range []string{"executive_board", "bowling", "dodgeball", "committee_members", "vacant_positions"} {
		if _, ok := out[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}

	// Empty sections still serialize: add a hierarchy with no rows at all.
	empty := NewHierarchy(map[string]bool{"executive_board": false, "committee_members": true})
	data, err := json.Marshal(empty.Serialize())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var round map[string]any
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tree, ok := round["executive_board"].(map[string]any); !ok || len(tree) != 0 {
		t.Errorf("empty tree section = %v", round["executive_board"])
	}
	if list, ok := round["committee_members"].([]any); !ok || len(list) != 0 {
		t.Errorf("empty list section = %v (want empty array, not null)", round["committee_members"])
	}

	// The nested path ends at a flat record with explicit null optionals.
	data, err = json.Marshal(h.Serialize())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	db := round["dodgeball"].(map[string]any)
	open := db["open"].(map[string]any)
	big := open["big_ball"].(map[string]any)
	rec := big["ops_manager"].(map[string]any)
	if rec["name"] != "Riley Chen" {
		t.Errorf("nested record = %v", rec)
	}
	if v, present := rec["personal_email"]; !present || v != nil {
		t.Errorf("personal_email = %v, want explicit null", v)
	}
}
