package model

import (
	"sort"
	"strings"
)

// Hierarchy is the parsed leadership tree. It is built incrementally by the
// roster builder, one call per matched row, and is read-only once returned
// to callers.
type Hierarchy struct {
	sections map[string]*SectionData
	vacant   map[string]struct{}
	keys     []string
}

// SectionData holds the contents of one configured section: either a flat
// member list (list sections) or a role-keyed tree with optional sub-section
// and team levels. The two shapes are mutually exclusive by construction.
type SectionData struct {
	Key    string
	IsList bool

	Members []Member

	Roles map[string]*Person
	Subs  map[string]*SubSection
}

// SubSection is an intermediate grouping level (a division or a weeknight)
// beneath a section.
type SubSection struct {
	Roles map[string]*Person
	Teams map[string]map[string]*Person
}

// NewHierarchy builds an empty hierarchy with one slot per configured
// section. The sections argument maps section key to its list flag.
func NewHierarchy(sections map[string]bool) *Hierarchy {
	h := &Hierarchy{
		sections: make(map[string]*SectionData, len(sections)),
		vacant:   make(map[string]struct{}),
	}
	for key, isList := range sections {
		sd := &SectionData{Key: key, IsList: isList}
		if !isList {
			sd.Roles = make(map[string]*Person)
			sd.Subs = make(map[string]*SubSection)
		}
		h.sections[key] = sd
		h.keys = append(h.keys, key)
	}
	sort.Strings(h.keys)
	return h
}

// SectionKeys returns the configured section keys in sorted order.
func (h *Hierarchy) SectionKeys() []string {
	return h.keys
}

// Section returns the data for one configured section.
func (h *Hierarchy) Section(key string) (*SectionData, bool) {
	sd, ok := h.sections[key]
	return sd, ok
}

// Path joins the non-empty parts of a position address with dots:
// section[.sub_section][.team].role.
func Path(section, subSection, team, role string) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{section, subSection, team, role} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// Place writes a filled person record at the resolved tree path, creating
// intermediate sub-section and team levels lazily. Unknown sections and
// list sections are ignored.
func (h *Hierarchy) Place(section, subSection, team, role string, p *Person) {
	sd, ok := h.sections[section]
	if !ok || sd.IsList {
		return
	}
	if subSection == "" {
		sd.Roles[role] = p
		return
	}
	sub, ok := sd.Subs[subSection]
	if !ok {
		sub = &SubSection{
			Roles: make(map[string]*Person),
			Teams: make(map[string]map[string]*Person),
		}
		sd.Subs[subSection] = sub
	}
	if team == "" {
		sub.Roles[role] = p
		return
	}
	tm, ok := sub.Teams[team]
	if !ok {
		tm = make(map[string]*Person)
		sub.Teams[team] = tm
	}
	tm[role] = p
}

// MarkVacant records an unfilled seat. Vacant seats live only in the vacant
// set, never in the tree.
func (h *Hierarchy) MarkVacant(section, subSection, team, role string) {
	h.vacant[Path(section, subSection, team, role)] = struct{}{}
}

// AppendMember appends a flat record to a list section.
func (h *Hierarchy) AppendMember(section, positionKey string, p *Person) {
	sd, ok := h.sections[section]
	if !ok || !sd.IsList {
		return
	}
	sd.Members = append(sd.Members, Member{PositionKey: positionKey, Person: *p})
}

// Lookup returns the filled record at the given position address, or false
// when the seat is vacant, unknown, or addresses a list section. Pass empty
// strings for levels the position does not have.
func (h *Hierarchy) Lookup(section, subSection, team, role string) (*Person, bool) {
	sd, ok := h.sections[section]
	if !ok || sd.IsList {
		return nil, false
	}
	if subSection == "" {
		p, ok := sd.Roles[role]
		return p, ok
	}
	sub, ok := sd.Subs[subSection]
	if !ok {
		return nil, false
	}
	if team == "" {
		p, ok := sub.Roles[role]
		return p, ok
	}
	tm, ok := sub.Teams[team]
	if !ok {
		return nil, false
	}
	p, ok := tm[role]
	return p, ok
}

// VacantPaths returns the sorted dot-joined paths of all vacant seats.
func (h *Hierarchy) VacantPaths() []string {
	paths := make([]string, 0, len(h.vacant))
	for p := range h.vacant {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Emails returns the sorted, deduplicated non-empty primary emails of every
// filled record in the hierarchy, tree and list sections alike. Vacant seats
// were never written in, so they contribute nothing.
func (h *Hierarchy) Emails() []string {
	seen := make(map[string]struct{})
	h.eachPerson(func(p *Person) {
		if p.Email != "" {
			seen[p.Email] = struct{}{}
		}
	})
	emails := make([]string, 0, len(seen))
	for e := range seen {
		emails = append(emails, e)
	}
	sort.Strings(emails)
	return emails
}

// Summary holds the headline counts of a parsed hierarchy.
type Summary struct {
	Filled      int `json:"filled"`
	WithAccount int `json:"with_account"`
	Vacant      int `json:"vacant"`
}

// Summarize counts filled positions, positions with a directory account id
// attached, and vacant seats.
func (h *Hierarchy) Summarize() Summary {
	var s Summary
	h.eachPerson(func(p *Person) {
		s.Filled++
		if p.AccountID != nil {
			s.WithAccount++
		}
	})
	s.Vacant = len(h.vacant)
	return s
}

// ApplyAccounts attaches directory account ids to every record whose primary
// email has an entry in the resolved mapping. A nil mapped value means the
// directory had no account for that email and leaves the record untouched.
func (h *Hierarchy) ApplyAccounts(accounts map[string]*string) {
	h.eachPerson(func(p *Person) {
		if p.Email == "" {
			return
		}
		if id, ok := accounts[p.Email]; ok && id != nil {
			p.AccountID = id
		}
	})
}

// Serialize produces the stable nested structure consumers depend on: one
// top-level key per configured section plus vacant_positions. Tree sections
// serialize to nested mappings down to flat person records; list sections to
// ordered member slices.
func (h *Hierarchy) Serialize() map[string]any {
	out := make(map[string]any, len(h.sections)+1)
	for _, key := range h.keys {
		sd := h.sections[key]
		if sd.IsList {
			members := sd.Members
			if members == nil {
				members = []Member{}
			}
			out[key] = members
			continue
		}
		tree := make(map[string]any, len(sd.Roles)+len(sd.Subs))
		for role, p := range sd.Roles {
			tree[role] = p
		}
		for subKey, sub := range sd.Subs {
			subMap := make(map[string]any, len(sub.Roles)+len(sub.Teams))
			for role, p := range sub.Roles {
				subMap[role] = p
			}
			for teamKey, tm := range sub.Teams {
				teamMap := make(map[string]any, len(tm))
				for role, p := range tm {
					teamMap[role] = p
				}
				subMap[teamKey] = teamMap
			}
			tree[subKey] = subMap
		}
		out[key] = tree
	}
	out["vacant_positions"] = h.VacantPaths()
	return out
}

// eachPerson visits every filled record, in deterministic section order but
// unspecified order within a section's maps.
func (h *Hierarchy) eachPerson(visit func(*Person)) {
	for _, key := range h.keys {
		sd := h.sections[key]
		if sd.IsList {
			for i := range sd.Members {
				visit(&sd.Members[i].Person)
			}
			continue
		}
		for _, p := range sd.Roles {
			visit(p)
		}
		for _, sub := range sd.Subs {
			for _, p := range sub.Roles {
				visit(p)
			}
			for _, tm := range sub.Teams {
				for _, p := range tm {
					visit(p)
				}
			}
		}
	}
}
