// Package hierconf loads the declarative hierarchy catalog: the canonical
// sections, positions, and match patterns a roster export is resolved
// against. The catalog is loaded once at startup and treated as immutable.
package hierconf

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrNoSections is returned when the catalog document lacks the sections
// mapping entirely.
var ErrNoSections = errors.New("catalog has no sections")

// Catalog is the parsed hierarchy catalog document.
type Catalog struct {
	Version  string             `yaml:"version"`
	Sections map[string]Section `yaml:"sections"`

	keys []string
}

// Section describes one organizational section. Headers are the marker
// strings that open the section in the source table. List sections carry a
// flat roster and declare no positions; tree sections declare their
// positions in priority order: the first declared position whose pattern
// matches a row wins, which is how qualifier-specific entries (WTNB) are
// made to out-rank generic ones.
type Section struct {
	Name      string     `yaml:"name"`
	Headers   []string   `yaml:"headers"`
	IsList    bool       `yaml:"is_list,omitempty"`
	Positions []Position `yaml:"positions,omitempty"`
}

// Position is one canonical seat within a section. SubSection and Team are
// optional grouping levels; Role is unique within (section, sub_section,
// team).
type Position struct {
	Role       string    `yaml:"role"`
	SubSection string    `yaml:"sub_section,omitempty"`
	Team       string    `yaml:"team,omitempty"`
	Title      string    `yaml:"title"`
	Match      MatchSpec `yaml:"match"`
	Required   bool      `yaml:"required,omitempty"`
}

// MatchSpec declares how a row's position text is resolved to this
// position: exact case-insensitive equality against any of Exact, or a
// token-set pattern where every token of one inner list must appear in the
// row text, in any order.
type MatchSpec struct {
	Exact    []string   `yaml:"exact,omitempty"`
	Patterns [][]string `yaml:"patterns,omitempty"`
}

// Load reads and validates the catalog document at path. A missing file, a
// malformed document, and a document without sections are all fatal and
// reported distinctly.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(c.Sections) == 0 {
		return nil, ErrNoSections
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	c.keys = make([]string, 0, len(c.Sections))
	for key := range c.Sections {
		c.keys = append(c.keys, key)
	}
	sort.Strings(c.keys)
	return &c, nil
}

// Keys returns the section keys in sorted order.
func (c *Catalog) Keys() []string {
	return c.keys
}

// ListFlags returns the section key to is_list mapping used to seed an
// empty hierarchy.
func (c *Catalog) ListFlags() map[string]bool {
	flags := make(map[string]bool, len(c.Sections))
	for key, sec := range c.Sections {
		flags[key] = sec.IsList
	}
	return flags
}

func (c *Catalog) validate() error {
	for key, sec := range c.Sections {
		if sec.Name == "" {
			return fmt.Errorf("section %q: missing name", key)
		}
		if len(sec.Headers) == 0 {
			return fmt.Errorf("section %q: missing headers", key)
		}
		if sec.IsList {
			if len(sec.Positions) > 0 {
				return fmt.Errorf("section %q: list sections declare no positions", key)
			}
			continue
		}
		seen := make(map[string]struct{}, len(sec.Positions))
		for i, pos := range sec.Positions {
			if pos.Role == "" {
				return fmt.Errorf("section %q: position %d missing role", key, i)
			}
			if pos.Title == "" {
				return fmt.Errorf("section %q: position %q missing title", key, pos.Role)
			}
			if len(pos.Match.Exact) == 0 && len(pos.Match.Patterns) == 0 {
				return fmt.Errorf("section %q: position %q has no match rules", key, pos.Role)
			}
			addr := pos.SubSection + "/" + pos.Team + "/" + pos.Role
			if _, dup := seen[addr]; dup {
				return fmt.Errorf("section %q: duplicate position %q", key, addr)
			}
			seen[addr] = struct{}{}
		}
	}
	return nil
}
