package report

import (
	"github.com/barsleague/rosterize/internal/hierconf"
	"github.com/barsleague/rosterize/internal/model"
)

// Gap is one required position that is not filled. Vacant gaps were marked
// vacant in the export; missing gaps never matched a row.
type Gap struct {
	Path   string `json:"path"`
	Title  string `json:"title"`
	Vacant bool   `json:"vacant"`
}

// Completeness summarizes how fully the export covers the catalog.
type Completeness struct {
	Required int   `json:"required"`
	Filled   int   `json:"filled"`
	Gaps     []Gap `json:"gaps"`
}

// Check walks every required catalog position and reports the ones the
// hierarchy does not fill. Sections are visited in sorted key order and
// positions in declaration order, so output is deterministic.
func Check(catalog *hierconf.Catalog, h *model.Hierarchy) Completeness {
	var c Completeness
	vacant := make(map[string]struct{})
	for _, p := range h.VacantPaths() {
		vacant[p] = struct{}{}
	}

	for _, key := range catalog.Keys() {
		sec := catalog.Sections[key]
		if sec.IsList {
			continue
		}
		for _, pos := range sec.Positions {
			if !pos.Required {
				continue
			}
			c.Required++
			path := model.Path(key, pos.SubSection, pos.Team, pos.Role)
			if _, ok := h.Lookup(key, pos.SubSection, pos.Team, pos.Role); ok {
				c.Filled++
				continue
			}
			_, isVacant := vacant[path]
			c.Gaps = append(c.Gaps, Gap{
				Path:   path,
				Title:  pos.Title,
				Vacant: isVacant,
			})
		}
	}
	return c
}
