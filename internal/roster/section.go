package roster

import (
	"strings"

	"github.com/barsleague/rosterize/internal/hierconf"
)

// SectionDetector classifies rows as section-boundary markers and resolves
// them to canonical section keys using the catalog's header strings.
type SectionDetector struct {
	catalog *hierconf.Catalog
}

// NewSectionDetector creates a detector over the given catalog.
func NewSectionDetector(catalog *hierconf.Catalog) *SectionDetector {
	return &SectionDetector{catalog: catalog}
}

// Detect resolves a row's first two cells to a section key. A marker row
// carries its header in the leading cell and nothing in the second; any
// other combination is an ordinary data row and returns false. Matching is
// case-insensitive, dash-insensitive (en and em dashes fold to hyphens, so
// "CROSS–SPORT LEADERSHIP TEAM" still resolves), and prefix-based so sport
// markers with trailing season annotations still hit. The literal column
// header "position" is never a marker.
func (d *SectionDetector) Detect(first, second string) (string, bool) {
	if Clean(second) != "" {
		return "", false
	}
	marker := foldDashes(Fold(first))
	if marker == "" || marker == "position" {
		return "", false
	}
	for _, key := range d.catalog.Keys() {
		sec := d.catalog.Sections[key]
		for _, header := range sec.Headers {
			h := foldDashes(strings.ToLower(strings.TrimSpace(header)))
			if marker == h {
				return key, true
			}
			// Sport markers pick up season annotations ("BOWLING
			// LEADERSHIP TEAM - FALL"), so leadership-team headers
			// match by prefix.
			if strings.HasSuffix(h, "leadership team") && strings.HasPrefix(marker, h) {
				return key, true
			}
		}
	}
	return "", false
}
