package roster

import (
	"github.com/barsleague/rosterize/internal/hierconf"
	"github.com/barsleague/rosterize/internal/model"
)

// Stats counts the rows a build silently dropped. Orphans are data rows
// seen before any section marker; Unmatched are tree-section rows whose
// position text resolved to no configured position. Neither is an error.
type Stats struct {
	Orphans   int
	Unmatched int
}

// Builder is the single-pass row scanner. It threads the current section
// across rows, delegating to the section detector, position matcher, and
// person extractor, and writes into the hierarchy as it goes.
type Builder struct {
	catalog  *hierconf.Catalog
	detector *SectionDetector
	matcher  *Matcher
}

// NewBuilder creates a builder over the given catalog.
func NewBuilder(catalog *hierconf.Catalog) *Builder {
	return &Builder{
		catalog:  catalog,
		detector: NewSectionDetector(catalog),
		matcher:  NewMatcher(catalog),
	}
}

// Build runs the scan. The three structural failures (empty input, no
// header row, missing required columns) abort the whole parse; every other
// irregularity degrades locally. The returned hierarchy always has a slot
// for every configured section, populated or not.
func (b *Builder) Build(rows [][]string) (*model.Hierarchy, Stats, error) {
	cols, err := LocateHeader(rows)
	if err != nil {
		return nil, Stats{}, err
	}

	h := model.NewHierarchy(b.catalog.ListFlags())
	var stats Stats
	current := ""

	for i, row := range rows {
		if i == cols.Row {
			continue
		}
		if key, ok := b.detector.Detect(cell(row, 0), cell(row, 1)); ok {
			current = key
			continue
		}
		if blankRow(row) {
			continue
		}
		if current == "" {
			// Data before the first marker has no home.
			stats.Orphans++
			continue
		}

		sec := b.catalog.Sections[current]
		if sec.IsList {
			p := ExtractPerson(row, cols)
			h.AppendMember(current, Key(cell(row, cols.Position)), p)
			continue
		}

		pos, ok := b.matcher.Match(current, cell(row, cols.Position))
		if !ok {
			stats.Unmatched++
			continue
		}
		p := ExtractPerson(row, cols)
		if p.Vacant() {
			h.MarkVacant(current, pos.SubSection, pos.Team, pos.Role)
			continue
		}
		h.Place(current, pos.SubSection, pos.Team, pos.Role, p)
	}

	return h, stats, nil
}
