package roster

import (
	"strings"

	"github.com/barsleague/rosterize/internal/model"
)

// ExtractPerson reads a data row into a person record using the located
// column indices. A name that normalizes to "vacant" short-circuits: vacant
// rows are often only partially filled in by data entry, so nothing past
// the name cell is read and every other field stays empty. Cells the row is
// too short to carry become empty (email) or absent (optional fields).
func ExtractPerson(row []string, cols Columns) *model.Person {
	name := Clean(cell(row, cols.Name))
	if strings.EqualFold(name, "vacant") {
		return &model.Person{Name: name}
	}

	return &model.Person{
		Name:     name,
		Email:    strings.ToLower(Clean(cell(row, cols.Email))),
		Personal: optional(strings.ToLower(Clean(cell(row, cols.Personal)))),
		Phone:    optional(Clean(cell(row, cols.Phone))),
		Birthday: optional(Clean(cell(row, cols.Birthday))),
	}
}

// optional maps an empty cell to an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
