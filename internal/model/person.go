package model

import "strings"

// Person is one filled (or vacant) seat as read from the roster export.
// Email is the primary organizational address and is always present as a
// string, empty when the source cell was blank. The remaining contact fields
// are nil when the source row did not carry them. AccountID is attached
// after parsing by the directory enrichment step, never by the parser.
type Person struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Personal  *string `json:"personal_email"`
	Phone     *string `json:"phone"`
	Birthday  *string `json:"birthday"`
	AccountID *string `json:"account_id"`
}

// Vacant reports whether this record marks an unfilled seat.
func (p *Person) Vacant() bool {
	return strings.EqualFold(strings.TrimSpace(p.Name), "vacant")
}

// Complete reports whether the record carries both a name and a primary
// email. Used for completeness reporting, not for parsing.
func (p *Person) Complete() bool {
	return !p.Vacant() && p.Name != "" && p.Email != ""
}

// Member is a flat-roster entry in a list section. PositionKey is derived
// from the raw position text of the source row.
type Member struct {
	PositionKey string `json:"position_key"`
	Person
}
