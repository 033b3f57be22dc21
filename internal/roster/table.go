package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// The three fatal parse conditions. Callers branch on these with errors.Is;
// everything else the parser degrades around silently.
var (
	ErrEmptyInput     = errors.New("roster input is empty")
	ErrNoHeaderRow    = errors.New("no header row found")
	ErrMissingColumns = errors.New("header row is missing required columns")
)

// Columns holds the located header row index and the column indices the
// extractor reads. Position and Email are always valid once located; the
// optional columns are -1 when the export does not carry them.
type Columns struct {
	Row      int
	Position int
	Name     int
	Email    int
	Personal int
	Phone    int
	Birthday int
}

// ReadCSV reads a roster export into rows of cells. Exports are hand
// maintained, so quoting is lax and rows are ragged.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

// LocateHeader scans from the top for the first row that contains both a
// position-like column header and a BARS-email-like one, and resolves the
// remaining column indices from that row. Distinct errors: empty input, no
// row with a position header at all, and a position header found but the
// email column missing from every such row.
func LocateHeader(rows [][]string) (Columns, error) {
	if len(rows) == 0 {
		return Columns{}, ErrEmptyInput
	}

	sawPosition := false
	for i, row := range rows {
		posCol := findCell(row, func(s string) bool { return strings.Contains(s, "position") })
		if posCol < 0 {
			continue
		}
		sawPosition = true

		emailCol := findCell(row, func(s string) bool { return strings.Contains(s, "bars email") })
		if emailCol < 0 {
			continue
		}

		cols := Columns{
			Row:      i,
			Position: posCol,
			Email:    emailCol,
			Name:     findCell(row, func(s string) bool { return s == "name" }),
			Personal: findCell(row, func(s string) bool { return strings.Contains(s, "personal email") }),
			Phone:    findCell(row, func(s string) bool { return strings.Contains(s, "phone") }),
			Birthday: findCell(row, func(s string) bool { return strings.Contains(s, "birthday") }),
		}
		if cols.Name < 0 {
			// Exports always place the name right after the title.
			cols.Name = posCol + 1
		}
		return cols, nil
	}

	if sawPosition {
		return Columns{}, ErrMissingColumns
	}
	return Columns{}, ErrNoHeaderRow
}

// findCell returns the index of the first cell whose folded text satisfies
// match, or -1.
func findCell(row []string, match func(string) bool) int {
	for i, cell := range row {
		if match(Fold(cell)) {
			return i
		}
	}
	return -1
}

// cell returns the folded-free raw cell at index, or empty when the row is
// shorter or the index is absent (-1).
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// blankRow reports whether every cell normalizes to empty.
func blankRow(row []string) bool {
	for _, c := range row {
		if Clean(c) != "" {
			return false
		}
	}
	return true
}
