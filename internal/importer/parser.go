package importer

import (
	"fmt"
	"strings"

	"github.com/bimbel-hq/rostering-api/internal/timetable"
)

// SheetKind selects the column layout of a bulk-import sheet. Student and
// teacher exports share the same shape except for the name columns, which
// shifts where the seven day columns start.
type SheetKind string

const (
	SheetStudent SheetKind = "student"
	SheetTeacher SheetKind = "teacher"
)

// Valid reports whether the kind names a known layout.
func (k SheetKind) Valid() bool {
	return k == SheetStudent || k == SheetTeacher
}

// sheetLayout pins the fixed column positions of an export sheet. Column 0 is
// a timestamp and the column after the day block is a free-text reason; both
// are ignored.
type sheetLayout struct {
	emailCol int
	nameCol  int
	dayStart int
}

func (k SheetKind) layout() sheetLayout {
	if k == SheetTeacher {
		return sheetLayout{emailCol: 1, nameCol: 2, dayStart: 3}
	}
	// Student sheets carry class name at 2 and full name at 3.
	return sheetLayout{emailCol: 1, nameCol: 3, dayStart: 4}
}

func (l sheetLayout) minColumns() int {
	return l.dayStart + timetable.DaysPerWeek
}

// Row is one parsed import record. A row with a non-empty Errors list is
// shown to the operator with its reasons and is never written.
type Row struct {
	Email     string           `json:"email"`
	Name      string           `json:"name"`
	BusySlots []timetable.Slot `json:"-"`
	Errors    []string         `json:"errors"`
}

// OK reports whether the row is writable.
func (r Row) OK() bool {
	return len(r.Errors) == 0
}

// Parse turns raw delimited text into validated rows. It never fails: header
// problems yield a single synthetic row carrying the aggregated header errors
// and no data rows; per-row problems are collected on the affected row, which
// is still emitted so the operator can see why it will be excluded.
func Parse(text string, kind SheetKind) []Row {
	layout := kind.layout()
	lines := SplitLines(text)
	if len(lines) == 0 {
		return []Row{{Errors: []string{"import text is empty"}}}
	}

	if headerErrs := validateHeader(SplitFields(lines[0]), layout); len(headerErrs) > 0 {
		return []Row{{Errors: headerErrs}}
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, parseRow(SplitFields(line), layout))
	}
	return rows
}

func validateHeader(fields []string, layout sheetLayout) []string {
	var errs []string
	if len(fields) < layout.minColumns() {
		errs = append(errs, fmt.Sprintf("header has %d columns, expected at least %d", len(fields), layout.minColumns()))
		return errs
	}

	if !strings.Contains(strings.ToLower(fields[layout.emailCol]), "email") {
		errs = append(errs, fmt.Sprintf("column %d must be the email column, got %q", layout.emailCol, fields[layout.emailCol]))
	}

	var mismatched []string
	for i := 0; i < timetable.DaysPerWeek; i++ {
		want := timetable.Day(i).String()
		cell := fields[layout.dayStart+i]
		if !strings.Contains(strings.ToLower(cell), strings.ToLower(want)) {
			mismatched = append(mismatched, fmt.Sprintf("column %d should be %s, got %q", layout.dayStart+i, want, cell))
		}
	}
	if len(mismatched) > 0 {
		errs = append(errs, "day columns out of shape: "+strings.Join(mismatched, "; "))
	}
	return errs
}

func parseRow(fields []string, layout sheetLayout) Row {
	row := Row{}
	if layout.emailCol < len(fields) {
		row.Email = strings.TrimSpace(fields[layout.emailCol])
	}
	if layout.nameCol < len(fields) {
		row.Name = strings.TrimSpace(fields[layout.nameCol])
	}

	if len(fields) < layout.minColumns() {
		row.Errors = append(row.Errors, fmt.Sprintf("row has %d columns, expected at least %d", len(fields), layout.minColumns()))
		return row
	}
	if row.Email == "" {
		row.Errors = append(row.Errors, "email is empty")
	}

	busy := timetable.NewSlotSet()
	for i := 0; i < timetable.DaysPerWeek; i++ {
		day := timetable.Day(i)
		cell := fields[layout.dayStart+i]
		for _, token := range strings.Split(cell, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			slot, ok := timetable.MatchSlot(token, day)
			if !ok {
				row.Errors = append(row.Errors, fmt.Sprintf("unrecognized time range %q for %s", token, day))
				continue
			}
			busy.Add(slot)
		}
	}
	row.BusySlots = busy.Sorted()
	return row
}
