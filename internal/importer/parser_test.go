package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbel-hq/rostering-api/internal/timetable"
)

const studentHeader = "Timestamp,Email Address,Class,Full Name,Monday,Tuesday,Wednesday,Thursday,Friday,Saturday,Sunday,Reason"
const teacherHeader = "Timestamp,Email,Teacher Name,Monday,Tuesday,Wednesday,Thursday,Friday,Saturday,Sunday,Reason"

func TestParseStudentRow(t *testing.T) {
	text := studentHeader + "\n" +
		`2024/01/08 09:00,alice@x.com,7A,Alice,"8-10am",,,,,,,`

	rows := Parse(text, SheetStudent)
	require.Len(t, rows, 1)

	row := rows[0]
	require.True(t, row.OK(), "errors: %v", row.Errors)
	assert.Equal(t, "alice@x.com", row.Email)
	assert.Equal(t, "Alice", row.Name)

	want, ok := timetable.SlotAt(timetable.Monday, timetable.Ranges[0])
	require.True(t, ok)
	assert.Equal(t, []timetable.Slot{want}, row.BusySlots)
}

func TestParseMultiRangeCell(t *testing.T) {
	text := studentHeader + "\n" +
		`ts,bob@x.com,7B,Bob,"8-10am, 10-12, 8-10am",,,,,,"7.30-9.30pm",done`

	rows := Parse(text, SheetStudent)
	require.Len(t, rows, 1)
	require.True(t, rows[0].OK(), "errors: %v", rows[0].Errors)

	// Duplicates collapse, result sorted ascending.
	assert.Equal(t, []timetable.Slot{0, 1, timetable.SlotsPerWeek - 1}, rows[0].BusySlots)
}

func TestParseUnrecognizedRange(t *testing.T) {
	text := studentHeader + "\n" +
		`ts,carol@x.com,7C,Carol,"9-11am",,,,,,,`

	rows := Parse(text, SheetStudent)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.False(t, row.OK())
	assert.Empty(t, row.BusySlots)
	require.Len(t, row.Errors, 1)
	assert.Contains(t, row.Errors[0], "9-11am")
	assert.Contains(t, row.Errors[0], "Monday")
}

func TestParseHeaderMissingEmail(t *testing.T) {
	lines := []string{"Timestamp,Address,Class,Full Name,Monday,Tuesday,Wednesday,Thursday,Friday,Saturday,Sunday,Reason"}
	for i := 0; i < 100; i++ {
		lines = append(lines, `ts,someone@x.com,7A,Someone,"8-10am",,,,,,,`)
	}

	rows := Parse(strings.Join(lines, "\n"), SheetStudent)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].OK())
	assert.Contains(t, rows[0].Errors[0], "email")
}

func TestParseHeaderDayMismatchAggregated(t *testing.T) {
	header := "Timestamp,Email,Class,Full Name,Monday,Dienstag,Wednesday,Donnerstag,Friday,Saturday,Sunday,Reason"
	rows := Parse(header+"\n"+`ts,a@x.com,7A,A,,,,,,,,`, SheetStudent)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.False(t, row.OK())
	require.Len(t, row.Errors, 1)
	assert.Contains(t, row.Errors[0], "Tuesday")
	assert.Contains(t, row.Errors[0], "Thursday")
}

func TestParseTeacherLayout(t *testing.T) {
	text := teacherHeader + "\n" +
		`ts,mr.t@x.com,Mr T,,,,,,,"7.30-9.30pm",late class`

	rows := Parse(text, SheetTeacher)
	require.Len(t, rows, 1)

	row := rows[0]
	require.True(t, row.OK(), "errors: %v", row.Errors)
	assert.Equal(t, "mr.t@x.com", row.Email)
	assert.Equal(t, "Mr T", row.Name)
	assert.Equal(t, []timetable.Slot{timetable.SlotsPerWeek - 1}, row.BusySlots)
}

func TestParseShortRow(t *testing.T) {
	text := studentHeader + "\n" + "ts,short@x.com,7A"
	rows := Parse(text, SheetStudent)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].OK())
	assert.Equal(t, "short@x.com", rows[0].Email)
}

func TestParseMissingEmailRow(t *testing.T) {
	text := studentHeader + "\n" + `ts,,7A,NoEmail,"8-10am",,,,,,,`
	rows := Parse(text, SheetStudent)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].OK())
	assert.Contains(t, rows[0].Errors[0], "email is empty")
}

func TestParseErrorsStableAcrossRuns(t *testing.T) {
	text := studentHeader + "\n" +
		`ts,d@x.com,7D,D,"9-11am","noon-ish",,,,"8-13",,`

	first := Parse(text, SheetStudent)
	second := Parse(text, SheetStudent)
	require.Len(t, first, 1)
	assert.Equal(t, first[0].Errors, second[0].Errors)
	assert.Len(t, first[0].Errors, 3)
}

func TestParseEmptyInput(t *testing.T) {
	rows := Parse("   \n\n", SheetStudent)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].OK())
}
