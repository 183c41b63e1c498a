package timetable

import (
	"fmt"
	"strings"
)

// The weekly grid is fixed: 7 days times 6 teaching ranges, 42 slots.
// Internally slots are 0-based; every payload exchanged with clients and
// stored busy sets use 1-based numbering. External and SlotFromExternal are
// the only conversion points.
const (
	DaysPerWeek  = 7
	RangesPerDay = 6
	SlotsPerWeek = DaysPerWeek * RangesPerDay
)

// Day identifies a weekday in canonical Monday-first order.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// String returns the English display label.
func (d Day) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Valid reports whether d names one of the seven weekdays.
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ParseDay resolves a case-insensitive English day name.
func ParseDay(name string) (Day, bool) {
	trimmed := strings.TrimSpace(name)
	for i, candidate := range dayNames {
		if strings.EqualFold(trimmed, candidate) {
			return Day(i), true
		}
	}
	return 0, false
}

// TimeRange is one of the six canonical teaching windows, in minutes since
// midnight. Every day shares the same six ranges.
type TimeRange struct {
	Start int
	End   int
}

// String renders the range as HH:MM-HH:MM.
func (r TimeRange) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", r.Start/60, r.Start%60, r.End/60, r.End%60)
}

// Ranges lists the canonical teaching windows in within-day order.
var Ranges = [RangesPerDay]TimeRange{
	{Start: 8 * 60, End: 10 * 60},
	{Start: 10 * 60, End: 12 * 60},
	{Start: 13*60 + 30, End: 15 * 60},
	{Start: 15 * 60, End: 17 * 60},
	{Start: 17*60 + 30, End: 19*60 + 30},
	{Start: 19*60 + 30, End: 21*60 + 30},
}

// Slot is a 0-based position in the 42-slot week.
type Slot int

// Valid reports whether s lies inside the week.
func (s Slot) Valid() bool {
	return s >= 0 && s < SlotsPerWeek
}

// Day returns the weekday a slot belongs to.
func (s Slot) Day() Day {
	return Day(int(s) / RangesPerDay)
}

// Range returns the teaching window a slot belongs to.
func (s Slot) Range() TimeRange {
	return Ranges[int(s)%RangesPerDay]
}

// External converts to the 1-based numbering used on the wire and in storage.
func (s Slot) External() int {
	return int(s) + 1
}

// SlotFromExternal converts a 1-based slot number back to the internal form.
func SlotFromExternal(e int) (Slot, bool) {
	s := Slot(e - 1)
	return s, s.Valid()
}

// SlotAt is the inverse of Day/Range: it locates the slot for a day and a
// canonical range, matching the range by exact value.
func SlotAt(day Day, r TimeRange) (Slot, bool) {
	if !day.Valid() {
		return 0, false
	}
	for i, candidate := range Ranges {
		if candidate == r {
			return Slot(int(day)*RangesPerDay + i), true
		}
	}
	return 0, false
}
