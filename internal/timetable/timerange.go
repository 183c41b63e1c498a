package timetable

import (
	"strings"
)

// NormalizeRange maps a hand-typed time range ("8-10am", "1.30-3pm",
// "19:30-21:30") onto one of the six canonical ranges. Matching works on
// parsed minute values, never on text shape: both endpoints are resolved to
// minutes since midnight and the pair must equal a canonical range exactly.
// Returns ok=false for anything it cannot resolve unambiguously.
func NormalizeRange(text string) (TimeRange, bool) {
	cleaned := cleanRangeText(text)
	parts := strings.SplitN(cleaned, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return TimeRange{}, false
	}

	start, startMer, ok := parseClock(parts[0])
	if !ok {
		return TimeRange{}, false
	}
	end, endMer, ok := parseClock(parts[1])
	if !ok {
		return TimeRange{}, false
	}

	// A meridiem on one endpoint covers the other: "1.30-3pm" reads as
	// 13:30-15:00, "8-10am" as 08:00-10:00.
	if startMer == merNone {
		startMer = endMer
	}
	if endMer == merNone {
		endMer = startMer
	}

	candidates := [][2]int{{applyMeridiem(start, startMer), applyMeridiem(end, endMer)}}
	if startMer == merNone && endMer == merNone && start < 12*60 && end < 12*60 {
		// Bare "1.30-3" could mean the afternoon window; try the PM reading
		// too and rely on exact-match against the canonical ranges.
		candidates = append(candidates, [2]int{start + 12*60, end + 12*60})
	}

	var matched TimeRange
	matches := 0
	for _, r := range Ranges {
		for _, c := range candidates {
			if r.Start == c[0] && r.End == c[1] {
				matched = r
				matches++
				break
			}
		}
	}
	if matches != 1 {
		return TimeRange{}, false
	}
	return matched, true
}

// MatchSlot resolves a time-range declaration for a given day.
func MatchSlot(text string, day Day) (Slot, bool) {
	r, ok := NormalizeRange(text)
	if !ok {
		return 0, false
	}
	return SlotAt(day, r)
}

type meridiem int

const (
	merNone meridiem = iota
	merAM
	merPM
)

func cleanRangeText(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\t", "")
	for _, dash := range []string{"–", "—", "‒", "~"} {
		s = strings.ReplaceAll(s, dash, "-")
	}
	return s
}

// parseClock reads "8", "8.30", "8:30", "8am", "8.30pm" into minutes since
// midnight plus the stated meridiem.
func parseClock(token string) (int, meridiem, bool) {
	mer := merNone
	switch {
	case strings.HasSuffix(token, "am"):
		mer = merAM
		token = strings.TrimSuffix(token, "am")
	case strings.HasSuffix(token, "pm"):
		mer = merPM
		token = strings.TrimSuffix(token, "pm")
	}
	if token == "" {
		return 0, merNone, false
	}

	hourPart := token
	minutePart := ""
	for _, sep := range []string{":", "."} {
		if idx := strings.Index(token, sep); idx >= 0 {
			hourPart = token[:idx]
			minutePart = token[idx+len(sep):]
			break
		}
	}

	hour, ok := parseDigits(hourPart)
	if !ok || hour > 23 {
		return 0, merNone, false
	}
	minute := 0
	if minutePart != "" {
		minute, ok = parseDigits(minutePart)
		if !ok || minute > 59 {
			return 0, merNone, false
		}
	}
	if mer != merNone && (hour == 0 || hour > 12) {
		return 0, merNone, false
	}
	return hour*60 + minute, mer, true
}

func applyMeridiem(minutes int, mer meridiem) int {
	hour := minutes / 60
	switch mer {
	case merAM:
		if hour == 12 {
			return minutes - 12*60
		}
	case merPM:
		if hour < 12 {
			return minutes + 12*60
		}
	}
	return minutes
}

func parseDigits(s string) (int, bool) {
	if s == "" || len(s) > 2 {
		return 0, false
	}
	value := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, false
		}
		value = value*10 + int(ch-'0')
	}
	return value, true
}
