package dto

// SlotAvailability is one cell of the 42-slot sweep. Slot carries the 1-based
// external index.
type SlotAvailability struct {
	Slot          int      `json:"slot"`
	Day           string   `json:"day"`
	TimeRange     string   `json:"timeRange"`
	FreePersonIDs []string `json:"freePersonIds"`
	GroupFree     bool     `json:"groupFree"`
}

// AvailabilityGridResponse answers "who is free where" for a week, plus the
// all-free flags for the requested group.
type AvailabilityGridResponse struct {
	WeekID string             `json:"weekId"`
	Group  []string           `json:"group,omitempty"`
	Slots  []SlotAvailability `json:"slots"`
}

// RosterEntryResult is a roster listing row with its completion
// classification (all 42 slots marked busy).
type RosterEntryResult struct {
	PersonID        string  `json:"personId"`
	Email           string  `json:"email"`
	FullName        string  `json:"fullName"`
	Kind            string  `json:"kind"`
	BusyScheduleArr []int64 `json:"busy_schedule_arr"`
	FullyDeclared   bool    `json:"fullyDeclared"`
}

// RosterResponse lists roster entries for a week.
type RosterResponse struct {
	WeekID  string              `json:"weekId"`
	Entries []RosterEntryResult `json:"entries"`
}
