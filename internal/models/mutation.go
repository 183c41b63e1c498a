package models

// BatchMutation is a pending full-replacement write of one person's busy set.
// BusyScheduleArr always carries the complete new set (1-based, ascending);
// the persistence layer replaces, never merges.
type BatchMutation struct {
	Key             string     `json:"key"` // person email
	BusyScheduleArr []int64    `json:"busy_schedule_arr"`
	Type            PersonKind `json:"type"`
}
