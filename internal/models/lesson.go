package models

import "time"

// Lesson is a scheduled meeting occupying one slot of a week. Occupancy
// derived from lessons is read-only to the availability engine; placement is
// owned by the server-side auto-scheduler.
type Lesson struct {
	ID        string    `db:"id" json:"id"`
	WeekID    string    `db:"week_id" json:"week_id"`
	Slot      int       `db:"slot" json:"slot"` // 1-based
	Subject   string    `db:"subject" json:"subject"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// LessonOccupant is one (slot, person) occupancy fact for a week.
type LessonOccupant struct {
	Slot     int    `db:"slot" json:"slot"` // 1-based
	PersonID string `db:"person_id" json:"person_id"`
}
