package models

import "time"

// PersonKind discriminates the two roster populations. The wire values match
// the busy-schedule write payload contract.
type PersonKind string

const (
	KindStudent PersonKind = "user"
	KindTeacher PersonKind = "teacher"
)

// Valid reports whether the kind is one of the two known populations.
func (k PersonKind) Valid() bool {
	return k == KindStudent || k == KindTeacher
}

// Person is a student or teacher on the roster. Email is the external key
// used by bulk busy-schedule writes.
type Person struct {
	ID        string     `db:"id" json:"id"`
	Email     string     `db:"email" json:"email"`
	FullName  string     `db:"full_name" json:"full_name"`
	Kind      PersonKind `db:"kind" json:"kind"`
	Active    bool       `db:"active" json:"active"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// PersonFilter encapsulates allowed search parameters for listing the roster.
type PersonFilter struct {
	Search   string
	Kind     PersonKind
	Active   *bool
	Page     int
	PageSize int
}

// BusySchedule is one person's self-declared unavailability for a week.
// Slots carries 1-based slot numbers sorted ascending; busy is tracked apart
// from lesson occupancy, which is derived from the lesson schedule.
type BusySchedule struct {
	ID        string    `db:"id" json:"id"`
	PersonID  string    `db:"person_id" json:"person_id"`
	WeekID    string    `db:"week_id" json:"week_id"`
	Slots     []int64   `db:"slots" json:"slots"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// RosterEntry is the joined view the availability screens render: a person
// plus their busy set for the requested week.
type RosterEntry struct {
	Person
	WeekID string  `json:"week_id"`
	Slots  []int64 `json:"busy_schedule_arr"`
}
