package models

// SnapshotEntry is the cached last-known state of one person for a week.
type SnapshotEntry struct {
	PersonID string     `json:"person_id"`
	Kind     PersonKind `json:"kind"`
	Slots    []int64    `json:"slots"`
}

// RosterSnapshot caches last-known busy sets keyed by person email. Batch
// edits seed their working sets from here; a toggle for a key missing from
// the snapshot is dropped, because a replace-the-set write without a known
// base would silently erase unrelated slots.
type RosterSnapshot map[string]SnapshotEntry
