package dto

import "github.com/bimbel-hq/rostering-api/internal/models"

// SlotToggle is one cell edit: mark a person busy or free at a 1-based slot.
type SlotToggle struct {
	Key  string `json:"key" validate:"required,email"`
	Slot int    `json:"slot" validate:"required,min=1,max=42"`
	Busy bool   `json:"busy"`
}

// BatchUpdateRequest carries the pending cell edits of one editing session.
type BatchUpdateRequest struct {
	WeekID  string       `json:"weekId" validate:"required"`
	Toggles []SlotToggle `json:"toggles" validate:"required,min=1,dive"`
}

// SkippedToggle names a person whose edits were dropped and why.
type SkippedToggle struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// BatchUpdateResponse reports the mutations written: exactly one per distinct
// person touched, each a full replacement set.
type BatchUpdateResponse struct {
	WeekID    string                 `json:"weekId"`
	Mutations []models.BatchMutation `json:"mutations"`
	Skipped   []SkippedToggle        `json:"skipped,omitempty"`
}
