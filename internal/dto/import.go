package dto

// ImportPreviewRequest submits raw bulk-import text for parsing.
type ImportPreviewRequest struct {
	Kind   string `json:"kind" validate:"required,oneof=student teacher"`
	WeekID string `json:"weekId" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// ImportRowResult reports the outcome of parsing one import line. Rows with
// errors are shown but excluded from any write.
type ImportRowResult struct {
	Email           string   `json:"email"`
	Name            string   `json:"name"`
	BusyScheduleArr []int64  `json:"busy_schedule_arr"`
	BusyCount       int      `json:"busyCount"`
	Errors          []string `json:"errors,omitempty"`
}

// ImportPreviewResponse returns the parse outcome. Submit is only sensible
// when WritableRows is positive.
type ImportPreviewResponse struct {
	PreviewID    string            `json:"previewId"`
	WeekID       string            `json:"weekId"`
	Kind         string            `json:"kind"`
	Rows         []ImportRowResult `json:"rows"`
	WritableRows int               `json:"writableRows"`
}

// ImportSkippedRow names a writable row that could not be committed.
type ImportSkippedRow struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// ImportCommitResponse summarises a committed preview.
type ImportCommitResponse struct {
	WeekID  string             `json:"weekId"`
	Written int                `json:"written"`
	Skipped []ImportSkippedRow `json:"skipped,omitempty"`
}
