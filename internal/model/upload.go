package model

import "time"

// Upload statuses.
const (
	UploadStatusSucceeded = "succeeded"
	UploadStatusFailed    = "failed"
)

// Upload is the audit record of one statement ingestion run.
type Upload struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	RunID       string    `gorm:"size:36;uniqueIndex;not null" json:"runId"`
	Filename    string    `gorm:"size:255" json:"filename"`
	Institution string    `gorm:"size:64" json:"institution"`
	RowsWritten int       `json:"rowsWritten"`
	RowsSkipped int       `json:"rowsSkipped"`
	Status      string    `gorm:"size:16;not null" json:"status"`
	Error       string    `gorm:"size:512" json:"error,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
