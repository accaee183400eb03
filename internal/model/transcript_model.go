package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	InterviewTypeScreening = "screening"
	InterviewTypeFull      = "full_interview"
)

// Transcript is immutable once created; one row per generation call.
type Transcript struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;index" json:"application_id"`
	InterviewType string    `gorm:"type:varchar(32)" json:"interview_type"`
	Content       string    `gorm:"type:text" json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

func (t *Transcript) TableName() string {
	return "transcripts"
}
