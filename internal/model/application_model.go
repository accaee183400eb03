package model

import (
	"time"

	"github.com/google/uuid"
)

// Application is read-only from the assessment pipeline; the pipeline only
// attaches new transcripts, assessments and presentations to it.
type Application struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID         uuid.UUID `gorm:"type:uuid" json:"job_id"`
	Job           Job       `json:"job"`
	CandidateName string    `gorm:"type:varchar(255)" json:"candidate_name"`
	Email         string    `gorm:"type:varchar(255)" json:"email"`
	Phone         string    `gorm:"type:varchar(64)" json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (a *Application) TableName() string {
	return "applications"
}
