package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PresentationStatusDraft     = "draft"
	PresentationStatusPublished = "published"
	PresentationStatusArchived  = "archived"
)

// Presentation is the shareable, recruiter-curated view of a final assessment.
// ShareToken is the sole authorization for unauthenticated access and must be
// unguessable; it is never derived from the application or candidate.
type Presentation struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;index" json:"application_id"`
	AssessmentID  uuid.UUID `gorm:"type:uuid" json:"assessment_id"`

	ShareToken  string     `gorm:"type:varchar(64);uniqueIndex" json:"share_token"`
	Status      string     `gorm:"type:varchar(32);index" json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	Document string `gorm:"type:text" json:"-"`

	// Recruiter-editable overlay, independent of the AI-generated assessment.
	RecruiterNotes  string      `gorm:"type:text" json:"recruiter_notes"`
	SoftValuesNotes string      `gorm:"type:text" json:"soft_values_notes"`
	SkillScores     SkillScores `gorm:"type:jsonb" json:"skill_scores"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Presentation) TableName() string {
	return "presentations"
}
