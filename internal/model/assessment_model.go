package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AssessmentTypeScreening = "screening"
	AssessmentTypeFinal     = "final"

	RecommendationProceed = "proceed"
	RecommendationMaybe   = "maybe"
	RecommendationReject  = "reject"
)

// Assessment is the structured output of one generation call. The store keeps
// historical rows; readers surface the most recent per type.
type Assessment struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;index" json:"application_id"`
	TranscriptID  uuid.UUID `gorm:"type:uuid" json:"transcript_id"`
	RoleProfileID uuid.UUID `gorm:"type:uuid" json:"role_profile_id"`
	Type          string    `gorm:"type:varchar(32);index" json:"type"`

	MatchScore     int  `json:"match_score"`
	RoleMatchScore *int `json:"role_match_score,omitempty"` // final only
	JobMatchScore  *int `json:"job_match_score,omitempty"`  // final only

	Recommendation *string `gorm:"type:varchar(32)" json:"recommendation,omitempty"` // screening only

	// Screening strengths carry only Point; final strengths also carry Evidence.
	Strengths StrengthList `gorm:"type:jsonb" json:"strengths"`
	Concerns  StringList   `gorm:"type:jsonb" json:"concerns"`
	Summary   string       `gorm:"type:text" json:"summary"`

	TechnicalAssessment  *string     `gorm:"type:text" json:"technical_assessment,omitempty"`   // final only
	SoftSkillsAssessment *string     `gorm:"type:text" json:"soft_skills_assessment,omitempty"` // final only
	SkillScores          SkillScores `gorm:"type:jsonb" json:"skill_scores,omitempty"`          // final only

	CreatedAt time.Time `json:"created_at"`
}

func (a *Assessment) TableName() string {
	return "assessments"
}
