package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/nocv-se/nocv-backend/internal/model"
)

// StrengthDTO is the final-assessment shape: a claim plus its transcript quote.
type StrengthDTO struct {
	Point    string `json:"point"`
	Evidence string `json:"evidence"`
}

// AssessmentDTO is the API view of an assessment. Screening strengths are
// plain strings; final strengths carry evidence. Exactly one of the two
// strength fields is set, matching the type.
type AssessmentDTO struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	Type          string    `json:"type"`

	MatchScore     int     `json:"match_score"`
	RoleMatchScore *int    `json:"role_match_score,omitempty"`
	JobMatchScore  *int    `json:"job_match_score,omitempty"`
	Recommendation *string `json:"recommendation,omitempty"`

	Strengths         []string      `json:"strengths,omitempty"`
	StrengthsEvidence []StrengthDTO `json:"strengths_with_evidence,omitempty"`
	Concerns          []string      `json:"concerns"`
	Summary           string        `json:"summary"`

	TechnicalAssessment  *string        `json:"technical_assessment,omitempty"`
	SoftSkillsAssessment *string        `json:"soft_skills_assessment,omitempty"`
	SkillScores          map[string]int `json:"skill_scores,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func NewAssessmentDTO(a *model.Assessment) AssessmentDTO {
	out := AssessmentDTO{
		ID:                   a.ID,
		ApplicationID:        a.ApplicationID,
		Type:                 a.Type,
		MatchScore:           a.MatchScore,
		RoleMatchScore:       a.RoleMatchScore,
		JobMatchScore:        a.JobMatchScore,
		Recommendation:       a.Recommendation,
		Concerns:             a.Concerns,
		Summary:              a.Summary,
		TechnicalAssessment:  a.TechnicalAssessment,
		SoftSkillsAssessment: a.SoftSkillsAssessment,
		SkillScores:          a.SkillScores,
		CreatedAt:            a.CreatedAt,
	}
	if out.Concerns == nil {
		out.Concerns = []string{}
	}
	if a.Type == model.AssessmentTypeScreening {
		out.Strengths = make([]string, 0, len(a.Strengths))
		for _, s := range a.Strengths {
			out.Strengths = append(out.Strengths, s.Point)
		}
	} else {
		out.StrengthsEvidence = make([]StrengthDTO, 0, len(a.Strengths))
		for _, s := range a.Strengths {
			out.StrengthsEvidence = append(out.StrengthsEvidence, StrengthDTO{Point: s.Point, Evidence: s.Evidence})
		}
	}
	return out
}

func NewAssessmentDTOs(assessments []model.Assessment) []AssessmentDTO {
	out := make([]AssessmentDTO, 0, len(assessments))
	for i := range assessments {
		out = append(out, NewAssessmentDTO(&assessments[i]))
	}
	return out
}
