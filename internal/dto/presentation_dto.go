package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/nocv-se/nocv-backend/internal/model"
)

// PresentationDTO is the authenticated API view. The rendered document itself
// is only served on the public share path, never inside the JSON envelope.
type PresentationDTO struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	AssessmentID  uuid.UUID `json:"assessment_id"`

	ShareToken  string     `json:"share_token"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	RecruiterNotes  string         `json:"recruiter_notes"`
	SoftValuesNotes string         `json:"soft_values_notes"`
	SkillScores     map[string]int `json:"skill_scores"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPresentationDTO(p *model.Presentation) PresentationDTO {
	return PresentationDTO{
		ID:              p.ID,
		ApplicationID:   p.ApplicationID,
		AssessmentID:    p.AssessmentID,
		ShareToken:      p.ShareToken,
		Status:          p.Status,
		PublishedAt:     p.PublishedAt,
		RecruiterNotes:  p.RecruiterNotes,
		SoftValuesNotes: p.SoftValuesNotes,
		SkillScores:     p.SkillScores,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// PresentationRefDTO is the compact reference embedded in the generation
// response.
type PresentationRefDTO struct {
	ID         uuid.UUID `json:"id"`
	ShareToken string    `json:"share_token"`
	Status     string    `json:"status"`
}

func NewPresentationRefDTO(p *model.Presentation) *PresentationRefDTO {
	if p == nil {
		return nil
	}
	return &PresentationRefDTO{ID: p.ID, ShareToken: p.ShareToken, Status: p.Status}
}

// RoleSuggestionDTO is one vector-search hit for a transcript.
type RoleSuggestionDTO struct {
	RoleKey     string `json:"role_key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewRoleSuggestionDTOs(profiles []model.RoleProfile) []RoleSuggestionDTO {
	out := make([]RoleSuggestionDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, RoleSuggestionDTO{RoleKey: p.RoleKey, Name: p.Name, Description: p.Description})
	}
	return out
}
