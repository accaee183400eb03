package usecase

import (
	"encoding/json"

	"github.com/nocv-se/nocv-backend/internal/apperr"
	"github.com/nocv-se/nocv-backend/internal/model"
)

// The schema declares 0-100 but the model is not trusted to respect it;
// every score is clamped after parsing, before persistence.
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func malformed(reason string) error {
	return &apperr.MalformedResponseError{Reason: reason}
}

type screeningArguments struct {
	MatchScore     *int     `json:"match_score"`
	Recommendation *string  `json:"recommendation"`
	Strengths      []string `json:"strengths"`
	Concerns       []string `json:"concerns"`
	Summary        *string  `json:"summary"`
}

func parseScreeningArguments(args string) (*model.Assessment, error) {
	var parsed screeningArguments
	if err := json.Unmarshal([]byte(args), &parsed); err != nil {
		return nil, malformed("screening arguments: " + err.Error())
	}
	if parsed.MatchScore == nil {
		return nil, malformed("screening arguments missing match_score")
	}
	if parsed.Summary == nil || *parsed.Summary == "" {
		return nil, malformed("screening arguments missing summary")
	}
	if parsed.Recommendation == nil {
		return nil, malformed("screening arguments missing recommendation")
	}
	switch *parsed.Recommendation {
	case model.RecommendationProceed, model.RecommendationMaybe, model.RecommendationReject:
	default:
		return nil, malformed("invalid recommendation: " + *parsed.Recommendation)
	}

	strengths := make(model.StrengthList, 0, len(parsed.Strengths))
	for _, s := range parsed.Strengths {
		if s == "" {
			continue
		}
		strengths = append(strengths, model.Strength{Point: s})
	}

	score := clampScore(*parsed.MatchScore)
	return &model.Assessment{
		Type:           model.AssessmentTypeScreening,
		MatchScore:     score,
		Recommendation: parsed.Recommendation,
		Strengths:      strengths,
		Concerns:       model.StringList(parsed.Concerns),
		Summary:        *parsed.Summary,
	}, nil
}

type finalArguments struct {
	MatchScore           *int             `json:"match_score"`
	RoleMatchScore       *int             `json:"role_match_score"`
	JobMatchScore        *int             `json:"job_match_score"`
	Strengths            []model.Strength `json:"strengths"`
	Concerns             []string         `json:"concerns"`
	Summary              *string          `json:"summary"`
	TechnicalAssessment  *string          `json:"technical_assessment"`
	SoftSkillsAssessment *string          `json:"soft_skills_assessment"`
	SkillScores          map[string]int   `json:"skill_scores"`
}

func parseFinalArguments(args string) (*model.Assessment, error) {
	var parsed finalArguments
	if err := json.Unmarshal([]byte(args), &parsed); err != nil {
		return nil, malformed("final arguments: " + err.Error())
	}
	if parsed.MatchScore == nil || parsed.RoleMatchScore == nil || parsed.JobMatchScore == nil {
		return nil, malformed("final arguments missing score fields")
	}
	if parsed.Summary == nil || *parsed.Summary == "" {
		return nil, malformed("final arguments missing summary")
	}
	if parsed.TechnicalAssessment == nil || parsed.SoftSkillsAssessment == nil {
		return nil, malformed("final arguments missing narrative assessments")
	}
	if len(parsed.Strengths) == 0 {
		return nil, malformed("final arguments missing strengths")
	}
	for _, s := range parsed.Strengths {
		if s.Point == "" || s.Evidence == "" {
			return nil, malformed("final strength missing point or evidence")
		}
	}

	matchScore := clampScore(*parsed.MatchScore)
	roleScore := clampScore(*parsed.RoleMatchScore)
	jobScore := clampScore(*parsed.JobMatchScore)

	skillScores := make(model.SkillScores, len(parsed.SkillScores))
	for skill, score := range parsed.SkillScores {
		if skill == "" {
			continue
		}
		skillScores[skill] = clampScore(score)
	}

	return &model.Assessment{
		Type:                 model.AssessmentTypeFinal,
		MatchScore:           matchScore,
		RoleMatchScore:       &roleScore,
		JobMatchScore:        &jobScore,
		Strengths:            model.StrengthList(parsed.Strengths),
		Concerns:             model.StringList(parsed.Concerns),
		Summary:              *parsed.Summary,
		TechnicalAssessment:  parsed.TechnicalAssessment,
		SoftSkillsAssessment: parsed.SoftSkillsAssessment,
		SkillScores:          skillScores,
	}, nil
}
