package service

const (
	ScreeningToolName = "submit_screening_assessment"
	FinalToolName     = "submit_final_assessment"
)

func scoreSchema(description string) map[string]any {
	return map[string]any{
		"type":        "integer",
		"minimum":     0,
		"maximum":     100,
		"description": description,
	}
}

// ScreeningTool is the forced tool-call contract for screening assessments.
func ScreeningTool() ToolFunction {
	return ToolFunction{
		Name:        ScreeningToolName,
		Description: "Submit the structured screening assessment of the candidate.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"match_score": scoreSchema("Overall match against the role, 0-100"),
				"recommendation": map[string]any{
					"type":        "string",
					"enum":        []string{"proceed", "maybe", "reject"},
					"description": "Whether the candidate should proceed to a full interview",
				},
				"strengths": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Candidate strengths, ordered by relevance",
				},
				"concerns": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Development areas, at most 3",
				},
				"summary": map[string]any{
					"type":        "string",
					"description": "3-5 sentence narrative, client-shareable tone",
				},
			},
			"required": []string{"match_score", "recommendation", "strengths", "concerns", "summary"},
		},
	}
}

// FinalTool is the forced tool-call contract for final assessments.
func FinalTool() ToolFunction {
	return ToolFunction{
		Name:        FinalToolName,
		Description: "Submit the structured final assessment of the candidate.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"match_score":      scoreSchema("Overall match, 0-100"),
				"role_match_score": scoreSchema("Match against the occupational role profile, 0-100"),
				"job_match_score":  scoreSchema("Match against this specific job, 0-100"),
				"strengths": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"point": map[string]any{"type": "string"},
							"evidence": map[string]any{
								"type":        "string",
								"description": "Direct quote or close paraphrase from the transcript",
							},
						},
						"required": []string{"point", "evidence"},
					},
					"description": "Candidate strengths with transcript evidence",
				},
				"concerns": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Development areas, at most 3",
				},
				"summary": map[string]any{
					"type":        "string",
					"description": "3-5 sentence narrative, client-shareable tone",
				},
				"technical_assessment": map[string]any{
					"type":        "string",
					"description": "Narrative assessment of technical competence",
				},
				"soft_skills_assessment": map[string]any{
					"type":        "string",
					"description": "Narrative assessment of soft skills",
				},
				"skill_scores": map[string]any{
					"type":                 "object",
					"additionalProperties": scoreSchema("Skill score, 0-100"),
					"description":          "Score per technical skill from the role profile",
				},
			},
			"required": []string{
				"match_score", "role_match_score", "job_match_score",
				"strengths", "concerns", "summary",
				"technical_assessment", "soft_skills_assessment", "skill_scores",
			},
		},
	}
}
