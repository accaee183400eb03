package service

import (
	"encoding/json"
	"fmt"

	"github.com/nocv-se/nocv-backend/internal/model"
)

const (
	placeholderDescription  = "Ingen beskrivning angiven"
	placeholderRequirements = "Inga krav angivna"
	placeholderCity         = "Ej angiven"
)

// BuildSystemPrompt embeds the role profile and the job context into the
// stage-specific system prompt. The transcript itself is sent as the user
// message, never interpolated here.
func BuildSystemPrompt(stage string, profile *model.RoleProfile, app *model.Application) string {
	technical, _ := json.Marshal(profile.TechnicalSkills)
	soft, _ := json.Marshal(profile.SoftSkills)
	knowledge, _ := json.Marshal(profile.KnowledgeAreas)

	job := app.Job
	description := placeholderDescription
	if job.Description != nil && *job.Description != "" {
		description = *job.Description
	}
	requirements := placeholderRequirements
	if job.Requirements != nil && *job.Requirements != "" {
		requirements = *job.Requirements
	}
	city := placeholderCity
	if job.City != nil && *job.City != "" {
		city = *job.City
	}

	context := fmt.Sprintf(`Role profile: %s
%s

Technical skills: %s
Soft skills: %s
Knowledge areas: %s

Job: %s at %s (%s)
Job description: %s
Job requirements: %s`,
		profile.Name, profile.Description,
		technical, soft, knowledge,
		job.Title, job.Company.Name, city,
		description, requirements,
	)

	if stage == model.AssessmentTypeScreening {
		return fmt.Sprintf(`You are an experienced recruiter doing a first screening for CV-less hiring.
The user message is the raw transcript of a short screening interview.

%s

Decide whether the candidate should proceed to a full interview. Base every judgement
strictly on what the candidate actually said in the transcript. Keep strengths and
concerns short. Write all narrative text in Swedish, in a tone that can be shared
with the client company.

Submit your assessment by calling %s.`, context, ScreeningToolName)
	}

	return fmt.Sprintf(`You are an experienced recruiter writing the final assessment of a candidate
for CV-less hiring. The user message is the raw transcript of a full interview.

%s

Score the candidate overall, against the role profile, and against this specific job.
Score every technical skill from the role profile individually in skill_scores.
For each strength, quote or closely paraphrase the part of the transcript that proves
it as evidence. Base every judgement strictly on the transcript. Write all narrative
text in Swedish, in a tone that can be shared with the client company.

Submit your assessment by calling %s.`, context, FinalToolName)
}
