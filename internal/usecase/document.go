package usecase

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/nocv-se/nocv-backend/internal/model"
	"github.com/nocv-se/nocv-backend/internal/util"
)

// The document is a self-contained page sent as a share link to client
// companies. Candidate names, summaries and evidence quotes are untrusted
// text (model output plus user-submitted names); html/template escapes every
// interpolation so nothing can break out of the document structure.
var documentTemplate = template.Must(template.New("presentation").Parse(`<!DOCTYPE html>
<html lang="sv">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="robots" content="noindex, nofollow">
<meta name="referrer" content="no-referrer">
<title>Kandidatpresentation – {{.CandidateName}}</title>
<style>
body{font-family:-apple-system,'Segoe UI',sans-serif;max-width:760px;margin:0 auto;padding:2rem;color:#1a1a2e}
h1{font-size:1.6rem;margin-bottom:0}
h2{font-size:1.1rem;margin-top:2rem;border-bottom:1px solid #e0e0e8;padding-bottom:.3rem}
.meta{color:#555;margin-top:.3rem}
.scores{display:flex;gap:2rem;margin:1.5rem 0}
.score{text-align:center}
.score .value{font-size:2rem;font-weight:700}
.score .label{font-size:.8rem;color:#555;text-transform:uppercase}
.strength{margin-bottom:1rem}
.evidence{color:#555;font-style:italic;margin:.2rem 0 0 1rem}
.skill{display:flex;align-items:center;gap:.8rem;margin:.4rem 0}
.skill .name{flex:0 0 220px}
.skill .bar{flex:1;background:#eee;border-radius:4px;height:10px}
.skill .fill{background:#2e5cb8;border-radius:4px;height:10px}
ul{padding-left:1.2rem}
</style>
</head>
<body>
<h1>{{.CandidateName}}</h1>
<p class="meta">{{.RoleName}} · {{.JobTitle}} hos {{.CompanyName}}{{if .City}} · {{.City}}{{end}}</p>

<div class="scores">
<div class="score"><div class="value">{{.MatchScore}}%</div><div class="label">Matchning</div></div>
<div class="score"><div class="value">{{.RoleMatchScore}}%</div><div class="label">Yrkesroll</div></div>
<div class="score"><div class="value">{{.JobMatchScore}}%</div><div class="label">Tjänsten</div></div>
</div>

<h2>Sammanfattning</h2>
<p>{{.Summary}}</p>

<h2>Styrkor</h2>
{{range .Strengths}}<div class="strength">{{.Point}}{{if .Evidence}}<div class="evidence">&ldquo;{{.Evidence}}&rdquo;</div>{{end}}</div>
{{end}}

{{if .Concerns}}<h2>Utvecklingsområden</h2>
<ul>
{{range .Concerns}}<li>{{.}}</li>
{{end}}</ul>
{{end}}

<h2>Teknisk bedömning</h2>
<p>{{.TechnicalAssessment}}</p>

<h2>Mjuka färdigheter</h2>
<p>{{.SoftSkillsAssessment}}</p>

{{if .SkillScores}}<h2>Kompetenser</h2>
{{range .SkillScores}}<div class="skill"><span class="name">{{.Name}}</span><div class="bar"><div class="fill" style="width:{{.Score}}%"></div></div><span>{{.Score}}</span></div>
{{end}}{{end}}
</body>
</html>
`))

type documentSkill struct {
	Name  string
	Score int
}

type documentData struct {
	CandidateName        string
	RoleName             string
	JobTitle             string
	CompanyName          string
	City                 string
	MatchScore           int
	RoleMatchScore       int
	JobMatchScore        int
	Summary              string
	Strengths            []model.Strength
	Concerns             []string
	TechnicalAssessment  string
	SoftSkillsAssessment string
	SkillScores          []documentSkill
}

func renderDocument(app *model.Application, profile *model.RoleProfile, assessment *model.Assessment) (string, error) {
	data := documentData{
		CandidateName: app.CandidateName,
		RoleName:      profile.Name,
		JobTitle:      app.Job.Title,
		CompanyName:   app.Job.Company.Name,
		MatchScore:    assessment.MatchScore,
		Summary:       assessment.Summary,
		Strengths:     assessment.Strengths,
		Concerns:      assessment.Concerns,
	}
	if app.Job.City != nil {
		data.City = *app.Job.City
	}
	if assessment.RoleMatchScore != nil {
		data.RoleMatchScore = *assessment.RoleMatchScore
	}
	if assessment.JobMatchScore != nil {
		data.JobMatchScore = *assessment.JobMatchScore
	}
	if assessment.TechnicalAssessment != nil {
		data.TechnicalAssessment = *assessment.TechnicalAssessment
	}
	if assessment.SoftSkillsAssessment != nil {
		data.SoftSkillsAssessment = *assessment.SoftSkillsAssessment
	}

	// Role-profile order first so the document is stable, extras after.
	seen := map[string]bool{}
	for _, skill := range profile.TechnicalSkills {
		if score, ok := assessment.SkillScores[skill]; ok {
			data.SkillScores = append(data.SkillScores, documentSkill{Name: skill, Score: score})
			seen[skill] = true
		}
	}
	var extras []string
	for skill := range assessment.SkillScores {
		if !seen[skill] {
			extras = append(extras, skill)
		}
	}
	sort.Strings(extras)
	for _, skill := range extras {
		data.SkillScores = append(data.SkillScores, documentSkill{Name: skill, Score: assessment.SkillScores[skill]})
	}

	var sb strings.Builder
	if err := documentTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render presentation document: %w", err)
	}
	return sb.String(), nil
}

// buildPresentation turns a final assessment into its shareable record: a
// fresh unguessable token, the rendered document, the skill scores copied
// from the assessment and an empty recruiter overlay, status draft.
func buildPresentation(app *model.Application, profile *model.RoleProfile, assessment *model.Assessment) (*model.Presentation, error) {
	document, err := renderDocument(app, profile, assessment)
	if err != nil {
		return nil, err
	}

	skillScores := make(model.SkillScores, len(assessment.SkillScores))
	for skill, score := range assessment.SkillScores {
		skillScores[skill] = score
	}

	return &model.Presentation{
		ApplicationID: app.ID,
		ShareToken:    util.NewShareToken(),
		Status:        model.PresentationStatusDraft,
		Document:      document,
		SkillScores:   skillScores,
	}, nil
}
