package usecase

import (
	"strings"
	"testing"

	"github.com/nocv-se/nocv-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finalAssessmentFixture() *model.Assessment {
	roleScore, jobScore := 80, 88
	technical := "Stark teknisk grund, särskilt inom bromssystem."
	soft := "Tydlig kommunikation."
	return &model.Assessment{
		Type:           model.AssessmentTypeFinal,
		MatchScore:     84,
		RoleMatchScore: &roleScore,
		JobMatchScore:  &jobScore,
		Summary:        "Erik är en mycket erfaren mekaniker.",
		Strengths: model.StrengthList{
			{Point: "Gedigen erfarenhet av bromssystem", Evidence: "jag har bytt bromsar i tio år"},
		},
		Concerns:             model.StringList{"Begränsad erfarenhet av elbilar"},
		TechnicalAssessment:  &technical,
		SoftSkillsAssessment: &soft,
		SkillScores:          model.SkillScores{"Bromssystem": 92, "Felsökning": 78, "Elsystem": 55},
	}
}

func TestRenderDocument_ContainsAssessmentContent(t *testing.T) {
	app := mechanicApplication()
	profile := mechanicProfile()
	assessment := finalAssessmentFixture()

	document, err := renderDocument(app, profile, assessment)
	require.NoError(t, err)

	assert.Contains(t, document, `<html lang="sv">`)
	assert.Contains(t, document, "Erik Svensson")
	assert.Contains(t, document, "Bilmekaniker")
	assert.Contains(t, document, "Mekaniker")
	assert.Contains(t, document, "Bilverkstad AB")
	assert.Contains(t, document, "Solna")
	assert.Contains(t, document, "84%")
	assert.Contains(t, document, "80%")
	assert.Contains(t, document, "88%")
	assert.Contains(t, document, "Erik är en mycket erfaren mekaniker.")
	assert.Contains(t, document, "jag har bytt bromsar i tio år")
	assert.Contains(t, document, "Begränsad erfarenhet av elbilar")
	assert.Contains(t, document, "Stark teknisk grund, särskilt inom bromssystem.")
	assert.Contains(t, document, "Tydlig kommunikation.")
}

func TestRenderDocument_BlocksIndexingAndReferrers(t *testing.T) {
	document, err := renderDocument(mechanicApplication(), mechanicProfile(), finalAssessmentFixture())
	require.NoError(t, err)

	assert.Contains(t, document, `<meta name="robots" content="noindex, nofollow">`)
	assert.Contains(t, document, `<meta name="referrer" content="no-referrer">`)
}

func TestRenderDocument_EscapesHostileInput(t *testing.T) {
	app := mechanicApplication()
	app.CandidateName = `<script>alert("xss")</script>`
	assessment := finalAssessmentFixture()
	assessment.Strengths = model.StrengthList{
		{Point: "Styrka", Evidence: `"><img src=x onerror=alert(1)>`},
	}

	document, err := renderDocument(app, mechanicProfile(), assessment)
	require.NoError(t, err)

	assert.NotContains(t, document, "<script>")
	assert.NotContains(t, document, "<img src=x")
	assert.Contains(t, document, "&lt;script&gt;")
}

func TestRenderDocument_SkillOrderFollowsProfile(t *testing.T) {
	profile := mechanicProfile()
	assessment := finalAssessmentFixture()
	// A skill outside the profile taxonomy sorts after the profile ones.
	assessment.SkillScores["AC-service"] = 60

	document, err := renderDocument(mechanicApplication(), profile, assessment)
	require.NoError(t, err)

	positions := []int{
		strings.Index(document, "Bromssystem"),
		strings.Index(document, "Felsökning"),
		strings.Index(document, "Elsystem"),
		strings.Index(document, "AC-service"),
	}
	for i, pos := range positions {
		require.GreaterOrEqual(t, pos, 0, "skill %d missing from document", i)
		if i > 0 {
			assert.Greater(t, pos, positions[i-1])
		}
	}
}

func TestRenderDocument_SkipsOptionalSections(t *testing.T) {
	assessment := finalAssessmentFixture()
	assessment.Concerns = nil
	assessment.SkillScores = nil
	app := mechanicApplication()
	app.Job.City = nil

	document, err := renderDocument(app, mechanicProfile(), assessment)
	require.NoError(t, err)

	assert.NotContains(t, document, "Utvecklingsområden")
	assert.NotContains(t, document, "Kompetenser")
	assert.NotContains(t, document, "Solna")
}

func TestBuildPresentation_DraftWithTokenAndCopiedScores(t *testing.T) {
	assessment := finalAssessmentFixture()
	presentation, err := buildPresentation(mechanicApplication(), mechanicProfile(), assessment)
	require.NoError(t, err)

	assert.Equal(t, model.PresentationStatusDraft, presentation.Status)
	assert.Len(t, presentation.ShareToken, 64)
	assert.Nil(t, presentation.PublishedAt)
	assert.Empty(t, presentation.RecruiterNotes)
	assert.Empty(t, presentation.SoftValuesNotes)
	assert.Contains(t, presentation.Document, "Erik Svensson")

	// The overlay starts as a copy, not a reference.
	presentation.SkillScores["Bromssystem"] = 10
	assert.Equal(t, 92, assessment.SkillScores["Bromssystem"])
}
