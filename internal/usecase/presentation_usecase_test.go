package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nocv-se/nocv-backend/internal/apperr"
	"github.com/nocv-se/nocv-backend/internal/model"
	"github.com/nocv-se/nocv-backend/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftPresentation() *model.Presentation {
	return &model.Presentation{
		ID:            uuid.New(),
		ApplicationID: uuid.New(),
		AssessmentID:  uuid.New(),
		ShareToken:    util.NewShareToken(),
		Status:        model.PresentationStatusDraft,
		Document:      "<!DOCTYPE html><html lang=\"sv\"><body><h1>Erik Svensson</h1></body></html>",
		SkillScores:   model.SkillScores{"Bromssystem": 92},
		CreatedAt:     time.Now().Add(-time.Hour),
	}
}

func TestPresentationLifecycle_PublishThenFetchByToken(t *testing.T) {
	p := draftPresentation()
	store := newFakePresentationStore(p)
	uc := NewPresentationUsecase(store)

	// Draft is invisible on the public path.
	_, err := uc.GetByToken(p.ShareToken, false)
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "presentationen hittades inte", notFound.Message)

	published, err := uc.Publish(p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.PresentationStatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	assert.False(t, published.PublishedAt.Before(p.CreatedAt))

	fetched, err := uc.GetByToken(p.ShareToken, false)
	require.NoError(t, err)
	assert.Equal(t, p.ID, fetched.ID)
	assert.Contains(t, fetched.Document, "Erik Svensson")
}

func TestGetByToken_AdminPreviewsDraft(t *testing.T) {
	p := draftPresentation()
	uc := NewPresentationUsecase(newFakePresentationStore(p))

	fetched, err := uc.GetByToken(p.ShareToken, true)
	require.NoError(t, err)
	assert.Equal(t, model.PresentationStatusDraft, fetched.Status)
}

func TestGetByToken_UnknownToken(t *testing.T) {
	uc := NewPresentationUsecase(newFakePresentationStore())

	_, err := uc.GetByToken("deadbeef", false)
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetByToken_ArchivedIsHiddenEvenFromAdmins(t *testing.T) {
	p := draftPresentation()
	p.Status = model.PresentationStatusArchived
	uc := NewPresentationUsecase(newFakePresentationStore(p))

	_, err := uc.GetByToken(p.ShareToken, false)
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)

	// Admin preview is for drafts; archived stays readable for admins too
	// since the gate only blocks the anonymous path.
	fetched, err := uc.GetByToken(p.ShareToken, true)
	require.NoError(t, err)
	assert.Equal(t, model.PresentationStatusArchived, fetched.Status)
}

func TestPublish_RejectsNonDraft(t *testing.T) {
	published := draftPresentation()
	published.Status = model.PresentationStatusPublished
	archived := draftPresentation()
	archived.Status = model.PresentationStatusArchived
	uc := NewPresentationUsecase(newFakePresentationStore(published, archived))

	for _, p := range []*model.Presentation{published, archived} {
		_, err := uc.Publish(p.ID.String())
		var validation *apperr.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "endast utkast kan publiceras", validation.Message)
	}
}

func TestPublish_UnknownID(t *testing.T) {
	uc := NewPresentationUsecase(newFakePresentationStore())

	_, err := uc.Publish(uuid.NewString())
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestArchive_FromDraftAndPublished(t *testing.T) {
	draft := draftPresentation()
	published := draftPresentation()
	published.Status = model.PresentationStatusPublished
	uc := NewPresentationUsecase(newFakePresentationStore(draft, published))

	for _, p := range []*model.Presentation{draft, published} {
		archived, err := uc.Archive(p.ID.String())
		require.NoError(t, err)
		assert.Equal(t, model.PresentationStatusArchived, archived.Status)
	}

	// Archiving twice is a no-op, not an error.
	again, err := uc.Archive(draft.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.PresentationStatusArchived, again.Status)
}

func TestUpdateOverlay_SetsNotesAndScores(t *testing.T) {
	p := draftPresentation()
	uc := NewPresentationUsecase(newFakePresentationStore(p))

	notes := "Stark kandidat, rekommenderas varmt."
	soft := "Mycket god samarbetsförmåga enligt referenser."
	updated, err := uc.UpdateOverlay(p.ID.String(), OverlayPatch{
		RecruiterNotes:  &notes,
		SoftValuesNotes: &soft,
		SkillScores:     map[string]int{"Bromssystem": 95, "Kundbemötande": 80},
	})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.RecruiterNotes)
	assert.Equal(t, soft, updated.SoftValuesNotes)
	assert.Equal(t, 95, updated.SkillScores["Bromssystem"])
	assert.Equal(t, 80, updated.SkillScores["Kundbemötande"])
}

func TestUpdateOverlay_Validation(t *testing.T) {
	p := draftPresentation()
	uc := NewPresentationUsecase(newFakePresentationStore(p))

	cases := []struct {
		name    string
		patch   OverlayPatch
		message string
	}{
		{"empty skill name", OverlayPatch{SkillScores: map[string]int{"": 50}}, "kompetensnamn får inte vara tomt"},
		{"score above range", OverlayPatch{SkillScores: map[string]int{"Bromssystem": 101}}, "poäng för Bromssystem måste vara mellan 0 och 100"},
		{"score below range", OverlayPatch{SkillScores: map[string]int{"Bromssystem": -1}}, "poäng för Bromssystem måste vara mellan 0 och 100"},
		{"empty patch", OverlayPatch{}, "inga fält att uppdatera"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.UpdateOverlay(p.ID.String(), tc.patch)
			var validation *apperr.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.message, validation.Message)
		})
	}
}

func TestUpdateOverlay_DoesNotTouchDocument(t *testing.T) {
	p := draftPresentation()
	originalDocument := p.Document
	uc := NewPresentationUsecase(newFakePresentationStore(p))

	notes := "Intern notering."
	updated, err := uc.UpdateOverlay(p.ID.String(), OverlayPatch{RecruiterNotes: &notes})
	require.NoError(t, err)
	assert.Equal(t, originalDocument, updated.Document)
	assert.Equal(t, model.PresentationStatusDraft, updated.Status)
}
