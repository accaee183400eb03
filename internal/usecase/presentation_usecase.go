package usecase

import (
	"errors"
	"time"

	"github.com/nocv-se/nocv-backend/internal/apperr"
	"github.com/nocv-se/nocv-backend/internal/model"
	"gorm.io/gorm"
)

type PresentationStore interface {
	FindByID(id string) (*model.Presentation, error)
	FindByToken(shareToken string) (*model.Presentation, error)
	UpdateOverlay(id string, fields map[string]any) (*model.Presentation, error)
	SetStatus(id, status string, publishedAt *time.Time) (*model.Presentation, error)
}

type PresentationUsecase struct {
	presentations PresentationStore
}

func NewPresentationUsecase(presentations PresentationStore) *PresentationUsecase {
	return &PresentationUsecase{presentations: presentations}
}

// GetByToken is the public read path. Unpublished presentations answer
// not-found rather than forbidden so the token is no existence oracle;
// admins and recruiters may preview drafts.
func (uc *PresentationUsecase) GetByToken(shareToken string, isAdmin bool) (*model.Presentation, error) {
	presentation, err := uc.presentations.FindByToken(shareToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("presentation", "presentationen hittades inte")
		}
		return nil, err
	}
	if presentation.Status != model.PresentationStatusPublished && !isAdmin {
		return nil, apperr.NotFound("presentation", "presentationen hittades inte")
	}
	return presentation, nil
}

// Publish moves a draft to published and stamps published_at. No other
// transition reaches published.
func (uc *PresentationUsecase) Publish(id string) (*model.Presentation, error) {
	presentation, err := uc.findByID(id)
	if err != nil {
		return nil, err
	}
	if presentation.Status != model.PresentationStatusDraft {
		return nil, apperr.Validation("endast utkast kan publiceras")
	}
	now := time.Now()
	updated, err := uc.presentations.SetStatus(id, model.PresentationStatusPublished, &now)
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "publish presentation", Err: err}
	}
	return updated, nil
}

// Archive retires a draft or published presentation; its share link stops
// resolving publicly. Archived is terminal.
func (uc *PresentationUsecase) Archive(id string) (*model.Presentation, error) {
	presentation, err := uc.findByID(id)
	if err != nil {
		return nil, err
	}
	if presentation.Status == model.PresentationStatusArchived {
		return presentation, nil
	}
	updated, err := uc.presentations.SetStatus(id, model.PresentationStatusArchived, nil)
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "archive presentation", Err: err}
	}
	return updated, nil
}

// OverlayPatch carries the recruiter-editable overlay. These writes never
// touch the underlying assessment.
type OverlayPatch struct {
	RecruiterNotes  *string
	SoftValuesNotes *string
	SkillScores     map[string]int
}

func (uc *PresentationUsecase) UpdateOverlay(id string, patch OverlayPatch) (*model.Presentation, error) {
	if _, err := uc.findByID(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if patch.RecruiterNotes != nil {
		fields["recruiter_notes"] = *patch.RecruiterNotes
	}
	if patch.SoftValuesNotes != nil {
		fields["soft_values_notes"] = *patch.SoftValuesNotes
	}
	if patch.SkillScores != nil {
		// Keys stay free-form on purpose; recruiters may add skills outside
		// the role profile taxonomy. Range and empty keys are still checked.
		for skill, score := range patch.SkillScores {
			if skill == "" {
				return nil, apperr.Validation("kompetensnamn får inte vara tomt")
			}
			if score < 0 || score > 100 {
				return nil, apperr.Validation("poäng för %s måste vara mellan 0 och 100", skill)
			}
		}
		fields["skill_scores"] = model.SkillScores(patch.SkillScores)
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("inga fält att uppdatera")
	}

	updated, err := uc.presentations.UpdateOverlay(id, fields)
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "update presentation overlay", Err: err}
	}
	return updated, nil
}

func (uc *PresentationUsecase) findByID(id string) (*model.Presentation, error) {
	presentation, err := uc.presentations.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("presentation", "presentationen hittades inte")
		}
		return nil, err
	}
	return presentation, nil
}
