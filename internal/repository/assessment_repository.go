package repository

import (
	"github.com/nocv-se/nocv-backend/internal/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db}
}

// SaveGeneration persists the output of one generation call atomically:
// transcript, assessment and, for final assessments, the presentation. Prior
// presentations of the application are archived in the same transaction so
// old share links stop resolving publicly once a newer one exists.
func (r *AssessmentRepository) SaveGeneration(transcript *model.Transcript, assessment *model.Assessment, presentation *model.Presentation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transcript).Error; err != nil {
			return errors.Wrap(err, "create transcript")
		}
		assessment.TranscriptID = transcript.ID
		if err := tx.Create(assessment).Error; err != nil {
			return errors.Wrap(err, "create assessment")
		}
		if presentation == nil {
			return nil
		}
		err := tx.Model(&model.Presentation{}).
			Where("application_id = ? AND status <> ?", assessment.ApplicationID, model.PresentationStatusArchived).
			Update("status", model.PresentationStatusArchived).Error
		if err != nil {
			return errors.Wrap(err, "archive prior presentations")
		}
		presentation.AssessmentID = assessment.ID
		return errors.Wrap(tx.Create(presentation).Error, "create presentation")
	})
}

func (r *AssessmentRepository) FindByID(id string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.First(&assessment, "id = ?", id).Error
	return &assessment, err
}

// LatestByType returns the most recent assessment of the given type; the
// store keeps history, readers see only the newest row.
func (r *AssessmentRepository) LatestByType(applicationID, assessmentType string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.
		Where("application_id = ? AND type = ?", applicationID, assessmentType).
		Order("created_at DESC").
		First(&assessment).Error
	return &assessment, err
}

func (r *AssessmentRepository) ListByApplication(applicationID string, page, pageSize int) ([]model.Assessment, int64, error) {
	var assessments []model.Assessment
	var total int64

	query := r.db.Model(&model.Assessment{}).Where("application_id = ?", applicationID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&assessments).Error
	return assessments, total, err
}

// UpdateEditable patches the recruiter-editable narrative fields. Score
// columns are never part of this write.
func (r *AssessmentRepository) UpdateEditable(id string, fields map[string]any) (*model.Assessment, error) {
	if err := r.db.Model(&model.Assessment{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
