package repository

import (
	"time"

	"github.com/nocv-se/nocv-backend/internal/model"
	"gorm.io/gorm"
)

type PresentationRepository struct {
	db *gorm.DB
}

func NewPresentationRepository(db *gorm.DB) *PresentationRepository {
	return &PresentationRepository{db}
}

func (r *PresentationRepository) FindByID(id string) (*model.Presentation, error) {
	var presentation model.Presentation
	err := r.db.First(&presentation, "id = ?", id).Error
	return &presentation, err
}

func (r *PresentationRepository) FindByToken(shareToken string) (*model.Presentation, error) {
	var presentation model.Presentation
	err := r.db.First(&presentation, "share_token = ?", shareToken).Error
	return &presentation, err
}

// UpdateOverlay writes the recruiter overlay fields; last write wins.
func (r *PresentationRepository) UpdateOverlay(id string, fields map[string]any) (*model.Presentation, error) {
	if err := r.db.Model(&model.Presentation{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *PresentationRepository) SetStatus(id, status string, publishedAt *time.Time) (*model.Presentation, error) {
	fields := map[string]any{"status": status}
	if publishedAt != nil {
		fields["published_at"] = *publishedAt
	}
	if err := r.db.Model(&model.Presentation{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
