package repository

import (
	"github.com/nocv-se/nocv-backend/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

// FindWithJob loads the application together with its job and company, the
// full context the prompt builder needs.
func (r *ApplicationRepository) FindWithJob(id string) (*model.Application, error) {
	var app model.Application
	err := r.db.Preload("Job").Preload("Job.Company").First(&app, "id = ?", id).Error
	return &app, err
}
