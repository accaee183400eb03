package model

import (
	"time"

	"github.com/google/uuid"
)

// Job description, requirements and city are optional; prompt building
// substitutes placeholder text when they are missing.
type Job struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID    uuid.UUID `gorm:"type:uuid" json:"company_id"`
	Company      Company   `json:"company"`
	Title        string    `gorm:"type:varchar(255)" json:"title"`
	Description  *string   `gorm:"type:text" json:"description"`
	Requirements *string   `gorm:"type:text" json:"requirements"`
	City         *string   `gorm:"type:varchar(255)" json:"city"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
