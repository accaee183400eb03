package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// RoleProfile is static reference data administered outside this service.
// The skill lists feed both the prompt context and the per-skill score taxonomy.
type RoleProfile struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RoleKey         string          `gorm:"type:varchar(128);uniqueIndex" json:"role_key"`
	Name            string          `gorm:"type:varchar(255)" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	TechnicalSkills StringList      `gorm:"type:jsonb" json:"technical_skills"`
	SoftSkills      StringList      `gorm:"type:jsonb" json:"soft_skills"`
	KnowledgeAreas  StringList      `gorm:"type:jsonb" json:"knowledge_areas"`
	Embedding       pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (r *RoleProfile) TableName() string {
	return "role_profiles"
}
