package repository

import (
	"github.com/nocv-se/nocv-backend/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type RoleProfileRepository struct {
	db *gorm.DB
}

func NewRoleProfileRepository(db *gorm.DB) *RoleProfileRepository {
	return &RoleProfileRepository{db}
}

func (r *RoleProfileRepository) FindByKey(roleKey string) (*model.RoleProfile, error) {
	var profile model.RoleProfile
	err := r.db.First(&profile, "role_key = ?", roleKey).Error
	return &profile, err
}

func (r *RoleProfileRepository) List() ([]model.RoleProfile, error) {
	var profiles []model.RoleProfile
	err := r.db.Find(&profiles).Error
	return profiles, err
}

func (r *RoleProfileRepository) UpdateEmbedding(id string, embedding pgvector.Vector) error {
	return r.db.Model(&model.RoleProfile{}).Where("id = ?", id).Update("embedding", embedding).Error
}

// Search returns the topK role profiles closest to the embedding, with
// profiles lacking an embedding excluded.
func (r *RoleProfileRepository) Search(embedding pgvector.Vector, topK int) ([]model.RoleProfile, error) {
	var profiles []model.RoleProfile

	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM role_profiles
        WHERE embedding IS NOT NULL
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, embedding, topK).Scan(&profiles).Error

	return profiles, err
}
