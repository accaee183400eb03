package usecase

import (
	"context"
	"strings"

	"github.com/nocv-se/nocv-backend/internal/apperr"
	"github.com/nocv-se/nocv-backend/internal/model"
	"github.com/nocv-se/nocv-backend/internal/service"
	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"
)

// RoleProfileUsecase maintains role-profile embeddings and suggests roles for
// a transcript by vector similarity.
type RoleProfileUsecase struct {
	roleProfiles RoleProfileStore
	gemini       service.GeminiServiceInterface
}

func NewRoleProfileUsecase(roleProfiles RoleProfileStore, gemini service.GeminiServiceInterface) *RoleProfileUsecase {
	return &RoleProfileUsecase{roleProfiles: roleProfiles, gemini: gemini}
}

// RebuildEmbeddings re-embeds every role profile from its name, description
// and skill lists. Profiles that fail are skipped and counted, not fatal.
func (uc *RoleProfileUsecase) RebuildEmbeddings(ctx context.Context) (updated int, failed int, err error) {
	profiles, err := uc.roleProfiles.List()
	if err != nil {
		return 0, 0, err
	}

	for _, profile := range profiles {
		text := strings.Join([]string{
			profile.Name,
			profile.Description,
			strings.Join(profile.TechnicalSkills, ", "),
			strings.Join(profile.SoftSkills, ", "),
			strings.Join(profile.KnowledgeAreas, ", "),
		}, "\n")

		values, embErr := uc.gemini.GenerateEmbedding(ctx, text)
		if embErr != nil {
			logrus.WithError(embErr).WithField("role_key", profile.RoleKey).Warn("embedding role profile failed")
			failed++
			continue
		}
		if updErr := uc.roleProfiles.UpdateEmbedding(profile.ID.String(), pgvector.NewVector(values)); updErr != nil {
			logrus.WithError(updErr).WithField("role_key", profile.RoleKey).Warn("storing role profile embedding failed")
			failed++
			continue
		}
		updated++
	}
	return updated, failed, nil
}

// Suggest embeds the transcript and returns the topK closest role profiles.
func (uc *RoleProfileUsecase) Suggest(ctx context.Context, transcriptText string, topK int) ([]model.RoleProfile, error) {
	if strings.TrimSpace(transcriptText) == "" {
		return nil, apperr.Validation("transkript saknas")
	}
	if topK < 1 || topK > 20 {
		topK = 5
	}

	values, err := uc.gemini.GenerateEmbedding(ctx, transcriptText)
	if err != nil {
		return nil, &apperr.UpstreamError{Body: err.Error()}
	}
	return uc.roleProfiles.Search(pgvector.NewVector(values), topK)
}
