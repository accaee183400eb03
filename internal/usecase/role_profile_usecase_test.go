package usecase

import (
	"context"
	"testing"

	"github.com/nocv-se/nocv-backend/internal/apperr"
	"github.com/nocv-se/nocv-backend/internal/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildEmbeddings_EmbedsEveryProfile(t *testing.T) {
	store := newFakeRoleProfileStore(mechanicProfile(), &model.RoleProfile{
		RoleKey: "elektriker",
		Name:    "Elektriker",
	})
	embedder := &stubEmbedder{values: []float32{0.1, 0.2, 0.3}}
	uc := NewRoleProfileUsecase(store, embedder)

	updated, failed, err := uc.RebuildEmbeddings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, updated)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 2, embedder.calls)
	assert.Len(t, store.embedded, 2)
}

func TestRebuildEmbeddings_CountsFailures(t *testing.T) {
	store := newFakeRoleProfileStore(mechanicProfile())
	embedder := &stubEmbedder{err: errors.New("quota exhausted")}
	uc := NewRoleProfileUsecase(store, embedder)

	updated, failed, err := uc.RebuildEmbeddings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
	assert.Equal(t, 1, failed)
	assert.Empty(t, store.embedded)
}

func TestSuggest_ReturnsClosestProfiles(t *testing.T) {
	profile := mechanicProfile()
	store := newFakeRoleProfileStore()
	store.searchResult = []model.RoleProfile{*profile}
	embedder := &stubEmbedder{values: []float32{0.4, 0.5, 0.6}}
	uc := NewRoleProfileUsecase(store, embedder)

	suggestions, err := uc.Suggest(context.Background(), brakeTranscript, 5)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "bilmekaniker", suggestions[0].RoleKey)
	assert.Equal(t, 1, embedder.calls)
}

func TestSuggest_EmptyTranscript(t *testing.T) {
	uc := NewRoleProfileUsecase(newFakeRoleProfileStore(), &stubEmbedder{})

	_, err := uc.Suggest(context.Background(), "   ", 5)
	var validation *apperr.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "transkript saknas", validation.Message)
}

func TestSuggest_EmbeddingFailureIsUpstream(t *testing.T) {
	uc := NewRoleProfileUsecase(newFakeRoleProfileStore(), &stubEmbedder{err: errors.New("503 from gemini")})

	_, err := uc.Suggest(context.Background(), brakeTranscript, 5)
	var upstream *apperr.UpstreamError
	require.ErrorAs(t, err, &upstream)
}

func TestSuggest_ClampsTopK(t *testing.T) {
	store := newFakeRoleProfileStore()
	for i := 0; i < 8; i++ {
		store.searchResult = append(store.searchResult, model.RoleProfile{RoleKey: "roll"})
	}
	uc := NewRoleProfileUsecase(store, &stubEmbedder{values: []float32{1}})

	suggestions, err := uc.Suggest(context.Background(), brakeTranscript, 0)
	require.NoError(t, err)
	assert.Len(t, suggestions, 5)
}
