package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricettario/backend/internal/model"
)

func setupDraftStoreTest(t *testing.T) (*RedisDraftStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisDraftStore(client), mr
}

func TestRedisDraftStoreRoundTrip(t *testing.T) {
	store, mr := setupDraftStoreTest(t)
	ctx := context.Background()

	draft := &SuggestionDraft{
		ID:               uuid.New().String(),
		RecipeID:         uuid.New(),
		UserID:           uuid.New(),
		OriginalServings: 4,
		Servings:         8,
		Ingredients: model.IngredientList{
			{Name: "rice", Amount: 640, Unit: "g"},
		},
		Instructions: []string{"Toast the rice."},
		Source:       "scaled",
	}
	require.NoError(t, store.SaveDraft(ctx, draft))

	ttl := mr.TTL("suggestion:draft:" + draft.ID)
	assert.Equal(t, 24*time.Hour, ttl)

	loaded, err := store.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.RecipeID, loaded.RecipeID)
	assert.Equal(t, 8, loaded.Servings)
	require.Len(t, loaded.Ingredients, 1)
	assert.Equal(t, 640.0, loaded.Ingredients[0].Amount)
}

func TestRedisDraftStoreUnknownID(t *testing.T) {
	store, _ := setupDraftStoreTest(t)

	_, err := store.GetDraft(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRedisDraftStoreDelete(t *testing.T) {
	store, _ := setupDraftStoreTest(t)
	ctx := context.Background()

	draft := &SuggestionDraft{ID: uuid.New().String(), Servings: 2}
	require.NoError(t, store.SaveDraft(ctx, draft))
	require.NoError(t, store.DeleteDraft(ctx, draft.ID))

	_, err := store.GetDraft(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRedisDraftStoreExpiry(t *testing.T) {
	store, mr := setupDraftStoreTest(t)
	ctx := context.Background()

	draft := &SuggestionDraft{ID: uuid.New().String(), Servings: 2}
	require.NoError(t, store.SaveDraft(ctx, draft))

	mr.FastForward(24*time.Hour + time.Second)

	_, err := store.GetDraft(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
