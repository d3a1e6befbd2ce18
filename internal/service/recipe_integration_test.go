package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricettario/backend/internal/model"
	"github.com/ricettario/backend/internal/service"
	"github.com/ricettario/backend/internal/testhelpers"
)

// Runs the recipe flow against a real Postgres with pgvector, covering what
// the sqlite tests cannot: the vector column and similarity-ordered search.
func TestRecipeServicePostgres(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)
	ctx := context.Background()

	user := model.User{Name: "Test User", Email: "pg@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	svc := service.NewRecipeService(db)

	carbonara := &model.Recipe{
		Name:     "Spaghetti alla Carbonara",
		Servings: 4,
		Ingredients: model.IngredientList{
			{Name: "spaghetti", Amount: 400, Unit: "g"},
			{Name: "guanciale", Amount: 150, Unit: "g"},
		},
		Instructions: model.JSONBStringArray{"Cook the pasta.", "Toss with guanciale and eggs."},
		UserID:       user.ID,
	}
	pancakes := &model.Recipe{
		Name:        "Pancakes",
		Description: "Fluffy American breakfast pancakes with maple syrup and butter",
		Servings:    2,
		Ingredients: model.IngredientList{
			{Name: "flour", Amount: 200, Unit: "g"},
		},
		Instructions: model.JSONBStringArray{"Mix and fry."},
		UserID:       user.ID,
	}

	created, err := svc.CreateRecipe(ctx, carbonara)
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, pancakes)
	require.NoError(t, err)

	loaded, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spaghetti alla Carbonara", loaded.Name)
	require.Len(t, loaded.Ingredients, 2)
	assert.Equal(t, 150.0, loaded.Ingredients[1].Amount)

	results, err := svc.ListRecipes(ctx, &user.ID, "", "spaghetti carbonara guanciale")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Spaghetti alla Carbonara", results[0].Name, "embedding distance should rank the matching recipe first")

	require.NoError(t, svc.FavoriteRecipe(ctx, user.ID, created.ID))
	require.NoError(t, svc.UnfavoriteRecipe(ctx, user.ID, created.ID))

	suggestions := service.NewSuggestionService(db, testhelpers.NewMemoryDraftStore())
	draft, err := suggestions.AdjustPortions(ctx, loaded, 8, false, user.ID)
	require.NoError(t, err)

	confirmed, err := suggestions.Confirm(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, confirmed.Servings)
	assert.Equal(t, 800.0, confirmed.Ingredients[0].Amount)
}
