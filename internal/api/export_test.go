package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRecipeText(t *testing.T) {
	env := setupTestEnv(t)
	_, token := createTestUserAndToken(t, env)

	w := doJSON(t, env, "POST", "/api/v1/recipes", token, testRecipeBody())
	require.Equal(t, 201, w.Code)
	recipeID := createdRecipeID(t, w.Body.Bytes())

	w = doJSON(t, env, "GET", "/api/v1/recipes/"+recipeID+"/export", token, nil)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="risotto-alla-milanese.txt"`, w.Header().Get("Content-Disposition"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "Risotto alla Milanese\n"))
	assert.Contains(t, body, "Servings: 4")
	assert.Contains(t, body, "Ingredients:")
	assert.Contains(t, body, "- rice: 320 g")
	assert.Contains(t, body, "1. Toast the rice.")
}

func TestExportRecipeItalian(t *testing.T) {
	env := setupTestEnv(t)
	_, token := createTestUserAndToken(t, env)

	w := doJSON(t, env, "POST", "/api/v1/recipes", token, testRecipeBody())
	require.Equal(t, 201, w.Code)
	recipeID := createdRecipeID(t, w.Body.Bytes())

	w = doJSON(t, env, "GET", "/api/v1/recipes/"+recipeID+"/export?lang=it", token, nil)
	assert.Equal(t, 200, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Porzioni: 4")
	assert.Contains(t, body, "Ingredienti:")
	assert.Contains(t, body, "Preparazione:")
}

func TestExportRecipeNotFound(t *testing.T) {
	env := setupTestEnv(t)
	_, token := createTestUserAndToken(t, env)

	w := doJSON(t, env, "GET", "/api/v1/recipes/00000000-0000-0000-0000-000000000001/export", token, nil)
	assert.Equal(t, 404, w.Code)
}

func TestShareRecipeWithoutStorage(t *testing.T) {
	env := setupTestEnv(t)
	_, token := createTestUserAndToken(t, env)

	w := doJSON(t, env, "POST", "/api/v1/recipes", token, testRecipeBody())
	require.Equal(t, 201, w.Code)
	recipeID := createdRecipeID(t, w.Body.Bytes())

	// Test env has no S3 configured, so sharing is unavailable.
	w = doJSON(t, env, "POST", "/api/v1/recipes/"+recipeID+"/share", token, nil)
	assert.Equal(t, 503, w.Code)
}
