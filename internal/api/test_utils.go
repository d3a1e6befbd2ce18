package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ricettario/backend/internal/middleware"
	"github.com/ricettario/backend/internal/model"
	"github.com/ricettario/backend/internal/service"
	"github.com/ricettario/backend/internal/testhelpers"
)

// testEnv bundles everything a handler test needs
type testEnv struct {
	Router      *gin.Engine
	DB          *gorm.DB
	AuthService *service.AuthService
}

// setupTestEnv wires handlers against an in-memory database and draft store
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDB(t)
	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db)
	suggestionService := service.NewSuggestionService(db, testhelpers.NewMemoryDraftStore())
	exportService := service.NewExportService(nil)

	recipeHandler := NewRecipeHandler(recipeService)
	suggestionHandler := NewSuggestionHandler(recipeService, suggestionService)
	exportHandler := NewExportHandler(recipeService, exportService)
	authHandler := NewAuthHandler(authService)

	router := gin.New()
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		recipes := protected.Group("/recipes")
		recipes.GET("", recipeHandler.ListRecipes)
		recipes.GET("/:id", recipeHandler.GetRecipe)
		recipes.POST("", recipeHandler.CreateRecipe)
		recipes.PUT("/:id", recipeHandler.UpdateRecipe)
		recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
		recipes.POST("/:id/favorite", recipeHandler.FavoriteRecipe)
		recipes.DELETE("/:id/favorite", recipeHandler.UnfavoriteRecipe)
		recipes.POST("/:id/adjust", suggestionHandler.AdjustPortions)
		recipes.GET("/:id/export", exportHandler.ExportRecipe)
		recipes.POST("/:id/share", exportHandler.ShareRecipe)

		drafts := protected.Group("/drafts")
		drafts.GET("/:id", suggestionHandler.GetDraft)
		drafts.GET("/:id/diff", suggestionHandler.ValidateDraft)
		drafts.POST("/:id/confirm", suggestionHandler.ConfirmDraft)
		drafts.DELETE("/:id", suggestionHandler.RejectDraft)
	}

	return &testEnv{Router: router, DB: db, AuthService: authService}
}

// createTestUserAndToken registers a user and returns its ID and a valid token
func createTestUserAndToken(t *testing.T, env *testEnv) (uuid.UUID, string) {
	t.Helper()

	token, err := env.AuthService.Register(context.Background(), "Test User", "test@example.com", "password123")
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}

	var user model.User
	if err := env.DB.Where("email = ?", "test@example.com").First(&user).Error; err != nil {
		t.Fatalf("failed to load test user: %v", err)
	}

	return user.ID, token
}

// doJSON performs a JSON request against the test router
func doJSON(t *testing.T, env *testEnv, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// testRecipeBody returns a valid recipe payload for creation requests
func testRecipeBody() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Risotto alla Milanese",
		"description": "Saffron risotto",
		"category":    "main course",
		"cuisine":     "italian",
		"servings":    4,
		"ingredients": []map[string]interface{}{
			{"name": "rice", "amount": 320, "unit": "g"},
			{"name": "stock", "amount": 1, "unit": "l"},
			{"name": "saffron", "amount": 0.5, "unit": "g"},
		},
		"instructions": []string{"Toast the rice.", "Add stock gradually."},
	}
}
