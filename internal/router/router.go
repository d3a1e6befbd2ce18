package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ricettario/backend/internal/api"
	"github.com/ricettario/backend/internal/middleware"
	"github.com/ricettario/backend/internal/service"
)

// SetupRouter configures the application routes. suggestionLimiter may be
// nil (tests, environments without Redis); the adjust endpoint is then
// unthrottled.
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	suggestionHandler *api.SuggestionHandler,
	exportHandler *api.ExportHandler,
	authService service.IAuthService,
	suggestionLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		recipes := protected.Group("/recipes")
		{
			recipes.GET("", recipeHandler.ListRecipes)
			recipes.GET("/:id", recipeHandler.GetRecipe)
			recipes.POST("", recipeHandler.CreateRecipe)
			recipes.PUT("/:id", recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
			recipes.POST("/:id/favorite", recipeHandler.FavoriteRecipe)
			recipes.DELETE("/:id/favorite", recipeHandler.UnfavoriteRecipe)

			adjust := recipes.Group("")
			if suggestionLimiter != nil {
				adjust.Use(suggestionLimiter.Middleware())
			}
			adjust.POST("/:id/adjust", suggestionHandler.AdjustPortions)

			recipes.GET("/:id/export", exportHandler.ExportRecipe)
			recipes.POST("/:id/share", exportHandler.ShareRecipe)
		}

		drafts := protected.Group("/drafts")
		{
			drafts.GET("/:id", suggestionHandler.GetDraft)
			drafts.GET("/:id/diff", suggestionHandler.ValidateDraft)
			drafts.POST("/:id/confirm", suggestionHandler.ConfirmDraft)
			drafts.DELETE("/:id", suggestionHandler.RejectDraft)
		}
	}

	return router
}
