package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ricettario/backend/config"
	"github.com/ricettario/backend/internal/api"
	"github.com/ricettario/backend/internal/middleware"
	"github.com/ricettario/backend/internal/router"
	"github.com/ricettario/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New wires services, handlers and routes into a ready-to-start server.
// s3Config may be nil; share links are then disabled.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	suggestionService := service.NewSuggestionService(db, service.NewRedisDraftStore(redisClient))
	exportService := service.NewExportService(s3Config)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewRecipeHandler(recipeService),
		api.NewSuggestionHandler(recipeService, suggestionService),
		api.NewExportHandler(recipeService, exportService),
		authService,
		middleware.NewSuggestionRateLimiter(redisClient),
	)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}
}

// Start runs the HTTP server until it is shut down
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
