package testhelpers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ricettario/backend/internal/model"
)

// SetupSQLiteDB creates an isolated in-memory database with the application
// schema. Fast path for handler and service tests; search falls back to
// keyword matching since pgvector ordering is Postgres-only.
func SetupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Recipe{}, &model.RecipeFavorite{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
