package database

import (
	"gorm.io/gorm"

	"github.com/ricettario/backend/internal/model"
)

// AutoMigrate creates or updates the schema for all application models. On
// Postgres the pgvector extension must exist before the recipes table is
// created.
func AutoMigrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return err
		}
	}

	return db.AutoMigrate(
		&model.User{},
		&model.Recipe{},
		&model.RecipeFavorite{},
	)
}
