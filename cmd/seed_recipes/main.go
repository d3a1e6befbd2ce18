package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ricettario/backend/config"
	"github.com/ricettario/backend/internal/database"
	"github.com/ricettario/backend/internal/model"
	"github.com/ricettario/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed(context.Background(), db); err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}
}

// seed creates a user and a couple of sample recipes owned by it. The owner
// row has to exist before the recipes: recipes.user_id is a foreign key.
func seed(ctx context.Context, db *gorm.DB) error {
	seedUser := model.User{
		Name:         "Seed User",
		Email:        fmt.Sprintf("seed_%d@example.com", time.Now().Unix()),
		PasswordHash: "not-a-login",
	}
	if err := db.WithContext(ctx).Create(&seedUser).Error; err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}
	log.Printf("Created seed user %s", seedUser.Email)

	recipes := seedRecipes(seedUser.ID)
	recipeService := service.NewRecipeService(db)
	for i := range recipes {
		if _, err := recipeService.CreateRecipe(ctx, &recipes[i]); err != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", recipes[i].Name, err)
		}
		log.Printf("Seeded recipe %q", recipes[i].Name)
	}
	return nil
}

func seedRecipes(ownerID uuid.UUID) []model.Recipe {
	return []model.Recipe{
		{
			Name:        "Risotto alla Milanese",
			Description: "Saffron risotto from Lombardy",
			Category:    "main course",
			Cuisine:     "italian",
			Servings:    4,
			Ingredients: model.IngredientList{
				{Name: "carnaroli rice", Amount: 320, Unit: "g"},
				{Name: "beef stock", Amount: 1, Unit: "l"},
				{Name: "saffron threads", Amount: 0.5, Unit: "g"},
				{Name: "butter", Amount: 80, Unit: "g"},
				{Name: "grated parmesan", Amount: 60, Unit: "g"},
			},
			Instructions: model.JSONBStringArray{
				"Toast the rice in half the butter.",
				"Add stock a ladle at a time, stirring.",
				"Dissolve the saffron in the last ladle of stock.",
				"Finish with the remaining butter and parmesan.",
			},
			Calories: 520,
			UserID:   ownerID,
		},
		{
			Name:        "Pancakes",
			Description: "Fluffy breakfast pancakes",
			Category:    "breakfast",
			Cuisine:     "american",
			Servings:    2,
			Ingredients: model.IngredientList{
				{Name: "flour", Amount: 1.5, Unit: "cups"},
				{Name: "milk", Amount: 1.25, Unit: "cups"},
				{Name: "egg", Amount: 1, Unit: "pc"},
				{Name: "baking powder", Amount: 3.5, Unit: "tsp"},
			},
			Instructions: model.JSONBStringArray{
				"Whisk the dry ingredients.",
				"Mix in the milk and egg.",
				"Cook on a hot griddle until golden.",
			},
			Calories: 430,
			UserID:   ownerID,
		},
	}
}
