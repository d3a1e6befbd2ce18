package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ricettario/backend/internal/model"
	"github.com/ricettario/backend/internal/recipediff"
	"github.com/ricettario/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *model.Recipe) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	ListRecipes(ctx context.Context, userID *uuid.UUID, category, search string) ([]*model.Recipe, error)
	FavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	UnfavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
}

// ISuggestionService defines the interface for portion-adjustment suggestions
type ISuggestionService interface {
	AdjustPortions(ctx context.Context, recipe *model.Recipe, target int, useLLM bool, userID uuid.UUID) (*SuggestionDraft, error)
	GetDraft(ctx context.Context, id string) (*SuggestionDraft, error)
	Validate(ctx context.Context, draftID string) (*recipediff.Result, *SuggestionDraft, error)
	Confirm(ctx context.Context, draftID string) (*model.Recipe, error)
	Reject(ctx context.Context, id string) error
}
