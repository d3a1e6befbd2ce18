package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ricettario/backend/internal/model"
	"github.com/ricettario/backend/internal/recipediff"
)

// ErrDraftNotFound is returned when a suggestion draft has expired or never existed.
var ErrDraftNotFound = errors.New("suggestion draft not found")

// SuggestionDraft is a portion-adjusted recipe waiting for the user to
// confirm or reject it. Ingredient order always matches the original
// recipe, which is what lets the validation diff compare rows by index.
type SuggestionDraft struct {
	ID               string               `json:"id"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
	RecipeID         uuid.UUID            `json:"recipe_id"`
	UserID           uuid.UUID            `json:"user_id"`
	OriginalServings int                  `json:"original_servings"`
	Servings         int                  `json:"servings"`
	Ingredients      model.IngredientList `json:"ingredients"`
	Instructions     []string             `json:"instructions"`
	Source           string               `json:"source"` // "scaled" or "llm"
}

// DraftStore persists suggestion drafts between the adjust and confirm steps.
type DraftStore interface {
	SaveDraft(ctx context.Context, draft *SuggestionDraft) error
	GetDraft(ctx context.Context, id string) (*SuggestionDraft, error)
	DeleteDraft(ctx context.Context, id string) error
}

// SuggestionService produces portion-adjusted recipe suggestions and manages
// their draft lifecycle. Suggestions come from a deterministic scaling pass,
// optionally refined through a DeepSeek-compatible chat API.
type SuggestionService struct {
	db     *gorm.DB
	drafts DraftStore
	apiKey string
	apiURL string
	client *http.Client
}

// NewSuggestionService creates a new SuggestionService instance. The LLM API
// key is optional; without it every suggestion uses the scaling pass only.
func NewSuggestionService(db *gorm.DB, drafts DraftStore) *SuggestionService {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if apiKey == "" {
		if apiKeyFile := os.Getenv("DEEPSEEK_API_KEY_FILE"); apiKeyFile != "" {
			if data, err := os.ReadFile(apiKeyFile); err == nil {
				apiKey = strings.TrimSpace(string(data))
			}
		}
	}

	apiURL := os.Getenv("DEEPSEEK_API_URL")
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}

	return &SuggestionService{
		db:     db,
		drafts: drafts,
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// ScaleIngredients multiplies every amount by target/current servings,
// rounded to two decimals. Row order and names are preserved. A current
// servings count of zero leaves amounts untouched rather than dividing by
// zero.
func ScaleIngredients(ingredients []model.Ingredient, current, target int) []model.Ingredient {
	scaled := make([]model.Ingredient, len(ingredients))
	copy(scaled, ingredients)
	if current <= 0 || current == target {
		return scaled
	}

	ratio := float64(target) / float64(current)
	for i := range scaled {
		scaled[i].Amount = math.Round(scaled[i].Amount*ratio*100) / 100
	}
	return scaled
}

// AdjustPortions builds a suggestion draft for the recipe at the target
// servings count and saves it. With useLLM set and an API key configured the
// scaled draft is refined by the LLM; any LLM failure falls back to the
// scaled version.
func (s *SuggestionService) AdjustPortions(ctx context.Context, recipe *model.Recipe, target int, useLLM bool, userID uuid.UUID) (*SuggestionDraft, error) {
	now := time.Now()
	draft := &SuggestionDraft{
		ID:               uuid.New().String(),
		CreatedAt:        now,
		UpdatedAt:        now,
		RecipeID:         recipe.ID,
		UserID:           userID,
		OriginalServings: recipe.Servings,
		Servings:         target,
		Ingredients:      ScaleIngredients(recipe.Ingredients, recipe.Servings, target),
		Instructions:     append([]string{}, recipe.Instructions...),
		Source:           "scaled",
	}

	if useLLM && s.apiKey != "" {
		ingredients, instructions, err := s.requestAdjustment(ctx, recipe, target)
		if err != nil {
			log.Printf("[SuggestionService] LLM adjustment failed, using scaled version: %v", err)
		} else {
			draft.Ingredients = ingredients
			draft.Instructions = instructions
			draft.Source = "llm"
		}
	}

	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft returns a pending suggestion draft.
func (s *SuggestionService) GetDraft(ctx context.Context, id string) (*SuggestionDraft, error) {
	return s.drafts.GetDraft(ctx, id)
}

// Reject discards a pending suggestion draft.
func (s *SuggestionService) Reject(ctx context.Context, id string) error {
	return s.drafts.DeleteDraft(ctx, id)
}

// Validate compares the draft's suggested recipe against the stored original
// and returns the per-field change markers the confirmation view renders.
func (s *SuggestionService) Validate(ctx context.Context, draftID string) (*recipediff.Result, *SuggestionDraft, error) {
	draft, err := s.drafts.GetDraft(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", draft.RecipeID).Error; err != nil {
		return nil, nil, err
	}

	result := recipediff.Diff(diffSnapshot(recipe.Servings, recipe.Ingredients), diffSnapshot(draft.Servings, draft.Ingredients))
	return &result, draft, nil
}

// Confirm applies a suggestion draft to its recipe and discards the draft.
func (s *SuggestionService) Confirm(ctx context.Context, draftID string) (*model.Recipe, error) {
	draft, err := s.drafts.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", draft.RecipeID).Error; err != nil {
		return nil, err
	}

	recipe.Servings = draft.Servings
	recipe.Ingredients = draft.Ingredients
	recipe.Instructions = draft.Instructions
	recipe.Embedding = GenerateEmbedding(RecipeEmbeddingText(&recipe))
	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, err
	}

	if err := s.drafts.DeleteDraft(ctx, draftID); err != nil {
		log.Printf("[SuggestionService] failed to delete confirmed draft %s: %v", draftID, err)
	}
	return &recipe, nil
}

func diffSnapshot(servings int, ingredients model.IngredientList) recipediff.Recipe {
	rows := make([]recipediff.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		rows[i] = recipediff.Ingredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit}
	}
	return recipediff.Recipe{Servings: servings, Ingredients: rows}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type adjustedRecipe struct {
	Ingredients  []model.Ingredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
}

// requestAdjustment asks the LLM for a portion-adjusted version of the
// recipe. The prompt pins the ingredient list order so the positional diff
// stays meaningful.
func (s *SuggestionService) requestAdjustment(ctx context.Context, recipe *model.Recipe, target int) (model.IngredientList, []string, error) {
	var ingredientLines []string
	for _, ing := range recipe.Ingredients {
		ingredientLines = append(ingredientLines, fmt.Sprintf("- %s: %g %s", ing.Name, ing.Amount, ing.Unit))
	}

	prompt := fmt.Sprintf(
		"Adjust this recipe from %d to %d servings.\n\nName: %s\nIngredients:\n%s\nInstructions:\n%s\n\n"+
			"Return JSON with \"ingredients\" (objects with name, amount, unit) and \"instructions\" (strings). "+
			"Keep the ingredients in exactly the same order and do not add or remove any. "+
			"Adjust amounts sensibly and rewrite quantities mentioned in the instructions.",
		recipe.Servings, target, recipe.Name,
		strings.Join(ingredientLines, "\n"),
		strings.Join(recipe.Instructions, "\n"))

	reqBody := chatRequest{
		Model: "deepseek-chat",
		Messages: []chatMessage{
			{Role: "system", Content: "You are a culinary assistant that rescales recipes. Respond with JSON only."},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    0.2,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, nil, fmt.Errorf("no choices in API response")
	}

	var adjusted adjustedRecipe
	if err := json.Unmarshal([]byte(result.Choices[0].Message.Content), &adjusted); err != nil {
		return nil, nil, fmt.Errorf("failed to parse adjusted recipe: %w", err)
	}
	if len(adjusted.Ingredients) != len(recipe.Ingredients) {
		return nil, nil, fmt.Errorf("adjusted recipe has %d ingredients, expected %d", len(adjusted.Ingredients), len(recipe.Ingredients))
	}

	return model.IngredientList(adjusted.Ingredients), adjusted.Instructions, nil
}
