package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ricettario/backend/internal/service"
	"github.com/ricettario/backend/internal/types"
)

// SuggestionHandler handles portion-adjustment suggestions: generating a
// draft, showing the validation diff, confirming or rejecting it.
type SuggestionHandler struct {
	recipeService     service.IRecipeService
	suggestionService service.ISuggestionService
}

// NewSuggestionHandler creates a new SuggestionHandler instance
func NewSuggestionHandler(recipeService service.IRecipeService, suggestionService service.ISuggestionService) *SuggestionHandler {
	return &SuggestionHandler{
		recipeService:     recipeService,
		suggestionService: suggestionService,
	}
}

// AdjustPortions creates a suggestion draft for a recipe at a new servings count.
func (h *SuggestionHandler) AdjustPortions(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.AdjustPortionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), recipeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	draft, err := h.suggestionService.AdjustPortions(c.Request.Context(), recipe, req.Servings, req.UseLLM, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create suggestion"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"draft": draft})
}

// GetDraft returns a pending suggestion draft.
func (h *SuggestionHandler) GetDraft(c *gin.Context) {
	draft, err := h.suggestionService.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		draftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ValidateDraft returns the change markers between a draft's suggested
// recipe and the stored original, for the confirmation view.
func (h *SuggestionHandler) ValidateDraft(c *gin.Context) {
	result, draft, err := h.suggestionService.Validate(c.Request.Context(), c.Param("id"))
	if err != nil {
		draftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft": draft,
		"diff":  result,
	})
}

// ConfirmDraft applies a suggestion draft to its recipe.
func (h *SuggestionHandler) ConfirmDraft(c *gin.Context) {
	recipe, err := h.suggestionService.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		draftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// RejectDraft discards a suggestion draft.
func (h *SuggestionHandler) RejectDraft(c *gin.Context) {
	if err := h.suggestionService.Reject(c.Request.Context(), c.Param("id")); err != nil {
		draftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Suggestion rejected"})
}

func draftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion draft not found"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process suggestion draft"})
	}
}
