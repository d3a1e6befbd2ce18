package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ricettario/backend/internal/service"
)

// ExportHandler serves recipe text downloads and share links
type ExportHandler struct {
	recipeService service.IRecipeService
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler instance
func NewExportHandler(recipeService service.IRecipeService, exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		recipeService: recipeService,
		exportService: exportService,
	}
}

// ExportRecipe returns the recipe as a plain-text download. The filename is
// derived from the recipe title so the browser save dialog shows something
// readable.
func (h *ExportHandler) ExportRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	text := h.exportService.RenderText(recipe, c.DefaultQuery("lang", service.DefaultLocale))
	filename := service.ExportFilename(recipe.Name)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// ShareRecipe uploads the recipe text to object storage and returns a
// time-limited link.
func (h *ExportHandler) ShareRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	url, err := h.exportService.ShareLink(c.Request.Context(), recipe, c.DefaultQuery("lang", service.DefaultLocale))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Sharing is currently unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
