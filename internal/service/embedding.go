package service

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"

	"github.com/ricettario/backend/internal/model"
)

// GenerateEmbedding returns a simple deterministic embedding for the given
// text: total length, vowel count and consonant count. Good enough to give
// similarity search a stable ordering without an external embedding API.
func GenerateEmbedding(text string) pgvector.Vector {
	text = strings.ToLower(text)
	var vowels, consonants float32
	for _, r := range text {
		switch {
		case strings.ContainsRune("aeiou", r):
			vowels++
		case r >= 'a' && r <= 'z':
			consonants++
		}
	}
	return pgvector.NewVector([]float32{float32(len(text)), vowels, consonants})
}

// RecipeEmbeddingText builds the text a recipe is embedded from. Ingredient
// names are included so searches like "chicken" rank recipes that use the
// ingredient, not only those that mention it in the title.
func RecipeEmbeddingText(r *model.Recipe) string {
	parts := []string{r.Name, r.Description}
	for _, ing := range r.Ingredients {
		parts = append(parts, ing.Name)
	}
	return strings.Join(parts, " ")
}
