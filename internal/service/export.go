package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/ricettario/backend/config"
	"github.com/ricettario/backend/internal/model"
)

// exportLabels holds the localized section labels for text exports.
type exportLabels struct {
	Servings     string
	Ingredients  string
	Instructions string
}

var locales = map[string]exportLabels{
	"en": {
		Servings:     "Servings",
		Ingredients:  "Ingredients",
		Instructions: "Instructions",
	},
	"it": {
		Servings:     "Porzioni",
		Ingredients:  "Ingredienti",
		Instructions: "Preparazione",
	},
}

// DefaultLocale is used when the requested language is not supported.
const DefaultLocale = "en"

// ExportService renders recipes to shareable plain text and, when S3 is
// configured, publishes them behind presigned links.
type ExportService struct {
	s3Config *config.S3Config
}

// NewExportService creates a new ExportService instance. s3Config may be nil;
// share links are then unavailable but text export still works.
func NewExportService(s3Config *config.S3Config) *ExportService {
	return &ExportService{s3Config: s3Config}
}

// RenderText renders a recipe as plain text with section labels in the given
// language ("en" or "it", defaulting to English).
func (s *ExportService) RenderText(recipe *model.Recipe, lang string) string {
	labels, ok := locales[strings.ToLower(lang)]
	if !ok {
		labels = locales[DefaultLocale]
	}

	var b bytes.Buffer
	b.WriteString(recipe.Name + "\n")
	b.WriteString(strings.Repeat("=", len(recipe.Name)) + "\n\n")
	if recipe.Description != "" {
		b.WriteString(recipe.Description + "\n\n")
	}
	fmt.Fprintf(&b, "%s: %d\n\n", labels.Servings, recipe.Servings)

	b.WriteString(labels.Ingredients + ":\n")
	for _, ing := range recipe.Ingredients {
		fmt.Fprintf(&b, "- %s: %s %s\n", ing.Name, FormatAmount(ing.Amount), ing.Unit)
	}

	b.WriteString("\n" + labels.Instructions + ":\n")
	for i, step := range recipe.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	return b.String()
}

// FormatAmount renders an ingredient amount without trailing zeros.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// ExportFilename derives a download filename from a recipe title: ASCII
// letters, digits and dashes only, lowercased, with a .txt extension. The
// result goes into a quoted Content-Disposition filename, which only takes
// ASCII.
func ExportFilename(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "recipe"
	}
	return name + ".txt"
}

// ShareLink uploads the rendered recipe text to S3 and returns a presigned
// URL valid for 24 hours.
func (s *ExportService) ShareLink(ctx context.Context, recipe *model.Recipe, lang string) (string, error) {
	if s.s3Config == nil {
		return "", fmt.Errorf("object storage is not configured")
	}

	text := s.RenderText(recipe, lang)
	key := fmt.Sprintf("recipe-exports/%s/%s", uuid.New().String(), ExportFilename(recipe.Name))

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(text)),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export to S3: %w", err)
	}

	return s.s3Config.GeneratePresignedURL(ctx, key, 24*time.Hour)
}
