// Package ai generates image descriptions with Gemini.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/images"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"google.golang.org/genai"
)

const altTextPrompt = `Tu es un expert en accessibilité web. Décris cette image en français pour un texte alternatif (alt text).
Contexte : image de "%s" sur un site de soins à domicile (beauté, bien-être).
Règles : %d caractères maximum, une seule phrase, sans commencer par "Image de" ou "Photo de", sans guillemets.`

// GeminiAltTextGenerator describes images with a Gemini multimodal model
type GeminiAltTextGenerator struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// NewGeminiAltTextGenerator creates a generator for model. httpOptions may override the API endpoint.
func NewGeminiAltTextGenerator(ctx context.Context, apiKey, model string, logger logger.Logger, httpOptions *genai.HTTPOptions) (images.AltTextGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if httpOptions != nil {
		cfg.HTTPOptions = *httpOptions
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiAltTextGenerator{client: client, model: model, logger: logger}, nil
}

// Describe returns a French alt text of at most images.MaxAltTextLength characters
func (g *GeminiAltTextGenerator) Describe(ctx context.Context, image []byte, mimeType, entityName string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(fmt.Sprintf(altTextPrompt, entityName, images.MaxAltTextLength)),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.4),
		MaxOutputTokens: 100,
	})
	if err != nil {
		return "", fmt.Errorf("generate alt text: %w", err)
	}

	text := strings.Trim(strings.TrimSpace(resp.Text()), `"«»`)
	if text == "" {
		return "", fmt.Errorf("generate alt text: empty response")
	}

	g.logger.Debug("alt text generated", "model", g.model, "length", len(text))
	return images.TruncateAltText(text), nil
}
