// Package translation calls Google Cloud Translation for machine translated content.
package translation

import (
	"context"
	"fmt"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"

	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// GoogleTranslator translates plain text with the Cloud Translation v2 API
type GoogleTranslator struct {
	svc    *translate.Service
	logger logger.Logger
}

// NewGoogleTranslator creates a translator authenticated by API key. Extra
// client options are appended after the key.
func NewGoogleTranslator(ctx context.Context, apiKey string, logger logger.Logger, opts ...option.ClientOption) (translations.Translator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("translation API key is required")
	}

	svc, err := translate.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation client: %w", err)
	}
	return &GoogleTranslator{svc: svc, logger: logger}, nil
}

// Translate returns text in targetLang
func (g *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	resp, err := g.svc.Translations.List([]string{text}, targetLang).
		Source(sourceLang).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w", targetLang, err)
	}
	if len(resp.Translations) == 0 {
		return "", fmt.Errorf("translate to %s: empty response", targetLang)
	}

	g.logger.Debug("text translated", "source", sourceLang, "target", targetLang)
	return resp.Translations[0].TranslatedText, nil
}
