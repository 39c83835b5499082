package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/logger"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentTranslations caps in-flight calls to the translation provider
const maxConcurrentTranslations = 4

// translationService implements the TranslationService interface
type translationService struct {
	translationRepo translations.TranslationRepository
	translator      translations.Translator
	logger          logger.Logger
	now             func() time.Time
}

// NewTranslationService creates a new instance of TranslationService.
// translator may be nil, in which case Translate returns mock values.
func NewTranslationService(translationRepo translations.TranslationRepository, translator translations.Translator, logger logger.Logger) (translations.TranslationService, error) {
	return &translationService{
		translationRepo: translationRepo,
		translator:      translator,
		logger:          logger,
		now:             time.Now,
	}, nil
}

// Upsert validates every input before writing any of them
func (s *translationService) Upsert(ctx context.Context, entityType string, inputs []translations.Input) ([]*translations.Translation, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no translations provided", validators.ErrValidation)
	}

	now := s.now().UTC()
	rows := make([]*translations.Translation, 0, len(inputs))
	for i := range inputs {
		in := inputs[i]
		if err := in.Validate(); err != nil {
			return nil, err
		}
		row := &translations.Translation{
			ID:           uuid.NewString(),
			EntityType:   entityType,
			EntityID:     in.EntityID,
			FieldName:    in.FieldName,
			LanguageCode: in.LanguageCode,
			Value:        in.Value,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := row.Validate(); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	saved := make([]*translations.Translation, 0, len(rows))
	for _, row := range rows {
		out, err := s.translationRepo.Upsert(ctx, row)
		if err != nil {
			return nil, fmt.Errorf("failed to save translation: %w", err)
		}
		saved = append(saved, out)
	}
	return saved, nil
}

func (s *translationService) ListByEntity(ctx context.Context, entityType, entityID string) ([]*translations.Translation, error) {
	return s.translationRepo.ListByEntity(ctx, entityType, entityID)
}

func (s *translationService) Delete(ctx context.Context, id string) error {
	return s.translationRepo.DeleteByID(ctx, id)
}

// Translate fans the text out to every target language. A failure for one
// language falls back to the mock value for that language only; a cancelled
// caller context aborts the whole request.
func (s *translationService) Translate(ctx context.Context, req *translations.TranslateRequest) (*translations.TranslateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &translations.TranslateResult{Translations: make(map[string]string, len(req.TargetLangs))}

	if s.translator == nil {
		s.logger.Warn("translation provider not configured, using mock translations")
		for _, lang := range req.TargetLangs {
			result.Translations[lang] = translations.MockTranslation(req.Text, lang)
		}
		result.Mock = true
		return result, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentTranslations)

	for _, lang := range req.TargetLangs {
		lang := lang
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			value, err := s.translator.Translate(gctx, req.Text, req.SourceLang, lang)
			if err != nil {
				s.logger.Warn("translation failed, using mock value", "lang", lang, "error", err)
				value = translations.MockTranslation(req.Text, lang)
			}
			mu.Lock()
			result.Translations[lang] = value
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("translation aborted: %w", err)
	}

	return result, nil
}
