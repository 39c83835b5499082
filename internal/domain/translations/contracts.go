package translations

import "context"

// TranslationService manages stored translations and machine translation
type TranslationService interface {
	// Upsert inserts or replaces each input on (entity type, entity id, field, language).
	Upsert(ctx context.Context, entityType string, inputs []Input) ([]*Translation, error)
	ListByEntity(ctx context.Context, entityType, entityID string) ([]*Translation, error)
	Delete(ctx context.Context, id string) error
	// Translate fans out over the target languages. A failing language falls back to MockTranslation.
	Translate(ctx context.Context, req *TranslateRequest) (*TranslateResult, error)
}

// Translator calls a machine translation provider
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// TranslationRepository defines persistence for translations
type TranslationRepository interface {
	Upsert(ctx context.Context, translation *Translation) (*Translation, error)
	ListByEntity(ctx context.Context, entityType, entityID string) ([]*Translation, error)
	DeleteByID(ctx context.Context, id string) error
}
