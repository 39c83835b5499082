package translations

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"
)

// Entity types that carry translations
const (
	EntityService  = "service"
	EntityCategory = "category"
	EntityMarket   = "market"
	EntityProduct  = "product"
)

// ErrNotFound is returned when no translation matches
var ErrNotFound = errors.New("translation not found")

// Translation is the value of one field of one entity in one language
type Translation struct {
	ID           string `validate:"required,uuid4"`
	EntityType   string `validate:"required,oneof=service category market product"`
	EntityID     string `validate:"required,min=1,max=64"`
	FieldName    string `validate:"required,min=1,max=64"`
	LanguageCode string `validate:"required,lang"`
	Value        string `validate:"required"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate for validating Translation struct
func (t *Translation) Validate() error {
	return validators.ValidateStruct(t)
}

// Input is one value to upsert for an entity
type Input struct {
	EntityID     string `validate:"required,min=1,max=64"`
	FieldName    string `validate:"required,min=1,max=64"`
	LanguageCode string `validate:"required,lang"`
	Value        string `validate:"required"`
}

// Validate for validating Input struct
func (i *Input) Validate() error {
	return validators.ValidateStruct(i)
}

// TranslateRequest asks for text in several target languages
type TranslateRequest struct {
	Text        string   `validate:"required,max=5000"`
	SourceLang  string   `validate:"required,lang"`
	TargetLangs []string `validate:"required,min=1,unique,dive,lang"`
}

// Validate for validating TranslateRequest struct
func (r *TranslateRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// TranslateResult maps each target language to its translation. Mock is set
// when at least one value is a placeholder rather than a real translation.
type TranslateResult struct {
	Translations map[string]string
	Mock         bool
}

// MockTranslation is the placeholder used when no translator answers, e.g. "[EN] Bonjour"
func MockTranslation(text, lang string) string {
	return fmt.Sprintf("[%s] %s", strings.ToUpper(lang), text)
}
