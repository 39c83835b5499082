//go:build unit
// +build unit

package translations

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMockTranslation(t *testing.T) {
	assert.Equal(t, "[EN] Massage relaxant", MockTranslation("Massage relaxant", "en"))
}

func TestTranslation_Validate(t *testing.T) {
	tr := &Translation{
		ID:           uuid.NewString(),
		EntityType:   EntityService,
		EntityID:     "42",
		FieldName:    "name",
		LanguageCode: "de",
		Value:        "Entspannende Massage",
	}
	assert.NoError(t, tr.Validate())

	tr.EntityType = "booking"
	assert.Error(t, tr.Validate())

	tr.EntityType = EntityService
	tr.LanguageCode = "pt"
	assert.Error(t, tr.Validate())
}

func TestTranslateRequest_Validate(t *testing.T) {
	req := &TranslateRequest{Text: "Bonjour", SourceLang: "fr", TargetLangs: []string{"en", "de"}}
	assert.NoError(t, req.Validate())

	req.TargetLangs = nil
	assert.Error(t, req.Validate())

	req.TargetLangs = []string{"en", "en"}
	assert.Error(t, req.Validate())
}
