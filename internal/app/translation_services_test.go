//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/translations"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTranslationService_Translate_WithoutProvider(t *testing.T) {
	svc, err := NewTranslationService(new(MockTranslationRepository), nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	res, err := svc.Translate(context.Background(), &translations.TranslateRequest{
		Text:        "Massage relaxant",
		SourceLang:  "fr",
		TargetLangs: []string{"en", "de"},
	})
	require.NoError(t, err)
	assert.True(t, res.Mock)
	assert.Equal(t, map[string]string{"en": "[EN] Massage relaxant", "de": "[DE] Massage relaxant"}, res.Translations)
}

func TestTranslationService_Translate_FallbackPerLanguage(t *testing.T) {
	translator := new(MockTranslator)
	translator.On("Translate", mock.Anything, "Coupe femme", "fr", "en").Return("Women's haircut", nil)
	translator.On("Translate", mock.Anything, "Coupe femme", "fr", "es").Return("Corte de mujer", nil)
	translator.On("Translate", mock.Anything, "Coupe femme", "fr", "de").Return("", errors.New("quota exceeded"))

	svc, err := NewTranslationService(new(MockTranslationRepository), translator, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	res, err := svc.Translate(context.Background(), &translations.TranslateRequest{
		Text:        "Coupe femme",
		SourceLang:  "fr",
		TargetLangs: []string{"en", "de", "es"},
	})
	require.NoError(t, err)
	assert.False(t, res.Mock)
	assert.Equal(t, "Women's haircut", res.Translations["en"])
	assert.Equal(t, "Corte de mujer", res.Translations["es"])
	assert.Equal(t, "[DE] Coupe femme", res.Translations["de"])
	translator.AssertExpectations(t)
}

func TestTranslationService_Translate_CancelledContext(t *testing.T) {
	translator := new(MockTranslator)
	svc, err := NewTranslationService(new(MockTranslationRepository), translator, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Translate(ctx, &translations.TranslateRequest{
		Text:        "Coupe femme",
		SourceLang:  "fr",
		TargetLangs: []string{"en", "de"},
	})
	assert.ErrorIs(t, err, context.Canceled)
	translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTranslationService_Translate_InvalidRequest(t *testing.T) {
	svc, err := NewTranslationService(new(MockTranslationRepository), nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.Translate(context.Background(), &translations.TranslateRequest{Text: "x", SourceLang: "fr", TargetLangs: []string{"pt"}})
	assert.Error(t, err)
}

func TestTranslationService_Upsert(t *testing.T) {
	repo := new(MockTranslationRepository)
	stored := &translations.Translation{EntityType: translations.EntityService, EntityID: "42", FieldName: "name"}
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*translations.Translation")).Return(stored, nil)

	svc, err := NewTranslationService(repo, nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	out, err := svc.Upsert(context.Background(), translations.EntityService, []translations.Input{
		{EntityID: "42", FieldName: "name", LanguageCode: "en", Value: "Haircut"},
		{EntityID: "42", FieldName: "name", LanguageCode: "de", Value: "Haarschnitt"},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, translations.EntityService, out[0].EntityType)
	repo.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestTranslationService_Upsert_RejectsBatchWithInvalidRow(t *testing.T) {
	repo := new(MockTranslationRepository)
	svc, err := NewTranslationService(repo, nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.Upsert(context.Background(), translations.EntityService, []translations.Input{
		{EntityID: "42", FieldName: "name", LanguageCode: "en", Value: "Haircut"},
		{EntityID: "42", FieldName: "name", LanguageCode: "xx", Value: "?"},
	})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestTranslationService_Upsert_UnknownEntityType(t *testing.T) {
	svc, err := NewTranslationService(new(MockTranslationRepository), nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.Upsert(context.Background(), "booking", []translations.Input{
		{EntityID: "1", FieldName: "name", LanguageCode: "en", Value: "x"},
	})
	assert.Error(t, err)
}
