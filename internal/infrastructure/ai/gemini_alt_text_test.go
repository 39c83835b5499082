//go:build unit
// +build unit

package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestGenerator(t *testing.T, status int, body string) *GeminiAltTextGenerator {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	gen, err := NewGeminiAltTextGenerator(context.Background(), "test-key", "gemini-test", testutil.SetupTestLogger(t),
		&genai.HTTPOptions{BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	return gen.(*GeminiAltTextGenerator)
}

func TestGeminiAltTextGenerator_Describe(t *testing.T) {
	gen := newTestGenerator(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"\"Massage du dos aux huiles chaudes dans un salon lumineux\""}]}}]}`)

	alt, err := gen.Describe(context.Background(), testutil.PNGHeader, "image/png", "Massage")
	require.NoError(t, err)
	assert.Equal(t, "Massage du dos aux huiles chaudes dans un salon lumineux", alt)
}

func TestGeminiAltTextGenerator_Describe_Truncates(t *testing.T) {
	long := strings.Repeat("mot ", 60)
	gen := newTestGenerator(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"`+long+`"}]}}]}`)

	alt, err := gen.Describe(context.Background(), testutil.PNGHeader, "image/png", "Massage")
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(alt)), 125)
}

func TestGeminiAltTextGenerator_Describe_Error(t *testing.T) {
	gen := newTestGenerator(t, http.StatusInternalServerError, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`)

	_, err := gen.Describe(context.Background(), testutil.PNGHeader, "image/png", "Massage")
	assert.Error(t, err)
}

func TestNewGeminiAltTextGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiAltTextGenerator(context.Background(), "", "", testutil.SetupTestLogger(t), nil)
	assert.Error(t, err)
}
