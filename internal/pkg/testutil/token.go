package testutil

import (
	"testing"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/auth"

	"github.com/stretchr/testify/require"
)

// TestJWTSecret signs the tokens issued by NewTestToken
const TestJWTSecret = "test-secret-test-secret-test-secret"

// NewTestTokenManager returns a TokenManager using TestJWTSecret
func NewTestTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()

	tokens, err := auth.NewTokenManager(TestJWTSecret, time.Hour)
	require.NoError(t, err)
	return tokens
}

// NewTestToken issues a one hour access token for sub with the given role
func NewTestToken(t *testing.T, sub, role string) string {
	t.Helper()

	token, err := NewTestTokenManager(t).CreateAccessToken(auth.Caller{
		UserID: sub,
		Role:   role,
		Email:  sub + "@example.com",
	})
	require.NoError(t, err)
	return token
}
