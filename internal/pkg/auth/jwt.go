package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or claim checks
var ErrInvalidToken = errors.New("invalid token")

// Claims are the custom JWT claims of an access token
type Claims struct {
	Sub   string `json:"sub"`
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager signs and parses access tokens with a shared secret
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive")
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// CreateAccessToken signs a token for the given caller
func (m *TokenManager) CreateAccessToken(caller Caller) (string, error) {
	if caller.UserID == "" || !ValidRole(caller.Role) {
		return "", fmt.Errorf("cannot issue token for user %q with role %q", caller.UserID, caller.Role)
	}

	now := m.now()
	claims := Claims{
		Sub:   caller.UserID,
		Role:  caller.Role,
		Email: caller.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseValidate verifies a token and returns the caller it identifies
func (m *TokenManager) ParseValidate(tokenStr string) (Caller, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Caller{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Sub == "" || !ValidRole(c.Role) {
		return Caller{}, ErrInvalidToken
	}
	return Caller{UserID: c.Sub, Role: c.Role, Email: c.Email}, nil
}
