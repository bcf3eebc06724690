package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the validated content of a token.
type Claims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Signer issues and validates signed credentials for authenticated users.
type Signer interface {
	// Sign returns a token embedding the user identifier.
	Sign(userID string) (string, error)
	// Parse validates a token string and returns its claims.
	Parse(tokenString string) (*Claims, error)
}

// hmacSigner signs tokens with HMAC-SHA256.
type hmacSigner struct {
	key      []byte
	lifetime time.Duration
	timeFunc func() time.Time // injectable for testing
}

var _ Signer = (*hmacSigner)(nil)

// NewHMACSigner creates a Signer using the server-side secret. Tokens expire
// after the given lifetime.
func NewHMACSigner(secret string, lifetime time.Duration) (Signer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive")
	}
	return &hmacSigner{
		key:      []byte(secret),
		lifetime: lifetime,
		timeFunc: time.Now,
	}, nil
}

func (s *hmacSigner) Sign(userID string) (string, error) {
	now := s.timeFunc()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *hmacSigner) Parse(tokenString string) (*Claims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(s.timeFunc),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.key, nil
		},
		parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	out := &Claims{UserID: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
