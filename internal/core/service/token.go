package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
)

// TokenIssuer creates and verifies the self-contained HS256 bearer tokens
// used by the API. Tokens are never persisted; validity is determined entirely
// by the signature and the embedded expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting subject, valid for the configured TTL.
func (t *TokenIssuer) Issue(subject string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tkn.SignedString(t.secret)
}

// Verify checks the token signature, then its expiry, and returns the subject.
// A signature mismatch yields domain.ErrTokenInvalid, an elapsed TTL yields
// domain.ErrTokenExpired.
func (t *TokenIssuer) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(tkn *jwt.Token) (interface{}, error) {
		if tkn.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
