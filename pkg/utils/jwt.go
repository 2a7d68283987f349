package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer issues and verifies the HS256 access tokens that identify a
// user by email. The expiry is fixed at issuance; it does not slide.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (t *TokenIssuer) Issue(subject string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the token's subject. Any
// failure comes back as an *AuthError carrying the precise reason.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)

	switch {
	case err == nil && token.Valid:
		return claims.Subject, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", Unauthenticated(AuthReasonExpiredToken, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", Unauthenticated(AuthReasonBadSignature, err)
	default:
		return "", Unauthenticated(AuthReasonMalformedToken, err)
	}
}
