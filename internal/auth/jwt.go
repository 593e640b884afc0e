package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 token with subject=username, issued-at
// now and expiry now+ttl.
func GenerateToken(secret, username string, ttl time.Duration) (string, error) {
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the claims.
// Any malformed, forged or expired token yields an error.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}

// ValidateToken reports whether the token is genuine, unexpired and
// issued for the expected username. It fails closed on any parse error.
func ValidateToken(secret, tokenStr, expectedUsername string) bool {
	claims, err := ParseToken(secret, tokenStr)
	if err != nil {
		return false
	}
	return claims.Subject == expectedUsername
}

// ExtractUsername returns the subject claim of a verified token.
func ExtractUsername(secret, tokenStr string) (string, error) {
	claims, err := ParseToken(secret, tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
