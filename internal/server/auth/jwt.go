// Package auth issues and verifies the signed session tokens handed out at
// login. Tokens are stateless: everything needed to authorize a request is
// carried in the claims and checked against the server's signing key.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/grafibook/automotora/internal/common"
)

// signingMethod is the only algorithm this service signs or accepts.
// Verification pins it explicitly so a token presenting a different "alg"
// header is rejected outright.
var signingMethod = jwt.SigningMethodHS256

// Claims carries the authenticated user's identity inside a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// GenerateToken mints a signed session token for the given user identity,
// valid from now until now+validityDuration.
func GenerateToken(userID int64, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(signingMethod, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:   userID,
		Username: username,
	})

	return token.SignedString(secretKey)
}

// VerifyToken checks the token's signature and expiry and returns the
// embedded claims. Failures are classified into common.ErrTokenExpired,
// common.ErrTokenMalformed, and common.ErrInvalidToken so the caller can log
// the distinction; the HTTP layer presents all three identically.
func VerifyToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secretKey, nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		default:
			return nil, common.ErrInvalidToken
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
