// Package auth issues and verifies the signed bearer tokens that stand in for
// server-side sessions. A token carries the user ID and an expiry; validity is
// determined entirely by the HS256 signature and the expiry claim.
package auth

import (
	"errors"
	"time"

	"github.com/dipesh4000/blogvote/internal/models"
	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed token, expired token, missing user ID. Callers must not
// learn which check failed.
var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs a token for the given user, valid for ttl.
func GenerateToken(userID uint, secret []byte, ttl time.Duration) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies signature, algorithm and expiry, and returns the user ID
// the token was issued for.
func ParseToken(tokenString string, secret []byte) (uint, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
