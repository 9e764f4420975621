// Package auth issues and validates the signed session tokens used by the
// registry API. A token carries the public user projection so protected
// handlers never need a DB round trip to authorize a request.
package auth

import (
	"errors"
	"time"

	"github.com/campusreg/lostfound/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered JWT claims with the public user projection.
// The password hash is never part of a token.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id"`
	CollegeID string `json:"college_id"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// GenerateToken signs an HS256 token for the given user, expiring after
// validityDuration (8 hours in the default config).
func GenerateToken(userID int64, collegeID, email string, isAdmin bool, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:    userID,
		CollegeID: collegeID,
		Email:     email,
		IsAdmin:   isAdmin,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates the signature and expiry of tokenString and returns
// its claims. Expired tokens yield common.ErrTokenExpired, anything else
// unverifiable yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
