package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the payload of the bearer token handed out at sign-in.
type SessionClaims struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for userID. Each token gets its own
// id so two sign-ins in the same second still yield distinct sessions.
func GenerateToken(secret string, userID int, issuedAt time.Time) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token for user %d: %w", userID, err)
	}
	return signed, nil
}

// ParseToken verifies the signature and returns the user id it carries.
func ParseToken(secret, raw string) (int, error) {
	var claims SessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	if !token.Valid || claims.UserID <= 0 {
		return 0, errors.New("invalid token claims")
	}
	return claims.UserID, nil
}
