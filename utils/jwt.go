package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTClaims is the token payload.
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var jwtKey []byte

// SetSecret installs the signing secret from the validated config.
// Config loading already fails when the secret is missing.
func SetSecret(secret string) {
	jwtKey = []byte(secret)
}

// GenerateToken signs a 24h token for a logged-in user.
func GenerateToken(userID uint, role string) (string, error) {
	if len(jwtKey) == 0 {
		return "", errors.New("jwt secret is not configured")
	}

	claims := JWTClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "radio-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// VerifyToken parses and validates a token, returning its claims.
func VerifyToken(tokenStr string) (*JWTClaims, error) {
	if len(jwtKey) == 0 {
		return nil, errors.New("jwt secret is not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("token invalid or expired")
}
