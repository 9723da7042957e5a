package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenType marks tokens accepted on authenticated endpoints.
	AccessTokenType = "access"
	// RefreshTokenType marks tokens that may only be exchanged for a new access token.
	RefreshTokenType = "refresh"
)

// TokenClaims are the JWT claims issued by the API. Subject carries the user ID.
type TokenClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a new HS256 token of the given type for userID.
func GenerateJWT(userID string, secret string, expiryDuration time.Duration, issuer string, tokenType string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string, validates its signature and standard claims,
// and checks that it is of the expected type.
func ParseAndValidateJWT(tokenString string, secretKey string, expectedType string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err // Includes expired, not-yet-valid and bad signature
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("%w: expected %s token, got %q", jwt.ErrTokenInvalidClaims, expectedType, claims.TokenType)
	}

	if claims.Subject == "" {
		return nil, errors.Join(jwt.ErrTokenInvalidClaims, errors.New("subject missing"))
	}

	return claims, nil
}
