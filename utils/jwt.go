package utils

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt"
)

// Load the secret from an environment variable. Fallback to a default (not recommended in production).
var secretKey = []byte(getSecret())

func getSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "concierge-dev"
	}
	return secret
}

// ValidateToken parses and validates a token string and returns the token if valid.
// Tokens are minted by the external identity service; this side only verifies them.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
}

// TokenClaims extracts the subject and role claims from a validated token.
func TokenClaims(token *jwt.Token) (subject string, role string, err error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	r, _ := claims["role"].(string)
	if sub == "" {
		return "", "", errors.New("token missing subject")
	}
	return sub, r, nil
}
