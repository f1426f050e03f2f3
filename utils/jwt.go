package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// The client never holds the backend's signing secret, so tokens are only
// inspected, not verified. Signature validation happens server side.

// TokenExpired reports whether the bearer token's "exp" claim is in the past.
// Tokens without an exp claim are treated as unexpired.
func TokenExpired(tokenString string) bool {
	claims, err := InspectToken(tokenString)
	if err != nil {
		return true
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().Unix() >= int64(exp)
}

// InspectToken parses a token string without verifying its signature and
// returns the embedded claims.
func InspectToken(tokenString string) (jwt.MapClaims, error) {
	parser := new(jwt.Parser)
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("token does not contain map claims")
	}
	return claims, nil
}

// ExtractIDFromToken extracts the ID (subject) from a token string.
// It returns the extracted ID or an error if the claim is absent.
func ExtractIDFromToken(tokenString string) (string, error) {
	claims, err := InspectToken(tokenString)
	if err != nil {
		return "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
