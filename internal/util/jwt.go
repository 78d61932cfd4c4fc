package util

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields of an API bearer token worth surfacing in logs.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// InspectToken decodes a bearer token without checking its signature. The
// remote API owns the signing key; the result is informational only and must
// never be used to grant access.
func InspectToken(raw string) (*Claims, error) {
	if raw == "" {
		return nil, errors.New("empty token")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
