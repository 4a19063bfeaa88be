package api

import (
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	GenerateToken(name string) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims carries only the profile name: this is a single-user app,
// the token just fences off mutating routes.
type JWTClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}
