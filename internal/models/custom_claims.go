package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims carries the application claims embedded in access tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
}
