package dto

import (
	"time"

	"leadsearch/internal/models"
)

// LoginRequest contains login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the issued access token and the authenticated user
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        *models.User `json:"user"`
	RedirectTo  string       `json:"redirectTo"`
}
