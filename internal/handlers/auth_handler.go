package handlers

import (
	stderrors "errors"
	"net/http"

	"leadsearch/internal/dto"
	"leadsearch/internal/errors"
	"leadsearch/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a user and issues an access token
// @Summary Login
// @Description Authenticates with email and password, returning a bearer token and the post-login redirect target
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Access token"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Invalid email or password"
// @Failure 403 {object} errors.ErrorResponse "AUTH_006 - Account is locked or disabled"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, expiresAt, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidCredentials):
			return SendError(c, errors.AuthInvalidCredentials)
		case stderrors.Is(err, services.ErrAccountLocked):
			return SendError(c, errors.AuthAccountLocked)
		default:
			return SendSystemError(c, err)
		}
	}

	redirectTo := "/search"
	if user.IsAdmin() {
		redirectTo = "/admin"
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user,
		RedirectTo:  redirectTo,
	})
}
