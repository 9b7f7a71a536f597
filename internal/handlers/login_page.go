package handlers

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed web/login.html
var loginPageHTML []byte

// LoginPageHandler serves the embedded login page
type LoginPageHandler struct{}

// NewLoginPageHandler creates a new login page handler
func NewLoginPageHandler() *LoginPageHandler {
	return &LoginPageHandler{}
}

// ServeLoginPage serves the login form
// @Summary Login page
// @Description Serves the HTML login form. The form posts credentials to /api/auth/login and redirects by role.
// @Tags Auth
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /login [get]
func (h *LoginPageHandler) ServeLoginPage(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, loginPageHTML)
}
