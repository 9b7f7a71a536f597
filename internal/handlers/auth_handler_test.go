package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"leadsearch/internal/config"
	"leadsearch/internal/database"
	"leadsearch/internal/dto"
	"leadsearch/internal/models"
	"leadsearch/internal/repositories"
	"leadsearch/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// AuthHandlerTestSuite is the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	e        *echo.Echo
	db       *database.DB
	userRepo repositories.UserRepositoryInterface
	handler  *AuthHandler
	password string
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.db = database.SetupTestDB(s.T())
	s.userRepo = repositories.NewUserRepository(s.db.DB)

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	passwordService := services.NewPasswordService()
	tokenService := services.NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "leadsearch-test",
	})
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	authService := services.NewAuthService(s.userRepo, passwordService, tokenService, &fakeMetrics{}, logger)
	s.handler = NewAuthHandler(authService)

	s.password = "SecurePass123"
	passwordHash, err := passwordService.HashPassword(s.password)
	s.Require().NoError(err)

	s.Require().NoError(s.userRepo.Create(&models.User{
		Email:        "mod@example.com",
		PasswordHash: passwordHash,
		Role:         models.RoleModerator,
	}))
	s.Require().NoError(s.userRepo.Create(&models.User{
		Email:        "admin@example.com",
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}))
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) loginContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *AuthHandlerTestSuite) TestLogin_ModeratorRedirectsToSearch() {
	c, rec := s.loginContext(`{"email":"mod@example.com","password":"` + s.password + `"}`)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.LoginResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotEmpty(response.AccessToken)
	s.Equal("Bearer", response.TokenType)
	s.Equal("/search", response.RedirectTo)
	s.True(response.ExpiresAt.After(time.Now()))
}

func (s *AuthHandlerTestSuite) TestLogin_AdminRedirectsToAdmin() {
	c, rec := s.loginContext(`{"email":"admin@example.com","password":"` + s.password + `"}`)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.LoginResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("/admin", response.RedirectTo)
}

func (s *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	c, rec := s.loginContext(`{"email":"mod@example.com","password":"WrongPass123"}`)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthHandlerTestSuite) TestLogin_UnknownUser() {
	c, rec := s.loginContext(`{"email":"nobody@example.com","password":"SecurePass123"}`)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthHandlerTestSuite) TestLogin_LockedAccount() {
	for i := 0; i < models.MaxFailedLoginAttempts; i++ {
		c, _ := s.loginContext(`{"email":"mod@example.com","password":"WrongPass123"}`)
		s.NoError(s.handler.Login(c))
	}

	c, rec := s.loginContext(`{"email":"mod@example.com","password":"` + s.password + `"}`)

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_006")
}

func (s *AuthHandlerTestSuite) TestLogin_MissingFields() {
	c, _ := s.loginContext(`{"email":"mod@example.com"}`)

	s.Error(s.handler.Login(c))
}
