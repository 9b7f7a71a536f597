package services

import (
	"context"
	"time"

	"leadsearch/internal/models"
)

// SuggestionSearcher is the slice of the search client the suggestion
// service depends on.
type SuggestionSearcher interface {
	FieldSuggestions(ctx context.Context, field, query string, limit int) ([]string, error)
}

// SuggestionCache is the slice of the cache client the suggestion service
// depends on.
type SuggestionCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// SuggestionServiceInterface provides typeahead suggestions
type SuggestionServiceInterface interface {
	GetSuggestions(ctx context.Context, field, query string, limit int) ([]string, bool, error)
}

// ImportServiceInterface performs bulk customer imports
type ImportServiceInterface interface {
	ImportCustomers(ctx context.Context, customers []*models.Customer, clearExisting bool) (*ImportSummary, error)
}

// Pinger is a liveness probe on an external dependency
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthServiceInterface aggregates dependency liveness probes
type HealthServiceInterface interface {
	Check(ctx context.Context) *HealthReport
}

// TokenServiceInterface handles JWT token generation and validation
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface handles password hashing and verification
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// AuthServiceInterface authenticates users and issues access tokens
type AuthServiceInterface interface {
	Login(email, password string) (*models.User, string, time.Time, error)
}

// MetricsRecorderInterface records application metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
