package repositories

import (
	"leadsearch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRepositoryInterface defines customer persistence operations.
// The *Tx variants take an explicit transaction handle so the bulk importer
// can scope the whole batch to one transaction.
type CustomerRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	Upsert(customer *models.Customer) error
	UpsertTx(tx *gorm.DB, customer *models.Customer) error
	DeleteAllTx(tx *gorm.DB) error
	Count() (int64, error)
}

// CompanyRepositoryInterface defines company persistence operations
type CompanyRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Company, error)
	GetByDomain(domain string) (*models.Company, error)
	Create(company *models.Company) error
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
}

// ProspectRepositoryInterface defines prospect persistence operations
type ProspectRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Prospect, error)
	GetByEmail(email string) (*models.Prospect, error)
	Create(prospect *models.Prospect) error
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
}

// UserRepositoryInterface defines application-user persistence operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ListUsers(offset, limit int) ([]*models.User, int64, error)
	UpdateFields(userID uuid.UUID, fields map[string]interface{}) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
	Delete(userID uuid.UUID) error
}
