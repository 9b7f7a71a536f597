package repositories

import (
	"errors"
	"fmt"

	"leadsearch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists")
)

// CompanyRepository handles database operations for company records
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) CompanyRepositoryInterface {
	return &CompanyRepository{
		db: db,
	}
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.db.Where("id = ?", id).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company by ID: %w", err)
	}

	return &company, nil
}

// GetByDomain retrieves a company by its domain, case-insensitively
func (r *CompanyRepository) GetByDomain(domain string) (*models.Company, error) {
	var company models.Company
	if err := r.db.Where("LOWER(domain) = LOWER(?)", domain).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company by domain: %w", err)
	}

	return &company, nil
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	if company == nil {
		return errors.New("company cannot be nil")
	}

	if err := r.db.Create(company).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCompanyAlreadyExists
		}
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

// UpdateFields writes the given columns for a company. The immutable domain
// column is always removed from the update set.
func (r *CompanyRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	delete(fields, "domain")

	result := r.db.Model(&models.Company{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update company fields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}

	return nil
}
