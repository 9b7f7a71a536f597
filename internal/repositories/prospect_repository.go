package repositories

import (
	"errors"
	"fmt"

	"leadsearch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProspectNotFound      = errors.New("prospect not found")
	ErrProspectAlreadyExists = errors.New("prospect already exists")
)

// ProspectRepository handles database operations for prospect records
type ProspectRepository struct {
	db *gorm.DB
}

// NewProspectRepository creates a new prospect repository
func NewProspectRepository(db *gorm.DB) ProspectRepositoryInterface {
	return &ProspectRepository{
		db: db,
	}
}

// GetByID retrieves a prospect by ID
func (r *ProspectRepository) GetByID(id uuid.UUID) (*models.Prospect, error) {
	var prospect models.Prospect
	if err := r.db.Where("id = ?", id).First(&prospect).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProspectNotFound
		}
		return nil, fmt.Errorf("failed to get prospect by ID: %w", err)
	}

	return &prospect, nil
}

// GetByEmail retrieves a prospect by email address, case-insensitively
func (r *ProspectRepository) GetByEmail(email string) (*models.Prospect, error) {
	var prospect models.Prospect
	if err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&prospect).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProspectNotFound
		}
		return nil, fmt.Errorf("failed to get prospect by email: %w", err)
	}

	return &prospect, nil
}

// Create creates a new prospect
func (r *ProspectRepository) Create(prospect *models.Prospect) error {
	if prospect == nil {
		return errors.New("prospect cannot be nil")
	}

	if err := r.db.Create(prospect).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrProspectAlreadyExists
		}
		return fmt.Errorf("failed to create prospect: %w", err)
	}

	return nil
}

// UpdateFields writes the given columns for a prospect. The immutable email
// and company_id columns are always removed from the update set.
func (r *ProspectRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	delete(fields, "email")
	delete(fields, "company_id")

	result := r.db.Model(&models.Prospect{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update prospect fields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProspectNotFound
	}

	return nil
}
