package repositories

import (
	"errors"
	"fmt"
	"strings"

	"leadsearch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerRepository handles database operations for customer records
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return &customer, nil
}

// GetByEmail retrieves a customer by email address, case-insensitively
func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}

	return &customer, nil
}

// Upsert inserts the customer or, when a row with the same
// (external_source, external_id) already exists, overwrites its data columns
func (r *CustomerRepository) Upsert(customer *models.Customer) error {
	return r.UpsertTx(r.db, customer)
}

// UpsertTx performs the upsert inside the given transaction handle
func (r *CustomerRepository) UpsertTx(tx *gorm.DB, customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_source"}, {Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "company", "title", "phone",
			"address", "city", "state", "country", "zip_code", "revenue",
			"industry", "updated_at",
		}),
	}).Create(customer).Error
	if err != nil {
		return fmt.Errorf("failed to upsert customer: %w", err)
	}

	return nil
}

// DeleteAllTx removes every customer row inside the given transaction handle.
// Used by bulk import's clearExisting path.
func (r *CustomerRepository) DeleteAllTx(tx *gorm.DB) error {
	if err := tx.Where("1 = 1").Delete(&models.Customer{}).Error; err != nil {
		return fmt.Errorf("failed to clear customers: %w", err)
	}
	return nil
}

// Count returns the number of customer rows
func (r *CustomerRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Postgres duplicate key error detection
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
