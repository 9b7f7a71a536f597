package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer is an imported lead record. The composite key
// (external_source, external_id) identifies the record in its source system
// and makes bulk imports idempotent.
type Customer struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ExternalSource string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_customers_external_key" json:"externalSource"`
	ExternalID     string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_customers_external_key" json:"externalId"`
	Email          string          `gorm:"type:varchar(255);index" json:"email"`
	FirstName      string          `gorm:"type:varchar(100)" json:"firstName"`
	LastName       string          `gorm:"type:varchar(100)" json:"lastName"`
	Company        string          `gorm:"type:varchar(255);index" json:"company"`
	Title          string          `gorm:"type:varchar(255)" json:"title"`
	Phone          string          `gorm:"type:varchar(50)" json:"phone"`
	Address        string          `gorm:"type:varchar(500)" json:"address"`
	City           string          `gorm:"type:varchar(100)" json:"city"`
	State          string          `gorm:"type:varchar(100)" json:"state"`
	Country        string          `gorm:"type:varchar(100)" json:"country"`
	ZipCode        string          `gorm:"type:varchar(20)" json:"zipCode"`
	Revenue        decimal.Decimal `gorm:"type:numeric(16,2);default:0" json:"revenue"`
	Industry       string          `gorm:"type:varchar(100)" json:"industry"`
	CreatedAt      time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Customer) Validate() error {
	if c.ExternalSource == "" {
		return errors.New("external source is required")
	}

	if c.ExternalID == "" {
		return errors.New("external ID is required")
	}

	if c.Email != "" && !emailRegex.MatchString(c.Email) {
		return errors.New("invalid email format")
	}

	return nil
}

func (c *Customer) TableName() string {
	return "customers"
}
