package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Company is a B2B organization record keyed by its web domain. The domain is
// immutable after creation; update paths must never write it.
type Company struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Domain      string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"domain"`
	Name        string          `gorm:"type:varchar(255);index" json:"name"`
	Industry    string          `gorm:"type:varchar(100)" json:"industry"`
	Size        string          `gorm:"type:varchar(50)" json:"size"`
	Revenue     decimal.Decimal `gorm:"type:numeric(16,2);default:0" json:"revenue"`
	Address     string          `gorm:"type:varchar(500)" json:"address"`
	City        string          `gorm:"type:varchar(100)" json:"city"`
	State       string          `gorm:"type:varchar(100)" json:"state"`
	Country     string          `gorm:"type:varchar(100)" json:"country"`
	ZipCode     string          `gorm:"type:varchar(20)" json:"zipCode"`
	Phone       string          `gorm:"type:varchar(50)" json:"phone"`
	Website     string          `gorm:"type:varchar(500)" json:"website"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updatedAt"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
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

func (c *Company) Validate() error {
	if c.Domain == "" {
		return errors.New("domain is required")
	}

	return nil
}

func (c *Company) TableName() string {
	return "companies"
}
