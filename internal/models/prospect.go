package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prospect is an individual contact associated with a Company. The company is
// a reference, not an ownership relation: deleting a prospect never touches
// the company row. Email and CompanyID are immutable once set.
type Prospect struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName     string     `gorm:"type:varchar(100)" json:"firstName"`
	LastName      string     `gorm:"type:varchar(100)" json:"lastName"`
	Title         string     `gorm:"type:varchar(255)" json:"title"`
	Phone         string     `gorm:"type:varchar(50)" json:"phone"`
	CompanyID     *uuid.UUID `gorm:"type:uuid;index" json:"companyId"`
	CompanyDomain string     `gorm:"type:varchar(255);index" json:"companyDomain"`
	CompanyName   string     `gorm:"type:varchar(255)" json:"companyName"`
	Address       string     `gorm:"type:varchar(500)" json:"address"`
	City          string     `gorm:"type:varchar(100)" json:"city"`
	State         string     `gorm:"type:varchar(100)" json:"state"`
	Country       string     `gorm:"type:varchar(100)" json:"country"`
	ZipCode       string     `gorm:"type:varchar(20)" json:"zipCode"`
	CreatedAt     time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updatedAt"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"-"`
}

func (p *Prospect) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Prospect) Validate() error {
	if p.Email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(p.Email) {
		return errors.New("invalid email format")
	}

	return nil
}

func (p *Prospect) TableName() string {
	return "prospects"
}
