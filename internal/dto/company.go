package dto

import (
	"leadsearch/internal/models"
)

// GetCompanyResponse represents a single company lookup result
type GetCompanyResponse struct {
	Company *models.Company `json:"company"`
}

// UpdateCompanyRequest represents a full-replacement company update. Every
// updatable column is written from this payload; fields left out of the JSON
// body are written as empty. Domain is not updatable and is ignored if sent.
type UpdateCompanyRequest struct {
	Domain      string `json:"domain"`
	Name        string `json:"name" validate:"omitempty,max=255"`
	Industry    string `json:"industry" validate:"omitempty,max=100"`
	Size        string `json:"size" validate:"omitempty,max=50"`
	Revenue     string `json:"revenue" validate:"omitempty,numeric"`
	Address     string `json:"address" validate:"omitempty,max=500"`
	City        string `json:"city" validate:"omitempty,max=100"`
	State       string `json:"state" validate:"omitempty,max=100"`
	Country     string `json:"country" validate:"omitempty,max=100"`
	ZipCode     string `json:"zipCode" validate:"omitempty,max=20"`
	Phone       string `json:"phone" validate:"omitempty,max=50"`
	Website     string `json:"website" validate:"omitempty,max=500"`
	Description string `json:"description"`
}

// UpdateCompanyResponse represents the response after updating a company
type UpdateCompanyResponse struct {
	Company *models.Company `json:"company"`
	Message string          `json:"message"`
}
