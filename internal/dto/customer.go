package dto

import (
	"leadsearch/internal/models"
)

// GetCustomerResponse represents a single customer lookup result
type GetCustomerResponse struct {
	Customer *models.Customer `json:"customer"`
}
