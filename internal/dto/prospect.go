package dto

import (
	"leadsearch/internal/models"
)

// GetProspectResponse represents a single prospect lookup result
type GetProspectResponse struct {
	Prospect *models.Prospect `json:"prospect"`
}

// UpdateProspectRequest represents a full-replacement prospect update. Every
// updatable column is written from this payload; fields left out of the JSON
// body are written as empty. Email and companyId are not updatable and are
// ignored if sent.
type UpdateProspectRequest struct {
	Email         string `json:"email"`
	CompanyID     string `json:"companyId"`
	FirstName     string `json:"firstName" validate:"omitempty,max=100"`
	LastName      string `json:"lastName" validate:"omitempty,max=100"`
	Title         string `json:"title" validate:"omitempty,max=255"`
	Phone         string `json:"phone" validate:"omitempty,max=50"`
	CompanyDomain string `json:"companyDomain" validate:"omitempty,max=255"`
	CompanyName   string `json:"companyName" validate:"omitempty,max=255"`
	Address       string `json:"address" validate:"omitempty,max=500"`
	City          string `json:"city" validate:"omitempty,max=100"`
	State         string `json:"state" validate:"omitempty,max=100"`
	Country       string `json:"country" validate:"omitempty,max=100"`
	ZipCode       string `json:"zipCode" validate:"omitempty,max=20"`
}

// UpdateProspectResponse represents the response after updating a prospect
type UpdateProspectResponse struct {
	Prospect *models.Prospect `json:"prospect"`
	Message  string           `json:"message"`
}
