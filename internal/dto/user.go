package dto

import (
	"leadsearch/internal/models"
)

// CreateUserRequest represents an admin request to create a user
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Role      string `json:"role" validate:"required,oneof=ADMIN MODERATOR USER"`
}

// UpdateUserRequest represents an admin request to update a user. Pointer
// fields distinguish "leave unchanged" from "set empty".
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	Role      *string `json:"role" validate:"omitempty,oneof=ADMIN MODERATOR USER"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
	Unlock    *bool   `json:"unlock"`
}

// UserResponse represents a single user
type UserResponse struct {
	User *models.User `json:"user"`
}

// ListUsersResponse represents a paginated user listing
type ListUsersResponse struct {
	Users      []*models.User `json:"users"`
	Total      int64          `json:"total"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
	TotalPages int            `json:"totalPages"`
}

// DeleteUserResponse represents the response after deleting a user
type DeleteUserResponse struct {
	Message string `json:"message"`
}
