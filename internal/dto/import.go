package dto

// ImportCustomerRecord is a single customer record in a bulk import payload
type ImportCustomerRecord struct {
	ExternalSource string `json:"externalSource" validate:"required,min=1,max=100"`
	ExternalID     string `json:"externalId" validate:"required,min=1,max=255"`
	Email          string `json:"email" validate:"omitempty,email"`
	FirstName      string `json:"firstName" validate:"omitempty,max=100"`
	LastName       string `json:"lastName" validate:"omitempty,max=100"`
	Company        string `json:"company" validate:"omitempty,max=255"`
	Title          string `json:"title" validate:"omitempty,max=255"`
	Phone          string `json:"phone" validate:"omitempty,max=50"`
	Address        string `json:"address" validate:"omitempty,max=500"`
	City           string `json:"city" validate:"omitempty,max=100"`
	State          string `json:"state" validate:"omitempty,max=100"`
	Country        string `json:"country" validate:"omitempty,max=100"`
	ZipCode        string `json:"zipCode" validate:"omitempty,max=20"`
	Revenue        string `json:"revenue" validate:"omitempty,numeric"`
	Industry       string `json:"industry" validate:"omitempty,max=100"`
}

// BulkImportRequest represents a bulk customer import payload
type BulkImportRequest struct {
	Customers     []ImportCustomerRecord `json:"customers" validate:"required,min=1,dive"`
	ClearExisting bool                   `json:"clearExisting"`
}

// BulkImportItemResult reports the outcome of one record
type BulkImportItemResult struct {
	Index          int    `json:"index"`
	ExternalSource string `json:"externalSource"`
	ExternalID     string `json:"externalId"`
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
}

// BulkImportResults carries the per-batch counters and per-item outcomes
type BulkImportResults struct {
	Total      int                    `json:"total"`
	Successful int                    `json:"successful"`
	Failed     int                    `json:"failed"`
	Details    []BulkImportItemResult `json:"details"`
}

// BulkImportResponse reports the outcome of the whole batch. Success refers
// to the batch being processed, not to every record succeeding.
type BulkImportResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Results BulkImportResults `json:"results"`
}
