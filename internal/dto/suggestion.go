package dto

// SuggestionRequest represents a typeahead suggestion lookup
type SuggestionRequest struct {
	Field string `json:"field" query:"field" validate:"required,oneof=company title city state country industry zipCode"`
	Query string `json:"query" query:"query" validate:"required,min=1,max=100"`
	Limit int    `json:"limit" query:"limit" validate:"omitempty,min=1,max=20"`
}

// SuggestionResponse represents the suggestion lookup result
type SuggestionResponse struct {
	Field       string   `json:"field"`
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
	Cached      bool     `json:"cached"`
}
