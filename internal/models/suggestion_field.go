package models

// SuggestionField identifies a customer attribute that the typeahead endpoint
// can complete against.
type SuggestionField string

const (
	SuggestionFieldCompany  SuggestionField = "company"
	SuggestionFieldTitle    SuggestionField = "title"
	SuggestionFieldCity     SuggestionField = "city"
	SuggestionFieldState    SuggestionField = "state"
	SuggestionFieldCountry  SuggestionField = "country"
	SuggestionFieldIndustry SuggestionField = "industry"
	SuggestionFieldZipCode  SuggestionField = "zipCode"
)

// SuggestionFields lists every field the suggestion endpoint accepts.
var SuggestionFields = []SuggestionField{
	SuggestionFieldCompany,
	SuggestionFieldTitle,
	SuggestionFieldCity,
	SuggestionFieldState,
	SuggestionFieldCountry,
	SuggestionFieldIndustry,
	SuggestionFieldZipCode,
}

// IsValidSuggestionField reports whether field names a known suggestion field
func IsValidSuggestionField(field string) bool {
	for _, f := range SuggestionFields {
		if string(f) == field {
			return true
		}
	}
	return false
}
