// internal/api/quiz/validation.go
package quiz

import (
	"strings"

	"aagaz-backend/internal/common/validation"
)

var submitSchema = validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		// Grade membership is checked by the scoring engine so the
		// response carries the dedicated invalid-grade message.
		"grade": {Type: "string"},
		"answers": {
			Type: "array",
			Items: &validation.Property{
				Type: "object",
				Properties: map[string]validation.Property{
					"questionId":      {Type: "integer"},
					"selectedOptions": {Type: "array", Items: &validation.Property{Type: "string"}},
				},
				Required: []string{"questionId"},
			},
		},
		"userInfo": {Type: "object"},
	},
	Required:             []string{"grade", "answers"},
	AdditionalProperties: true,
}

// validateSubmit checks the raw payload against the schema and returns the
// joined error messages on failure.
func validateSubmit(payload map[string]interface{}) (bool, string) {
	result := validation.ValidateInput(payload, submitSchema)
	if result.Valid {
		return true, ""
	}
	return false, strings.Join(result.GetErrorMessages(), "; ")
}
