// internal/api/recommendations/validation.go
package recommendations

import (
	"strings"

	"aagaz-backend/internal/common/validation"
)

// Every profile field is optional; the schema only rejects payloads whose
// fields carry the wrong shape.
var profileSchema = validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"interests":      {Type: "array", Items: &validation.Property{Type: "string"}},
		"skills":         {Type: "array", Items: &validation.Property{Type: "string"}},
		"educationLevel": {Type: "string"},
		"location":       {Type: "string"},
		"careerGoals":    {Type: "array", Items: &validation.Property{Type: "string"}},
	},
	AdditionalProperties: true,
}

func validateProfile(payload map[string]interface{}) (bool, string) {
	result := validation.ValidateInput(payload, profileSchema)
	if result.Valid {
		return true, ""
	}
	return false, strings.Join(result.GetErrorMessages(), "; ")
}
