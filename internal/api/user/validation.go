// internal/api/user/validation.go
package user

import (
	"strings"

	"aagaz-backend/internal/common/validation"
)

var saveResultSchema = validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"userId":          {Type: "string", MinLength: intPtr(1)},
		"grade":           {Type: "string", MinLength: intPtr(1)},
		"answers":         {Type: "array"},
		"recommendations": {Type: "array"},
		"timestamp":       {Type: "string"},
	},
	Required:             []string{"userId", "grade", "answers"},
	AdditionalProperties: true,
}

var savePreferencesSchema = validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"userId":      {Type: "string", MinLength: intPtr(1)},
		"preferences": {Type: "object"},
	},
	Required:             []string{"userId", "preferences"},
	AdditionalProperties: true,
}

func intPtr(v int) *int { return &v }

func validatePayload(payload map[string]interface{}, schema validation.JSONSchema) (bool, string) {
	result := validation.ValidateInput(payload, schema)
	if result.Valid {
		return true, ""
	}
	return false, strings.Join(result.GetErrorMessages(), "; ")
}
