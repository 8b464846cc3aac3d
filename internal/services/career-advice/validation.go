// internal/services/career-advice/validation.go
package careeradvice

import (
	"encoding/json"
	"strings"

	apperrors "career-advisor/internal/common/errors"
	"career-advisor/internal/common/validation"
	"career-advisor/internal/models"
)

var requiredProfileFields = []string{"education", "skills", "interests", "careerGoals"}

var profileSchema = validation.MustCompile(`{
  "type": "object",
  "required": ["education", "skills", "interests", "careerGoals"],
  "properties": {
    "education":   {"type": "string", "minLength": 1},
    "skills":      {"type": "array", "items": {"type": "string"}},
    "interests":   {"type": "array", "items": {"type": "string"}},
    "strengths":   {"type": ["array", "null"], "items": {"type": "string"}},
    "weaknesses":  {"type": ["array", "null"], "items": {"type": "string"}},
    "careerGoals": {"type": "string", "minLength": 1},
    "experience":  {"type": ["string", "null"]}
  }
}`)

// DecodeProfile parses and validates a career advice request body.
func DecodeProfile(body []byte) (*models.StudentProfile, error) {
	result, err := profileSchema.ValidateBytes(body)
	if err != nil {
		return nil, apperrors.NewInvalidRequestError(err.Error())
	}

	if result.HasErrors() {
		if missing := missingCoreFields(result); len(missing) > 0 {
			return nil, apperrors.NewMissingProfileFieldsError(missing)
		}
		return nil, apperrors.NewInvalidRequestError(result.Error())
	}

	var profile models.StudentProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, apperrors.NewInvalidRequestError(err.Error())
	}
	if !profile.HasRequiredFields() {
		return nil, apperrors.NewMissingProfileFieldsError(requiredProfileFields)
	}
	return &profile, nil
}

// missingCoreFields lists required fields that are absent, empty or of the
// wrong kind. Errors inside list items are not counted.
func missingCoreFields(result *validation.ValidationResult) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, e := range result.Errors {
		if strings.Contains(e.Field, ".") {
			continue
		}
		for _, f := range requiredProfileFields {
			if e.Field == f && !seen[f] {
				seen[f] = true
				missing = append(missing, f)
			}
		}
	}
	return missing
}
