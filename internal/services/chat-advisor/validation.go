// internal/services/chat-advisor/validation.go
package chatadvisor

import (
	"encoding/json"
	"strings"

	apperrors "career-advisor/internal/common/errors"
	"career-advisor/internal/common/validation"
)

var requestSchema = validation.MustCompile(`{
  "type": "object",
  "properties": {
    "message": {"type": ["string", "null"]},
    "studentProfile": {
      "type": ["object", "null"],
      "properties": {
        "education":   {"type": ["string", "null"]},
        "skills":      {"type": ["array", "null"], "items": {"type": "string"}},
        "interests":   {"type": ["array", "null"], "items": {"type": "string"}},
        "strengths":   {"type": ["array", "null"], "items": {"type": "string"}},
        "weaknesses":  {"type": ["array", "null"], "items": {"type": "string"}},
        "careerGoals": {"type": ["string", "null"]},
        "experience":  {"type": ["string", "null"]}
      }
    },
    "conversationHistory": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["role", "content"],
        "properties": {
          "role":      {"enum": ["user", "assistant"]},
          "content":   {"type": "string"},
          "timestamp": {"type": "number"}
        }
      }
    }
  }
}`)

// DecodeRequest parses and validates a chat request body. The body is read
// once; the fallback path reuses the decoded request.
func DecodeRequest(body []byte) (*Request, error) {
	result, err := requestSchema.ValidateBytes(body)
	if err != nil {
		return nil, apperrors.NewInvalidRequestError(err.Error())
	}
	if result.HasErrors() {
		return nil, apperrors.NewInvalidRequestError(result.Error())
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, apperrors.NewInvalidRequestError(err.Error())
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return nil, apperrors.NewMessageRequiredError()
	}
	return &req, nil
}
