// internal/services/chat-advisor/models.go
package chatadvisor

import "career-advisor/internal/models"

const WarningOffline = "Using offline chat mode"

// Request is the body of POST /api/chat-advisor. History is supplied by the
// caller on every turn; nothing is kept server side.
type Request struct {
	Message             string                 `json:"message"`
	StudentProfile      *models.StudentProfile `json:"studentProfile,omitempty"`
	ConversationHistory []models.ChatMessage   `json:"conversationHistory,omitempty"`
}

type Output struct {
	Response string
	Warning  string
	Source   string
}

// Response is the JSON body returned by POST /api/chat-advisor.
type Response struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Warning  string `json:"warning,omitempty"`
}

func NewResponse(out *Output) Response {
	return Response{
		Success:  true,
		Response: out.Response,
		Warning:  out.Warning,
	}
}
