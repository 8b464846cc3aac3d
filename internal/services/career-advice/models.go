// internal/services/career-advice/models.go
package careeradvice

import "career-advisor/internal/models"

const (
	WarningOffline = "Using offline recommendations due to network issues"
	WarningCached  = "Using cached recommendations"
)

// Output is the result of one recommendation request. Source is one of
// models.SourceAI, models.SourceCache or models.SourceFallback.
type Output struct {
	Recommendations []models.CareerRecommendation
	Warning         string
	Source          string
}

// Response is the JSON body returned by POST /api/career-advice.
type Response struct {
	Success         bool                          `json:"success"`
	Recommendations []models.CareerRecommendation `json:"recommendations"`
	Warning         string                        `json:"warning,omitempty"`
}

// NewResponse builds the success body for out.
func NewResponse(out *Output) Response {
	return Response{
		Success:         true,
		Recommendations: out.Recommendations,
		Warning:         out.Warning,
	}
}
