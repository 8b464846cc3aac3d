// internal/services/chat-advisor/prompt.go
package chatadvisor

import (
	"fmt"
	"strings"

	"career-advisor/internal/models"
)

const notSpecified = "Not specified"

func joinOrDefault(items []string) string {
	if len(items) == 0 {
		return notSpecified
	}
	return strings.Join(items, ", ")
}

func valueOrDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

func profileContext(p *models.StudentProfile) string {
	if p == nil {
		return ""
	}
	var parts []string
	parts = append(parts, "Student Profile Context:")
	parts = append(parts, fmt.Sprintf("- Education: %s", valueOrDefault(p.Education)))
	parts = append(parts, fmt.Sprintf("- Skills: %s", joinOrDefault(p.Skills)))
	parts = append(parts, fmt.Sprintf("- Interests: %s", joinOrDefault(p.Interests)))
	parts = append(parts, fmt.Sprintf("- Strengths: %s", joinOrDefault(p.Strengths)))
	parts = append(parts, fmt.Sprintf("- Career Goals: %s", valueOrDefault(p.CareerGoals)))
	parts = append(parts, fmt.Sprintf("- Experience: %s", valueOrDefault(p.Experience)))
	return strings.Join(parts, "\n")
}

// recentHistory keeps the last window messages.
func recentHistory(history []models.ChatMessage, window int) []models.ChatMessage {
	if window <= 0 {
		return nil
	}
	if len(history) > window {
		return history[len(history)-window:]
	}
	return history
}

func conversationContext(history []models.ChatMessage) string {
	if len(history) == 0 {
		return ""
	}
	lines := []string{"Previous Conversation:"}
	for _, msg := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}
	return strings.Join(lines, "\n")
}

func buildPrompt(req *Request, window int) string {
	var parts []string

	parts = append(parts, "You are an expert AI Career Advisor helping students and professionals with career guidance.")
	parts = append(parts, "")
	parts = append(parts, profileContext(req.StudentProfile))
	parts = append(parts, "")
	parts = append(parts, conversationContext(recentHistory(req.ConversationHistory, window)))
	parts = append(parts, "")
	parts = append(parts, fmt.Sprintf("Current Question: %s", req.Message))

	parts = append(parts, "\nInstructions:")
	parts = append(parts, "- Provide helpful, personalized career advice based on the student's profile")
	parts = append(parts, "- Keep responses concise but informative (2-3 sentences max)")
	parts = append(parts, "- Be encouraging and supportive")
	parts = append(parts, "- Focus on actionable advice")
	parts = append(parts, "- If asked about salary, provide realistic ranges for 2025")
	parts = append(parts, "- If asked about skills, suggest specific, in-demand skills")
	parts = append(parts, "- If asked about timeline, provide realistic expectations")
	parts = append(parts, "- Use a friendly, professional tone")
	parts = append(parts, "- Don't use markdown formatting")

	parts = append(parts, "\nRespond directly to their question:")

	return strings.Join(parts, "\n")
}
