// internal/services/career-advice/prompt.go
package careeradvice

import (
	"fmt"
	"strings"

	"career-advisor/internal/models"
)

const responseShape = `{
  "title": "Job Title",
  "match": 85,
  "description": "Brief description of the role",
  "whySuitable": "Why this career suits the student based on their profile",
  "keySkills": ["skill1", "skill2", "skill3", "skill4", "skill5"],
  "roadmap": [
    {
      "phase": "Phase Name",
      "duration": "3-4 months",
      "tasks": ["task1", "task2", "task3"],
      "skills": ["skill1", "skill2"]
    }
  ],
  "marketInsights": {
    "demand": "High/Medium/Low",
    "salaryRange": "$XX,000 - $XX,000",
    "growth": "XX% (Much faster than average)"
  }
}`

func buildPrompt(p *models.StudentProfile) string {
	var parts []string

	parts = append(parts, "You are an expert career advisor. Based on the following student profile, generate 5-6 personalized career recommendations.")

	parts = append(parts, "\nStudent Profile:")
	parts = append(parts, fmt.Sprintf("- Education: %s", p.Education))
	parts = append(parts, fmt.Sprintf("- Skills: %s", strings.Join(p.Skills, ", ")))
	parts = append(parts, fmt.Sprintf("- Interests: %s", strings.Join(p.Interests, ", ")))
	parts = append(parts, fmt.Sprintf("- Strengths: %s", strings.Join(p.Strengths, ", ")))
	parts = append(parts, fmt.Sprintf("- Areas for Improvement: %s", strings.Join(p.Weaknesses, ", ")))
	parts = append(parts, fmt.Sprintf("- Career Goals: %s", p.CareerGoals))
	parts = append(parts, fmt.Sprintf("- Experience: %s", p.Experience))

	parts = append(parts, "\nRequirements:")
	parts = append(parts, "- Return ONLY a valid JSON array of career recommendations")
	parts = append(parts, "- Each recommendation must have this exact structure:")
	parts = append(parts, responseShape)
	parts = append(parts, "")
	parts = append(parts, "- Match percentage should be 70-95% based on profile alignment")
	parts = append(parts, "- Include 3-4 roadmap phases per career")
	parts = append(parts, "- Use realistic salary ranges for 2025")
	parts = append(parts, "- Focus on current market trends and emerging opportunities")
	parts = append(parts, "- Consider the student's education level and experience")

	parts = append(parts, "\nReturn only the JSON array, no explanations or markdown.")

	return strings.Join(parts, "\n")
}
