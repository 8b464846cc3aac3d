// internal/services/chat-advisor/fallback.go
package chatadvisor

import "strings"

type cannedReply struct {
	keywords []string
	reply    string
}

// Checked in order; the first group with a keyword in the message wins.
var cannedReplies = []cannedReply{
	{
		keywords: []string{"salary", "pay"},
		reply:    "Based on current market trends, entry-level positions typically start at $50,000-70,000, with senior roles reaching $120,000+. Your specific salary will depend on location, company size, and your skill level.",
	},
	{
		keywords: []string{"skill", "learn"},
		reply:    "I'd recommend focusing on in-demand skills like cloud computing, data analysis, and AI/ML. These technologies are growing rapidly and offer great career opportunities.",
	},
	{
		keywords: []string{"time", "long"},
		reply:    "With consistent effort, you can expect to see significant progress in 6-12 months. Entry-level positions are often achievable within 12-18 months of focused learning and practice.",
	},
	{
		keywords: []string{"company", "where"},
		reply:    "Consider targeting a mix of established companies and growing startups. Mid-size companies often offer the best learning opportunities and career growth potential.",
	},
}

const genericReply = "That's a great question! Based on your profile, I'd recommend focusing on building a strong portfolio, networking with professionals in your target field, and continuously updating your skills. Would you like specific advice on any of these areas?"

// FallbackReply picks a canned answer by keyword. Matching is a
// case-insensitive substring test, so "paying" matches "pay".
func FallbackReply(message string) string {
	input := strings.ToLower(message)
	for _, c := range cannedReplies {
		for _, kw := range c.keywords {
			if strings.Contains(input, kw) {
				return c.reply
			}
		}
	}
	return genericReply
}
