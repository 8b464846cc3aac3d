// internal/models/recommendation.go
package models

const (
	MinMatchScore = 70
	MaxMatchScore = 95

	MaxKeySkills    = 6
	MaxRoadmapSteps = 4
)

// Recommendation sources reported to callers and metrics.
const (
	SourceAI       = "ai"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

type CareerRecommendation struct {
	Title          string         `json:"title"`
	Match          int            `json:"match"`
	Description    string         `json:"description"`
	WhySuitable    string         `json:"whySuitable"`
	KeySkills      []string       `json:"keySkills"`
	Roadmap        []RoadmapStep  `json:"roadmap"`
	MarketInsights MarketInsights `json:"marketInsights"`
}

type RoadmapStep struct {
	Phase    string   `json:"phase"`
	Duration string   `json:"duration"`
	Tasks    []string `json:"tasks"`
	Skills   []string `json:"skills"`
}

type MarketInsights struct {
	Demand      string `json:"demand"`
	SalaryRange string `json:"salaryRange"`
	Growth      string `json:"growth"`
}

// Clone returns a deep copy so callers can't mutate shared catalog entries.
func (r CareerRecommendation) Clone() CareerRecommendation {
	out := r
	out.KeySkills = append([]string(nil), r.KeySkills...)
	out.Roadmap = make([]RoadmapStep, len(r.Roadmap))
	for i, step := range r.Roadmap {
		out.Roadmap[i] = RoadmapStep{
			Phase:    step.Phase,
			Duration: step.Duration,
			Tasks:    append([]string(nil), step.Tasks...),
			Skills:   append([]string(nil), step.Skills...),
		}
	}
	return out
}

// ClampMatch forces a score into the advertised [70,95] band.
func ClampMatch(score int) int {
	if score < MinMatchScore {
		return MinMatchScore
	}
	if score > MaxMatchScore {
		return MaxMatchScore
	}
	return score
}
