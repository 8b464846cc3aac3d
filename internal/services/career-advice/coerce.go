// internal/services/career-advice/coerce.go
package careeradvice

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"career-advisor/internal/common/llm"
	"career-advisor/internal/models"
)

const (
	defaultTitle       = "Career Opportunity"
	defaultMatch       = 75
	defaultDescription = "Exciting career opportunity"
	defaultWhySuitable = "Great fit based on your profile"
	defaultDemand      = "High"
	defaultSalaryRange = "$50,000 - $80,000"
	defaultGrowth      = "15% (Faster than average)"
	defaultDuration    = "Flexible"
)

var defaultKeySkills = []string{"Communication", "Problem Solving"}

func defaultRoadmap() []models.RoadmapStep {
	return []models.RoadmapStep{{
		Phase:    "Getting Started",
		Duration: "2-3 months",
		Tasks:    []string{"Learn fundamentals", "Build basic projects"},
		Skills:   []string{"Foundation Skills"},
	}}
}

// parseRecommendations turns raw model text into at most limit validated
// recommendations. The model's order is kept.
func parseRecommendations(text string, limit int) ([]models.CareerRecommendation, error) {
	cleaned := llm.StripCodeFences(text)

	var raw interface{}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", llm.ErrModelResponse, err)
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON array, got %T", llm.ErrModelResponse, raw)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty recommendation list", llm.ErrModelResponse)
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	recs := make([]models.CareerRecommendation, 0, len(items))
	for _, item := range items {
		recs = append(recs, coerceRecommendation(item))
	}
	return recs, nil
}

func coerceRecommendation(item interface{}) models.CareerRecommendation {
	obj, _ := item.(map[string]interface{})

	insights, _ := obj["marketInsights"].(map[string]interface{})

	return models.CareerRecommendation{
		Title:       stringOr(obj["title"], defaultTitle),
		Match:       coerceMatch(obj["match"]),
		Description: stringOr(obj["description"], defaultDescription),
		WhySuitable: stringOr(obj["whySuitable"], defaultWhySuitable),
		KeySkills:   coerceKeySkills(obj["keySkills"]),
		Roadmap:     coerceRoadmap(obj["roadmap"]),
		MarketInsights: models.MarketInsights{
			Demand:      stringOr(insights["demand"], defaultDemand),
			SalaryRange: stringOr(insights["salaryRange"], defaultSalaryRange),
			Growth:      stringOr(insights["growth"], defaultGrowth),
		},
	}
}

func stringOr(v interface{}, fallback string) string {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func coerceMatch(v interface{}) int {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(n), "%")), 64)
		if err != nil {
			return defaultMatch
		}
		f = parsed
	default:
		return defaultMatch
	}
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return defaultMatch
	}
	f = math.Max(models.MinMatchScore, math.Min(models.MaxMatchScore, f))
	return int(math.Round(f))
}

// stringList keeps the string elements of v. ok is false when v is not an array.
func stringList(v interface{}) (list []string, ok bool) {
	arr, ok := v.([]interface{})
	if !ok {
		return []string{}, false
	}
	list = make([]string, 0, len(arr))
	for _, el := range arr {
		if s, isStr := el.(string); isStr && strings.TrimSpace(s) != "" {
			list = append(list, s)
		}
	}
	return list, true
}

func coerceKeySkills(v interface{}) []string {
	skills, _ := stringList(v)
	if len(skills) == 0 {
		return append([]string(nil), defaultKeySkills...)
	}
	if len(skills) > models.MaxKeySkills {
		skills = skills[:models.MaxKeySkills]
	}
	return skills
}

func coerceRoadmap(v interface{}) []models.RoadmapStep {
	arr, ok := v.([]interface{})
	if !ok {
		return defaultRoadmap()
	}

	steps := make([]models.RoadmapStep, 0, models.MaxRoadmapSteps)
	for _, el := range arr {
		if len(steps) == models.MaxRoadmapSteps {
			break
		}
		obj, isObj := el.(map[string]interface{})
		if !isObj {
			continue
		}
		tasks, _ := stringList(obj["tasks"])
		skills, _ := stringList(obj["skills"])
		steps = append(steps, models.RoadmapStep{
			Phase:    stringOr(obj["phase"], fmt.Sprintf("Phase %d", len(steps)+1)),
			Duration: stringOr(obj["duration"], defaultDuration),
			Tasks:    tasks,
			Skills:   skills,
		})
	}

	if len(steps) == 0 {
		return defaultRoadmap()
	}
	return steps
}

// normalizeRecommendation re-applies the score band and list limits to a
// recommendation that was already typed, such as one read back from the cache.
func normalizeRecommendation(r models.CareerRecommendation) models.CareerRecommendation {
	r.Match = models.ClampMatch(r.Match)
	if strings.TrimSpace(r.Title) == "" {
		r.Title = defaultTitle
	}
	if len(r.KeySkills) == 0 {
		r.KeySkills = append([]string(nil), defaultKeySkills...)
	}
	if len(r.KeySkills) > models.MaxKeySkills {
		r.KeySkills = r.KeySkills[:models.MaxKeySkills]
	}
	if len(r.Roadmap) == 0 {
		r.Roadmap = defaultRoadmap()
	}
	if len(r.Roadmap) > models.MaxRoadmapSteps {
		r.Roadmap = r.Roadmap[:models.MaxRoadmapSteps]
	}
	return r
}
