// internal/services/career-advice/fallback.go
package careeradvice

import (
	"career-advisor/internal/models"
	"career-advisor/pkg/catalog"
)

// FallbackGenerator produces deterministic recommendations from the career
// catalog by matching profile skills against keyword groups.
type FallbackGenerator struct {
	catalog *catalog.Catalog
}

func NewFallbackGenerator(c *catalog.Catalog) *FallbackGenerator {
	if c == nil {
		c = catalog.Default()
	}
	return &FallbackGenerator{catalog: c}
}

func (f *FallbackGenerator) Generate(p *models.StudentProfile) []models.CareerRecommendation {
	var skills []string
	if p != nil {
		skills = p.Skills
	}

	careers := f.catalog.Select(skills)
	recs := make([]models.CareerRecommendation, 0, len(careers))
	for _, c := range careers {
		recs = append(recs, toRecommendation(c))
	}
	return recs
}

func toRecommendation(c catalog.Career) models.CareerRecommendation {
	steps := make([]models.RoadmapStep, len(c.Roadmap))
	for i, s := range c.Roadmap {
		steps[i] = models.RoadmapStep{
			Phase:    s.Phase,
			Duration: s.Duration,
			Tasks:    s.Tasks,
			Skills:   s.Skills,
		}
	}

	rec := models.CareerRecommendation{
		Title:       c.Title,
		Match:       c.Match,
		Description: c.Description,
		WhySuitable: c.WhySuitable,
		KeySkills:   c.KeySkills,
		Roadmap:     steps,
		MarketInsights: models.MarketInsights{
			Demand:      c.MarketInsights.Demand,
			SalaryRange: c.MarketInsights.SalaryRange,
			Growth:      c.MarketInsights.Growth,
		},
	}
	// Detach from the catalog's slices.
	return rec.Clone()
}
