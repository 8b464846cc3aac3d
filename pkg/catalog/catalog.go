// pkg/catalog/catalog.go
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"career-advisor/internal/common/validation"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

var schema = validation.MustCompile(documentSchema)

// Default returns the built-in catalog. It panics if the embedded document
// is invalid, which tests guard against.
func Default() *Catalog {
	c, err := Parse(defaultCatalogJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	result, err := schema.ValidateBytes(data)
	if err != nil {
		return nil, err
	}
	if result.HasErrors() {
		return nil, fmt.Errorf("catalog schema: %s", result.Error())
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the fallback generator relies on.
func (c *Catalog) Validate() error {
	var problems []string

	ids := make(map[string]bool, len(c.Careers))
	for i, career := range c.Careers {
		if career.ID == "" {
			problems = append(problems, fmt.Sprintf("careers[%d]: empty id", i))
			continue
		}
		if ids[career.ID] {
			problems = append(problems, fmt.Sprintf("careers[%d]: duplicate id %q", i, career.ID))
		}
		ids[career.ID] = true

		if strings.TrimSpace(career.Title) == "" {
			problems = append(problems, fmt.Sprintf("%s: empty title", career.ID))
		}
		if career.Match < 70 || career.Match > 95 {
			problems = append(problems, fmt.Sprintf("%s: match %d outside [70,95]", career.ID, career.Match))
		}
		if len(career.KeySkills) > 6 {
			problems = append(problems, fmt.Sprintf("%s: %d key skills, at most 6", career.ID, len(career.KeySkills)))
		}
		if len(career.Roadmap) == 0 || len(career.Roadmap) > 4 {
			problems = append(problems, fmt.Sprintf("%s: %d roadmap phases, want 1-4", career.ID, len(career.Roadmap)))
		}
	}

	for _, g := range c.Groups {
		if len(g.Keywords) == 0 {
			problems = append(problems, fmt.Sprintf("group %s: no keywords", g.ID))
		}
		for _, id := range g.Careers {
			if !ids[id] {
				problems = append(problems, fmt.Sprintf("group %s: unknown career %q", g.ID, id))
			}
		}
	}

	if len(c.Generic) == 0 {
		problems = append(problems, "generic: empty")
	}
	for _, id := range c.Generic {
		if !ids[id] {
			problems = append(problems, fmt.Sprintf("generic: unknown career %q", id))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid catalog: %s", strings.Join(problems, "; "))
	}
	return nil
}

// CareerByID looks up a career.
func (c *Catalog) CareerByID(id string) (Career, bool) {
	for _, career := range c.Careers {
		if career.ID == id {
			return career, true
		}
	}
	return Career{}, false
}

// Matches reports whether any skill contains one of the group's keywords,
// ignoring case.
func (g Group) Matches(skills []string) bool {
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, kw := range g.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return true
			}
		}
	}
	return false
}

// Select returns the careers suggested by skills: every matching group in
// catalog order, or the generic list when nothing matched. The result is
// sorted by match, highest first, keeping catalog order among ties.
func (c *Catalog) Select(skills []string) []Career {
	var ids []string
	for _, g := range c.Groups {
		if g.Matches(skills) {
			ids = append(ids, g.Careers...)
		}
	}
	if len(ids) == 0 {
		ids = c.Generic
	}

	seen := make(map[string]bool, len(ids))
	selected := make([]Career, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if career, ok := c.CareerByID(id); ok {
			selected = append(selected, career)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Match > selected[j].Match
	})
	return selected
}
