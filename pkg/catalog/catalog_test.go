package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(careers []Career) []string {
	out := make([]string, len(careers))
	for i, c := range careers {
		out[i] = c.Title
	}
	return out
}

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Careers, 6)
	assert.Len(t, c.Groups, 3)
	assert.Equal(t, []string{"data-analyst", "digital-marketing-specialist"}, c.Generic)
}

func TestSelect(t *testing.T) {
	c := Default()

	tests := []struct {
		name   string
		skills []string
		want   []string
	}{
		{
			name:   "software keyword",
			skills: []string{"Python"},
			want:   []string{"Full Stack Developer", "Software Engineer"},
		},
		{
			name:   "substring match",
			skills: []string{"Node.js backend"},
			want:   []string{"Full Stack Developer", "Software Engineer"},
		},
		{
			name:   "design and business",
			skills: []string{"Figma", "Team Leadership"},
			want:   []string{"UX/UI Designer", "Product Manager"},
		},
		{
			name:   "all groups",
			skills: []string{"SALES", "Creative writing", "coding"},
			want:   []string{"Full Stack Developer", "Software Engineer", "UX/UI Designer", "Product Manager"},
		},
		{
			name:   "no keyword",
			skills: []string{"Cooking", "Gardening"},
			want:   []string{"Data Analyst", "Digital Marketing Specialist"},
		},
		{
			name:   "no skills",
			skills: nil,
			want:   []string{"Data Analyst", "Digital Marketing Specialist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Select(tt.skills)
			assert.Equal(t, tt.want, titles(got))
			for i := 1; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i-1].Match, got[i].Match)
			}
		})
	}
}

func TestSelect_Deterministic(t *testing.T) {
	c := Default()
	skills := []string{"React", "UX research", "Marketing"}
	assert.Equal(t, c.Select(skills), c.Select(skills))
}

func TestSelect_DeduplicatesSharedCareers(t *testing.T) {
	c := Default()
	c.Groups = append(c.Groups, Group{ID: "web", Keywords: []string{"html"}, Careers: []string{"full-stack-developer"}})

	got := c.Select([]string{"HTML", "JavaScript"})
	assert.Equal(t, []string{"Full Stack Developer", "Software Engineer"}, titles(got))
}

func TestLoad(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", c.Version)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
		errMsg string
	}{
		{
			name:   "match out of range",
			mutate: func(c *Catalog) { c.Careers[0].Match = 99 },
			errMsg: "match",
		},
		{
			name: "too many skills",
			mutate: func(c *Catalog) {
				c.Careers[0].KeySkills = []string{"a", "b", "c", "d", "e", "f", "g"}
			},
			errMsg: "keySkills",
		},
		{
			name: "unknown career in group",
			mutate: func(c *Catalog) {
				c.Groups[0].Careers = append(c.Groups[0].Careers, "astronaut")
			},
			errMsg: "astronaut",
		},
		{
			name:   "empty generic list",
			mutate: func(c *Catalog) { c.Generic = []string{} },
			errMsg: "generic",
		},
		{
			name: "duplicate id",
			mutate: func(c *Catalog) {
				c.Careers[1].ID = c.Careers[0].ID
			},
			errMsg: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			data, err := json.Marshal(c)
			require.NoError(t, err)

			_, err = Parse(data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"version":`))
	assert.Error(t, err)
}
