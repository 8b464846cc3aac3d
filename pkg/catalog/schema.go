// pkg/catalog/schema.go
package catalog

// Catalog is the offline career catalog used when the model cannot answer.
type Catalog struct {
	Version     string   `json:"version"`
	LastUpdated string   `json:"lastUpdated"`
	Groups      []Group  `json:"groups"`
	Generic     []string `json:"generic"`
	Careers     []Career `json:"careers"`
}

// Group maps skill keywords to the careers they suggest.
type Group struct {
	ID       string   `json:"id"`
	Keywords []string `json:"keywords"`
	Careers  []string `json:"careers"`
}

type Career struct {
	ID             string         `json:"id"`
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

// documentSchema checks the structure of a catalog file. Cross references
// are checked separately in Validate.
const documentSchema = `{
  "type": "object",
  "required": ["version", "groups", "generic", "careers"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "lastUpdated": {"type": "string"},
    "groups": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "keywords", "careers"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "keywords": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}},
          "careers": {"type": "array", "minItems": 1, "items": {"type": "string"}}
        }
      }
    },
    "generic": {"type": "array", "minItems": 1, "items": {"type": "string"}},
    "careers": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "title", "match", "description", "whySuitable", "keySkills", "roadmap", "marketInsights"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "match": {"type": "integer", "minimum": 70, "maximum": 95},
          "description": {"type": "string", "minLength": 1},
          "whySuitable": {"type": "string", "minLength": 1},
          "keySkills": {"type": "array", "maxItems": 6, "items": {"type": "string"}},
          "roadmap": {
            "type": "array",
            "minItems": 1,
            "maxItems": 4,
            "items": {
              "type": "object",
              "required": ["phase", "duration", "tasks", "skills"],
              "properties": {
                "phase": {"type": "string", "minLength": 1},
                "duration": {"type": "string", "minLength": 1},
                "tasks": {"type": "array", "items": {"type": "string"}},
                "skills": {"type": "array", "items": {"type": "string"}}
              }
            }
          },
          "marketInsights": {
            "type": "object",
            "required": ["demand", "salaryRange", "growth"],
            "properties": {
              "demand": {"type": "string"},
              "salaryRange": {"type": "string"},
              "growth": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`
