// internal/models/profile.go
package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// StudentProfile is the self-assessment submitted through the five-step form.
type StudentProfile struct {
	Education   string   `json:"education"`
	Skills      []string `json:"skills"`
	Interests   []string `json:"interests"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	CareerGoals string   `json:"careerGoals"`
	Experience  string   `json:"experience"`
}

// HasRequiredFields reports whether education, skills, interests and career
// goals are present. Empty lists count as present, absent or null ones don't.
func (p *StudentProfile) HasRequiredFields() bool {
	if p == nil {
		return false
	}
	return p.Education != "" && p.Skills != nil && p.Interests != nil && p.CareerGoals != ""
}

// Fingerprint returns a stable hex digest of the profile content.
func (p *StudentProfile) Fingerprint() string {
	data, _ := json.Marshal(p)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
