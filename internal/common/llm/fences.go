package llm

import (
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("```(?:json|JSON)?")

// StripCodeFences removes every Markdown code fence marker from s and trims
// the result. Models often wrap JSON in ```json ... ``` despite instructions.
func StripCodeFences(s string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(s, ""))
}
