package adk

import (
	_ "embed"
)

//go:embed prompts/explain_prompt.md
var explainPrompt string

// GetExplainPrompt returns the framing prompt for report explanation
func GetExplainPrompt() string {
	return explainPrompt
}
