package adk

import (
	"context"
)

// Message represents a chat message
type Message struct {
	Role    string // "user", "model", "system"
	Content string
}

// LLMProvider defines the interface for different AI models
type LLMProvider interface {
	GenerateResponse(ctx context.Context, history []Message) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

// Summarize asks the provider for an executive summary of a rendered
// report, using the embedded explain prompt as the framing.
func Summarize(ctx context.Context, p LLMProvider, reportJSON string) (string, error) {
	history := []Message{
		{Role: "system", Content: GetExplainPrompt()},
		{Role: "user", Content: "Here is the audit report as JSON:\n\n" + reportJSON},
	}
	return p.GenerateResponse(ctx, history)
}
