package domain

import "context"

// GenerateOptions carries per-request generation knobs.
type GenerateOptions struct {
	// Temperature in [0,1]. Lower values suit factual and voice
	// responses, higher ones exploratory answers.
	Temperature float64
}

// LLMClient defines the capability to send prompts to a generation backend
// and receive textual responses.
type LLMClient interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (*LLMResponse, error)
	Version() string
}

// LLMResponse carries the model output and whether the generation finished.
type LLMResponse struct {
	Text string
	Done bool
}
