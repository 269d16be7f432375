package ai

import (
	"context"
)

// Provider defines the contract with the text-generation collaborator: one
// prompt string in, one prose string out. The caller never inspects or
// validates the prose; a failed call surfaces as a *GenerationError.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
