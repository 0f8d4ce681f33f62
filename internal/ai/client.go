package ai

import (
	"context"
	"errors"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Generator produces text from a prompt. Handlers depend on this contract
// so tests can substitute a canned generator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GoogleAI is the Generator backed by the Google AI API through langchaingo.
type GoogleAI struct {
	llm     llms.Model
	timeout time.Duration
}

// NewGoogleAI builds the client. timeout bounds each Generate call.
func NewGoogleAI(ctx context.Context, apiKey, model string, timeout time.Duration) (*GoogleAI, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &GoogleAI{llm: llm, timeout: timeout}, nil
}

func (g *GoogleAI) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
}

// Disabled is the Generator wired in when no API key is configured. Every
// call fails with a fixed error so AI endpoints degrade instead of
// crashing.
type Disabled struct{}

func (Disabled) Generate(context.Context, string) (string, error) {
	return "", errors.New("generative AI is not configured")
}
