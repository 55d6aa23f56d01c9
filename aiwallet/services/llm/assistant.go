package llm

import (
	"context"
)

// Assistant narrows a Runner to the single call the chat controller needs:
// a system prompt and one user message in, free text out.
type Assistant struct {
	runner Runner
	model  string
}

func NewAssistant(runner Runner, model string) *Assistant {
	return &Assistant{runner: runner, model: model}
}

func (a *Assistant) GenerateReply(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return a.runner.Run(ctx, ChatRequest{
		Model: a.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	})
}
