package llm

import (
	httputils "aiwallet/aiwallet/utils/http"
	"aiwallet/aiwallet/utils/logging"
	"context"
	"fmt"
	"net/http"
	"strings"
)

type GroqClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewGroqClient returns a client pointing to the Groq Chat endpoint.
func NewGroqClient(baseURL, apiKey string, client *http.Client) *GroqClient {
	// Groq's OpenAI-compatible base path
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	return &GroqClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    client,
	}
}

// Run (non-streaming) chat completion
func (c *GroqClient) Run(ctx context.Context, req ChatRequest) (string, error) {
	defer logging.LogDuration(ctx, "groq_service_run")()

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)
	req.Stream = false

	var resp struct {
		ID      string `json:"id"`
		Model   string `json:"model"`
		Choices []struct {
			Message Message `json:"message"`
		} `json:"choices"`
	}
	if err := httputils.PostJSONWithAuth(ctx, c.http, url, c.apiKey, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) > 0 {
		return resp.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("no choices returned")
}
