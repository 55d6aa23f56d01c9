package llm

import (
	httputils "aiwallet/aiwallet/utils/http"
	"aiwallet/aiwallet/utils/logging"
	"context"
	"fmt"
	"net/http"
	"strings"
)

type GPTClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewGPTClient(baseURL, apiKey string, client *http.Client) *GPTClient {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &GPTClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
	}
}

type gptChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type gptResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Run executes a single GPT completion request (non-streaming)
func (c *GPTClient) Run(ctx context.Context, req ChatRequest) (string, error) {
	defer logging.LogDuration(ctx, "gpt_service_run")()

	gptReq := gptChatRequest{
		Model:    req.Model,
		Messages: req.Messages,
	}

	var parsed gptResponse
	if err := httputils.PostJSONWithAuth(ctx, c.http, c.baseURL+"/chat/completions", c.apiKey, gptReq, &parsed); err != nil {
		return "", fmt.Errorf("GPT request failed: %w", err)
	}
	if len(parsed.Choices) > 0 {
		return parsed.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("no content in GPT response")
}
