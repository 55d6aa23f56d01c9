package llm

import (
	"aiwallet/aiwallet/config"
	httputils "aiwallet/aiwallet/utils/http"
	"aiwallet/aiwallet/utils/logging"
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Runner executes one non-streaming chat completion.
type Runner interface {
	Run(ctx context.Context, req ChatRequest) (string, error)
}

type ChatRequest struct {
	Model    string      `json:"model"`
	Messages []Message   `json:"messages"`
	Stream   bool        `json:"stream"`
	Options  interface{} `json:"options,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Message Message `json:"message"`
	Done    bool    `json:"done"`
}

type OllamaClient struct {
	baseURL string
	http    *http.Client
}

func NewOllamaClient(baseURL string, client *http.Client) *OllamaClient {
	if baseURL == "" {
		baseURL = "http://localhost:11434/api"
	}
	return &OllamaClient{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

func (c *OllamaClient) Run(ctx context.Context, req ChatRequest) (string, error) {
	defer logging.LogDuration(ctx, "llm_service_run")()
	req.Stream = false
	var resp ChatResponse
	if err := httputils.PostJSON(ctx, c.http, c.baseURL+"/chat", req, &resp); err != nil {
		return "", err
	}
	return resp.Message.Content, nil
}

// NewRunner picks the backend named by cfg.LLMProvider.
func NewRunner(cfg config.Config) (Runner, error) {
	client := &http.Client{Timeout: cfg.LLMTimeout}
	switch cfg.LLMProvider {
	case "openai", "":
		if cfg.LLMAPIKey == "" {
			return nil, fmt.Errorf("missing OPENAI_API_KEY")
		}
		return NewGPTClient(cfg.LLMBaseURL, cfg.LLMAPIKey, client), nil
	case "groq":
		if cfg.LLMAPIKey == "" {
			return nil, fmt.Errorf("missing GROQ_API_KEY")
		}
		return NewGroqClient(cfg.LLMBaseURL, cfg.LLMAPIKey, client), nil
	case "ollama":
		return NewOllamaClient(cfg.LLMBaseURL, client), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
