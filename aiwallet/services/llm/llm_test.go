package llm

import (
	"aiwallet/aiwallet/config"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGPTClientRun(t *testing.T) {
	var got gptChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"ETH is up"}}]}`))
	}))
	defer srv.Close()

	a := NewAssistant(NewGPTClient(srv.URL, "sk-test", srv.Client()), "gpt-4o")
	reply, err := a.GenerateReply(context.Background(), "be brief", "how is eth?")
	if err != nil {
		t.Fatalf("GenerateReply: %v", err)
	}
	if reply != "ETH is up" {
		t.Errorf("expected reply %q, got %q", "ETH is up", reply)
	}
	if got.Model != "gpt-4o" || len(got.Messages) != 2 {
		t.Fatalf("unexpected request %+v", got)
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != "be brief" {
		t.Errorf("expected system prompt first, got %+v", got.Messages[0])
	}
	if got.Messages[1].Role != "user" || got.Messages[1].Content != "how is eth?" {
		t.Errorf("expected user message second, got %+v", got.Messages[1])
	}
}

func TestGPTClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewGPTClient(srv.URL, "bad", srv.Client()).Run(context.Background(), ChatRequest{Model: "gpt-4o"})
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}
}

func TestOllamaClientRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req ChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Stream {
			t.Error("expected a non-streaming request")
		}
		json.NewEncoder(w).Encode(ChatResponse{Message: Message{Role: "assistant", Content: "hello"}, Done: true})
	}))
	defer srv.Close()

	reply, err := NewOllamaClient(srv.URL, srv.Client()).Run(context.Background(), ChatRequest{Model: "llama3:8b", Stream: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if reply != "hello" {
		t.Errorf("expected hello, got %q", reply)
	}
}

func TestNewRunner(t *testing.T) {
	cases := []struct {
		provider string
		key      string
		wantErr  bool
	}{
		{"openai", "sk", false},
		{"openai", "", true},
		{"groq", "gsk", false},
		{"ollama", "", false},
		{"bard", "x", true},
	}
	for _, tc := range cases {
		_, err := NewRunner(config.Config{LLMProvider: tc.provider, LLMAPIKey: tc.key, LLMTimeout: time.Second})
		if (err != nil) != tc.wantErr {
			t.Errorf("provider %q key %q: err=%v, wantErr=%v", tc.provider, tc.key, err, tc.wantErr)
		}
	}
}
