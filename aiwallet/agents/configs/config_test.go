package configs

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")

	wantCaps := []string{
		"Checking prices",
		"Analyzing portfolio (mock data)",
		"Preparing transactions (send, swap, stake)",
	}
	if !reflect.DeepEqual(cfg.Capabilities, wantCaps) {
		t.Fatalf("expected capabilities %q, got %q", wantCaps, cfg.Capabilities)
	}

	wantList := "You can help users with:\n" +
		"- Checking prices\n" +
		"- Analyzing portfolio (mock data)\n" +
		"- Preparing transactions (send, swap, stake)\n"
	if !strings.Contains(cfg.SystemPrompt, wantList) {
		t.Errorf("expected capability list %q in prompt:\n%s", wantList, cfg.SystemPrompt)
	}
	if !strings.HasPrefix(cfg.SystemPrompt, "You are AiWallet, a helpful crypto assistant.") {
		t.Errorf("agent name not rendered:\n%s", cfg.SystemPrompt)
	}
	if !strings.Contains(cfg.SystemPrompt, `"action": "send|swap|stake"`) {
		t.Errorf("preview format missing:\n%s", cfg.SystemPrompt)
	}
	if cfg.FallbackReply != "I couldn't process that." || cfg.Model != "gpt-4o" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assistant.properties")
	body := "agent_name = Ledgerly\ncapabilities = Reading balances, today | | Staking NEAR\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(path)
	if want := []string{"Reading balances, today", "Staking NEAR"}; !reflect.DeepEqual(cfg.Capabilities, want) {
		t.Errorf("expected capabilities %q, got %q", want, cfg.Capabilities)
	}
	if !strings.HasPrefix(cfg.SystemPrompt, "You are Ledgerly,") {
		t.Errorf("override not applied:\n%s", cfg.SystemPrompt)
	}
	if !strings.Contains(cfg.SystemPrompt, "- Reading balances, today\n- Staking NEAR\n") {
		t.Errorf("capabilities not rendered one per line:\n%s", cfg.SystemPrompt)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("missing keys should keep defaults, got model %q", cfg.Model)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "absent.properties"))
	if cfg.AgentName != "AiWallet" || len(cfg.Capabilities) != 3 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestWithModel(t *testing.T) {
	base := LoadConfig("")
	if got := base.WithModel(""); got != base {
		t.Error("empty model should return the same config")
	}
	if got := base.WithModel("gpt-4o-mini"); got.Model != "gpt-4o-mini" || base.Model != "gpt-4o" {
		t.Errorf("WithModel should copy, got %q base %q", got.Model, base.Model)
	}
}
