package configs

import (
	"aiwallet/aiwallet/utils/logging"
	_ "embed"
	"strings"

	"github.com/magiconair/properties"
	"go.uber.org/zap"
)

// capabilitySeparator splits the capabilities list. Items may contain commas.
const capabilitySeparator = "|"

//go:embed assistant.properties
var defaultProperties string

// AssistantConfig holds the wallet assistant's prompt settings.
type AssistantConfig struct {
	AgentName     string
	Model         string
	SystemPrompt  string
	FallbackReply string
	Capabilities  []string
}

// LoadConfig reads the assistant settings from path, falling back to the
// embedded defaults for the whole file or for any missing key.
func LoadConfig(path string) *AssistantConfig {
	props := properties.MustLoadString(defaultProperties)
	if path != "" {
		loaded, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			logging.AppLogger.Info("assistant config not found, using defaults",
				zap.String("path", path), zap.Error(err))
		} else {
			props.Merge(loaded)
		}
	}

	parseSlice := func(val string) []string {
		parts := []string{}
		for _, item := range strings.Split(val, capabilitySeparator) {
			if item = strings.TrimSpace(item); item != "" {
				parts = append(parts, item)
			}
		}
		return parts
	}

	cfg := &AssistantConfig{
		AgentName:     props.GetString("agent_name", "AiWallet"),
		Model:         props.GetString("model", "gpt-4o"),
		FallbackReply: props.GetString("fallback_reply", "I couldn't process that."),
		Capabilities:  parseSlice(props.GetString("capabilities", "")),
	}
	cfg.SystemPrompt = cfg.render(props.GetString("system_prompt", ""))
	return cfg
}

// WithModel returns a copy of the config using model when it is set.
func (c *AssistantConfig) WithModel(model string) *AssistantConfig {
	if model == "" {
		return c
	}
	out := *c
	out.Model = model
	return &out
}

func (c *AssistantConfig) render(prompt string) string {
	var caps strings.Builder
	for _, item := range c.Capabilities {
		caps.WriteString("- ")
		caps.WriteString(item)
		caps.WriteString("\n")
	}
	r := strings.NewReplacer(
		"{agent_name}", c.AgentName,
		"{capabilities}", strings.TrimRight(caps.String(), "\n"),
	)
	return strings.TrimSpace(r.Replace(prompt))
}
