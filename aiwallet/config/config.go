package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr   string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	JWTSecret  string
	LogDir     string

	RequestTimeout   time.Duration
	MarketPricesFile string

	LLMProvider   string
	LLMBaseURL    string
	LLMAPIKey     string
	LLMModel      string
	LLMTimeout    time.Duration
	AssistantFile string

	RedisAddr       string
	RedisPassword   string
	ChatRateLimit   int
	ChatRateWindow  time.Duration
	ChatRateBlock   time.Duration
	CORSAllowOrigin []string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", "openai"))
	return Config{
		HTTPAddr:   getEnv("HTTP_ADDR", ":8000"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "aiwallet"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		LogDir:     getEnv("LOG_DIR", "./logs"),

		RequestTimeout:   getDuration("REQUEST_TIMEOUT", 90*time.Second),
		MarketPricesFile: getEnv("MARKET_PRICES_FILE", ""),

		LLMProvider:   provider,
		LLMBaseURL:    getEnv("LLM_BASE_URL", ""),
		LLMAPIKey:     getEnv("LLM_API_KEY", llmKeyFor(provider)),
		LLMModel:      getEnv("LLM_MODEL", ""),
		LLMTimeout:    getDuration("LLM_TIMEOUT", 60*time.Second),
		AssistantFile: getEnv("ASSISTANT_CONFIG", "aiwallet/agents/configs/assistant.properties"),

		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		ChatRateLimit:   getInt("CHAT_RATE_LIMIT", 20),
		ChatRateWindow:  getDuration("CHAT_RATE_WINDOW", time.Minute),
		ChatRateBlock:   getDuration("CHAT_RATE_BLOCK", 5*time.Minute),
		CORSAllowOrigin: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// llmKeyFor falls back to the provider's conventional key variable.
func llmKeyFor(provider string) string {
	switch provider {
	case "groq":
		return os.Getenv("GROQ_API_KEY")
	case "ollama":
		return ""
	default:
		return os.Getenv("OPENAI_API_KEY")
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
