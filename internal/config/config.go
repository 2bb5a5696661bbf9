package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	ValTool ValToolConfig
	Ai      AIConfig
	Chat    ChatConfig
	Session SessionConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	FeedbackTopic      string
}

type ValToolConfig struct {
	BaseURL string
}

type AIConfig struct {
	Provider      string // "openai" or "ollama"
	Model         string // e.g. "gpt-3.5-turbo", "llama3"
	OpenAIKey     string
	OllamaBaseURL string
}

type ChatConfig struct {
	FuzzyThreshold  float64 // minimum similarity ratio for a partial Q&A match
	MaxModelTokens  int     // context window assumed for the model
	ReservedTokens  int     // margin kept free for the reply and current input
	MaxHistoryTurns int     // hard cap on turns considered before token trimming
}

type SessionConfig struct {
	JWTSecret  string
	TTLMinutes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/evalassist.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8501"),
			FeedbackTopic:      getEnv("FEEDBACK_TOPIC_NAME", "CHAT_FEEDBACK"),
		},
		ValTool: ValToolConfig{
			BaseURL: getEnv("VALTOOL_API_URL", ""),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "openai"),
			Model:         getEnv("LLM_MODEL", "gpt-3.5-turbo"),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Chat: ChatConfig{
			FuzzyThreshold:  getEnvAsFloat("QA_FUZZY_THRESHOLD", 0.6),
			MaxModelTokens:  getEnvAsInt("MAX_MODEL_TOKENS", 4096),
			ReservedTokens:  getEnvAsInt("RESERVED_TOKENS", 500),
			MaxHistoryTurns: getEnvAsInt("MAX_HISTORY_TURNS", 10),
		},
		Session: SessionConfig{
			JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
