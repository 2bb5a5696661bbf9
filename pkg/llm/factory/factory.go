package factory

import (
	"fmt"

	"evalassist-be/pkg/llm"
	"evalassist-be/pkg/llm/ollama"
	"evalassist-be/pkg/llm/openai"
)

func NewProvider(providerType, modelName, openAIKey, ollamaBaseURL string) (llm.Provider, error) {
	switch providerType {
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		return openai.NewOpenAIProvider(openAIKey, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
