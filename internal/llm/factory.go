package llm

import (
	"fmt"
	"time"
)

// NewProviderFromConfig picks a Provider from config fields. The zero
// provider name means OpenAI, matching the original deployment.
func NewProviderFromConfig(provider, endpoint, model string, maxTokens int64, temperature float64, timeout time.Duration) (Provider, error) {
	switch provider {
	case "openai", "":
		return NewOpenAI(model, maxTokens, temperature)
	case "ollama":
		return NewOllama(endpoint, model, timeout), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}
}
