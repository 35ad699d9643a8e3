package env

import (
	"arcade_backend/internal/config"
	"fmt"
	"os"
	"time"
)

const (
	llmEndpointEnvName = "LLM_ENDPOINT"
	llmAPIKeyEnvName   = "LLM_API_KEY"
	llmModelEnvName    = "LLM_MODEL"
	llmTimeoutEnvName  = "LLM_TIMEOUT"

	defaultLLMTimeout = 20 * time.Second
)

type llmConfig struct {
	endpoint string
	apiKey   string
	model    string
	timeout  time.Duration
}

// NewLLMConfig пустой LLM_ENDPOINT не ошибка: модель просто не используется
func NewLLMConfig() (config.LLMConfig, error) {
	timeout, err := durationOr(llmTimeoutEnvName, defaultLLMTimeout)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("llm timeout must be positive")
	}

	return &llmConfig{
		endpoint: os.Getenv(llmEndpointEnvName),
		apiKey:   os.Getenv(llmAPIKeyEnvName),
		model:    os.Getenv(llmModelEnvName),
		timeout:  timeout,
	}, nil
}

func (cfg *llmConfig) Endpoint() string {
	return cfg.endpoint
}

func (cfg *llmConfig) APIKey() string {
	return cfg.apiKey
}

func (cfg *llmConfig) Model() string {
	return cfg.model
}

func (cfg *llmConfig) Timeout() time.Duration {
	return cfg.timeout
}
