package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"chat-task-scheduler/config"
	"chat-task-scheduler/pkg/deepseek"
	"chat-task-scheduler/pkg/gemini"
	"chat-task-scheduler/pkg/log"
)

// QwenBaseURL is DashScope's OpenAI-compatible endpoint.
const QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

// InitializeProviders creates Provider instances from config.LLMConfig.
// Providers come back sorted by priority (ascending) with disabled ones filtered out.
// A provider that fails to initialize is skipped instead of failing the service.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var (
		providers  []Provider
		initErrors []string
	)
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			msg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, msg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s", msg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	if len(initErrors) > 0 {
		l.Warnf(ctx, "llmprovider.InitializeProviders: %d provider(s) failed, continuing with %d",
			len(initErrors), len(providers))
	}

	return providers, nil
}

// NewManagerConfig converts the string durations of config.LLMConfig.
func NewManagerConfig(cfg *config.LLMConfig) *Config {
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 0),
	}
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	httpClient := &http.Client{Timeout: parseDuration(cfg.Timeout, 30*time.Second)}

	switch cfg.Name {
	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewOpenAICompatAdapter("deepseek", client), nil

	case "qwen", "alibaba":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = QwenBaseURL
		}
		client, err := deepseek.New(deepseek.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    baseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewOpenAICompatAdapter("qwen", client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
