package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chat-task-scheduler/pkg/log"
)

// Recorder receives one call per provider attempt chain.
type Recorder interface {
	ObserveLLMRequest(provider string, err error, elapsed time.Duration)
}

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	recorder  Recorder
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for the entire fallback chain
}

// Option customises a Manager.
type Option func(*Manager)

// WithRecorder reports per-provider outcomes, e.g. to metrics.
func WithRecorder(r Recorder) Option {
	return func(m *Manager) { m.recorder = r }
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger, opts ...Option) *Manager {
	if config == nil {
		config = &Config{}
	}
	m := &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w", i, ctx.Err())
		default:
		}

		started := time.Now()
		resp, err := m.generateWithRetry(ctx, provider, req)
		if m.recorder != nil {
			m.recorder.ObserveLLMRequest(provider.Name(), err, time.Since(started))
		}
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// GenerateText is the single-turn shortcut used by prompt-based callers.
func (m *Manager) GenerateText(ctx context.Context, system, prompt string, jsonMode bool) (string, error) {
	req := UserPrompt(system, prompt)
	req.JSONMode = jsonMode
	resp, err := m.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// generateWithRetry retries one provider with linear backoff.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil && strings.TrimSpace(resp.Text) == "" {
			err = ErrEmptyResponse
		}
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Infof(ctx, "llmprovider.Manager: generation ok provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "llmprovider.Manager: generation failed provider=%s model=%s: %v",
		provider.Name(), provider.Model(), err)
}
