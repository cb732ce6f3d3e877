package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Collaborators
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
	Postgres       PostgresConfig

	// Scheduling
	Scheduler SchedulerConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// PostgresConfig selects the task store. An empty DSN keeps tasks in memory.
type PostgresConfig struct {
	DSN      string
	MaxConns int32
}

// SchedulerConfig drives slot discovery and proposal sessions.
type SchedulerConfig struct {
	Timezone       string
	WorkdayStart   string // HH:MM
	WorkdayEnd     string // HH:MM
	DefaultStart   string // HH:MM, used when the calendar yields nothing
	DefaultEnd     string // HH:MM
	MinSlotMinutes int
	ProposalTTL    time.Duration
	SessionSize    int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// WebhookConfig guards the Telegram webhook. Secret is compared with the
// X-Telegram-Bot-Api-Secret-Token header.
type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Collaborators
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")

	// Scheduling
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.WorkdayStart = viper.GetString("scheduler.workday_start")
	cfg.Scheduler.WorkdayEnd = viper.GetString("scheduler.workday_end")
	cfg.Scheduler.DefaultStart = viper.GetString("scheduler.default_start")
	cfg.Scheduler.DefaultEnd = viper.GetString("scheduler.default_end")
	cfg.Scheduler.MinSlotMinutes = viper.GetInt("scheduler.min_slot_minutes")
	cfg.Scheduler.ProposalTTL = viper.GetDuration("scheduler.proposal_ttl")
	cfg.Scheduler.SessionSize = viper.GetInt("scheduler.session_size")
	if err := validateSchedulerConfig(&cfg.Scheduler); err != nil {
		return nil, err
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	// Webhooks
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("postgres.max_conns", 5)
	viper.SetDefault("webhook.rate_limit_per_min", 60)

	// Scheduler defaults
	viper.SetDefault("scheduler.timezone", "Asia/Ho_Chi_Minh")
	viper.SetDefault("scheduler.workday_start", "08:00")
	viper.SetDefault("scheduler.workday_end", "18:00")
	viper.SetDefault("scheduler.default_start", "09:00")
	viper.SetDefault("scheduler.default_end", "17:00")
	viper.SetDefault("scheduler.min_slot_minutes", 15)
	viper.SetDefault("scheduler.proposal_ttl", "24h")
	viper.SetDefault("scheduler.session_size", 1000)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateSchedulerConfig checks the HH:MM fields and that each window is non-empty.
func validateSchedulerConfig(cfg *SchedulerConfig) error {
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("scheduler.timezone: %w", err)
	}

	windows := []struct {
		name       string
		start, end string
	}{
		{"workday", cfg.WorkdayStart, cfg.WorkdayEnd},
		{"default", cfg.DefaultStart, cfg.DefaultEnd},
	}
	for _, w := range windows {
		start, err := time.Parse("15:04", w.start)
		if err != nil {
			return fmt.Errorf("scheduler.%s_start %q: expected HH:MM", w.name, w.start)
		}
		end, err := time.Parse("15:04", w.end)
		if err != nil {
			return fmt.Errorf("scheduler.%s_end %q: expected HH:MM", w.name, w.end)
		}
		if !start.Before(end) {
			return fmt.Errorf("scheduler.%s window %s-%s is empty", w.name, w.start, w.end)
		}
	}

	if cfg.MinSlotMinutes <= 0 {
		return fmt.Errorf("scheduler.min_slot_minutes must be positive")
	}
	return nil
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
