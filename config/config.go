package config

import (
	"fmt"
	"os"
	"path/filepath"
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

	// Storage
	Postgres PostgresConfig

	// Reminders
	Timezone    TimezoneConfig
	Deepgram    DeepgramConfig
	LLM         LLMConfig
	Credentials CredentialsConfig
	Audio       AudioConfig

	// Telegram intake
	Telegram TelegramConfig

	RateLimit RateLimitConfig
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

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type TimezoneConfig struct {
	Name   string
	Locale string
}

type DeepgramConfig struct {
	BaseURL     string
	Language    string
	Model       string
	Punctuate   bool
	SmartFormat bool
	Timeout     time.Duration
}

// LLMConfig configures the natural-language time parser's model provider.
type LLMConfig struct {
	Provider    string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type CredentialsConfig struct {
	Path string
}

type AudioConfig struct {
	Command    []string
	SampleRate int
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	SecretToken   string
	DefaultChatID string
	NgrokAPI      string
}

type RateLimitConfig struct {
	VoicePerMin   int
	WebhookPerMin int
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

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")

	// Timezone
	cfg.Timezone.Name = viper.GetString("timezone.name")
	cfg.Timezone.Locale = viper.GetString("timezone.locale")

	// Deepgram
	cfg.Deepgram.BaseURL = viper.GetString("deepgram.base_url")
	cfg.Deepgram.Language = viper.GetString("deepgram.language")
	cfg.Deepgram.Model = viper.GetString("deepgram.model")
	cfg.Deepgram.Punctuate = viper.GetBool("deepgram.punctuate")
	cfg.Deepgram.SmartFormat = viper.GetBool("deepgram.smart_format")
	cfg.Deepgram.Timeout = viper.GetDuration("deepgram.timeout")

	// LLM
	cfg.LLM.Provider = viper.GetString("llm.provider")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")

	// Credentials
	cfg.Credentials.Path = expandHome(viper.GetString("credentials.path"))
	if cfg.Credentials.Path == "" {
		cfg.Credentials.Path = DefaultCredentialsPath()
	}

	// Audio
	cfg.Audio.Command = splitList(viper.GetString("audio.command"), " ")
	cfg.Audio.SampleRate = viper.GetInt("audio.sample_rate")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	cfg.Telegram.DefaultChatID = viper.GetString("telegram.default_chat_id")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Rate limits
	cfg.RateLimit.VoicePerMin = viper.GetInt("rate_limit.voice_per_min")
	cfg.RateLimit.WebhookPerMin = viper.GetInt("rate_limit.webhook_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port %d", c.HTTPServer.Port)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be within [0, 2]")
	}
	if c.RateLimit.VoicePerMin < 0 || c.RateLimit.WebhookPerMin < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")

	viper.SetDefault("timezone.name", "Europe/Helsinki")
	viper.SetDefault("timezone.locale", "fi-FI")

	viper.SetDefault("deepgram.base_url", "https://api.deepgram.com")
	viper.SetDefault("deepgram.language", "fi")
	viper.SetDefault("deepgram.model", "nova-2")
	viper.SetDefault("deepgram.punctuate", true)
	viper.SetDefault("deepgram.smart_format", true)
	viper.SetDefault("deepgram.timeout", "60s")

	// LLM defaults
	viper.SetDefault("llm.provider", "groq")
	viper.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("llm.model", "llama-3.3-70b-versatile")
	viper.SetDefault("llm.temperature", 0)
	viper.SetDefault("llm.max_tokens", 400)
	viper.SetDefault("llm.timeout", "30s")

	viper.SetDefault("audio.command", "arecord")
	viper.SetDefault("audio.sample_rate", 16000)

	viper.SetDefault("telegram.ngrok_api", "http://ngrok:4040")

	viper.SetDefault("rate_limit.voice_per_min", 20)
	viper.SetDefault("rate_limit.webhook_per_min", 60)
}

// DefaultCredentialsPath is the credentials file under the user config directory.
func DefaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "memory-mob", "credentials.yaml")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func splitList(raw, sep string) []string {
	var out []string
	for _, part := range strings.Split(raw, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
