package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Retell     RetellConfig
	Redis      RedisConfig
	Auth       AuthConfig
	Automation AutomationConfig
	Twilio     TwilioConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
	// CallsPerMinute caps credential requests per client IP. Zero disables the limit.
	CallsPerMinute int
}

// RetellConfig holds the voice provider settings. APIKey never leaves the server.
type RetellConfig struct {
	APIKey           string
	BaseURL          string
	RealtimeURL      string
	SIPDomain        string
	ProvisionTimeout time.Duration
}

// RedisConfig holds the optional Redis connection used for agent settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthConfig holds admin route authentication settings.
// An empty JWTSecret disables the check.
type AuthConfig struct {
	JWTSecret string
}

// AutomationConfig holds the outbound webhook notified when the active agent changes
type AutomationConfig struct {
	ActiveAgentWebhookURL string
}

// TwilioConfig holds the inbound phone webhook settings. An empty AuthToken
// disables request signature validation.
type TwilioConfig struct {
	AuthToken     string
	PublicBaseURL string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Retell.APIKey, err = requireEnv("RETELL_API_KEY"); err != nil {
		return nil, err
	}
	cfg.Retell.BaseURL = getEnvWithDefault("RETELL_BASE_URL", "https://api.retellai.com")
	cfg.Retell.RealtimeURL = getEnvWithDefault("RETELL_REALTIME_URL", "wss://api.retellai.com/web-call")
	cfg.Retell.SIPDomain = getEnvWithDefault("RETELL_SIP_DOMAIN", "5t4n6j0wnrl.sip.livekit.cloud")

	provisionTimeout := getEnvWithDefault("PROVISION_TIMEOUT", "15s")
	cfg.Retell.ProvisionTimeout, err = time.ParseDuration(provisionTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PROVISION_TIMEOUT: %w", err)
	}

	// Server configuration
	serverPort := getEnvWithDefault("SERVER_PORT", "8080")
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")
	cfg.Server.CallsPerMinute, err = strconv.Atoi(getEnvWithDefault("CALLS_RATE_LIMIT_PER_MINUTE", "30"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CALLS_RATE_LIMIT_PER_MINUTE: %w", err)
	}

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	if cfg.Redis.Enabled {
		if cfg.Redis.Host, err = requireEnv("REDIS_HOST"); err != nil {
			return nil, err
		}
		cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
		}
		cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
		}
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	}

	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.Automation.ActiveAgentWebhookURL = os.Getenv("ACTIVE_AGENT_WEBHOOK_URL")

	cfg.Twilio.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	if cfg.Twilio.AuthToken != "" {
		if cfg.Twilio.PublicBaseURL, err = requireEnv("PUBLIC_BASE_URL"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
