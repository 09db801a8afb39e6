package config

import (
	"crypto/tls"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/rfp-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr     string        `env:"SERVER_ADDR,notEmpty"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBConnectAttempts   uint          `env:"DB_CONNECT_ATTEMPTS" envDefault:"5"`

	// External service configurations
	ExtractorConnectorCfg ExtractorConnectorConfig `envPrefix:"EXTRACTOR_"`
	CallbackConnectorCfg  CallbackConnectorConfig  `envPrefix:"CALLBACK_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// File upload configuration
	FileUploadCfg FileUploadConfig `envPrefix:"FILE_UPLOAD_"`

	// Analysis cache configuration
	AnalysisCacheCfg AnalysisCacheConfig `envPrefix:"ANALYSIS_CACHE_"`

	// Knowledge items imported on startup when the knowledge base is empty
	KnowledgeSeedFile string `env:"KNOWLEDGE_SEED_FILE" envDefault:"internal/config/knowledge_seed.json"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS,notEmpty"`

	// Telegram bot configuration (optional, validated when the bot is built)
	TelegramCfg TelegramConfig `envPrefix:"TELEGRAM_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken           string `env:"BOT_TOKEN"`
	UpdateTimeout      int    `env:"UPDATE_TIMEOUT" envDefault:"60"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"20"`
	RateLimitBurst     int    `env:"RATE_LIMIT_BURST" envDefault:"5"`
	ShutdownTimeout    int    `env:"SHUTDOWN_TIMEOUT" envDefault:"30"` // seconds
}

type ExtractorConnectorConfig struct {
	HTTPClientConfig
	ExtractEndpoint string               `env:"EXTRACT_ENDPOINT,notEmpty"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type CallbackConnectorConfig struct {
	HTTPClientConfig
	Retry pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT,notEmpty"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT,notEmpty"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE,notEmpty"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT,notEmpty"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT,notEmpty"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
	InsecureSkipVerify    bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	TLSHandshakeTimeout   time.Duration `env:"TLS_HANDSHAKE_TIMEOUT" envDefault:"10s"`
	MinTLSVersion         string        `env:"MIN_TLS_VERSION" envDefault:"1.2"`
	IdleConns             int           `env:"IDLE_CONNS" envDefault:"100"`
	IdleConnsPerHost      int           `env:"IDLE_CONNS_PER_HOST" envDefault:"10"`
}

// ParseTLSVersion maps "1.2" or "1.3" to the crypto/tls constant; empty means the client default (0)
func ParseTLSVersion(version string) (uint16, error) {
	switch strings.TrimSpace(version) {
	case "":
		return 0, nil
	case "1.2":
		return tls.VersionTLS12, nil
	case "1.3":
		return tls.VersionTLS13, nil
	default:
		return 0, fmt.Errorf("unsupported TLS version %q (want 1.2 or 1.3)", version)
	}
}

func (c HTTPClientConfig) validate(prefix string) []string {
	var errs []string
	if _, err := ParseTLSVersion(c.MinTLSVersion); err != nil {
		errs = append(errs, fmt.Sprintf("%sMIN_TLS_VERSION: %v", prefix, err))
	}
	if c.IdleConns < 0 || c.IdleConnsPerHost < 0 {
		errs = append(errs, fmt.Sprintf("%sIDLE_CONNS and %sIDLE_CONNS_PER_HOST must not be negative", prefix, prefix))
	}
	if c.IdleConns > 0 && c.IdleConnsPerHost > c.IdleConns {
		errs = append(errs, fmt.Sprintf("%sIDLE_CONNS_PER_HOST must not exceed %sIDLE_CONNS(%d), got %d", prefix, prefix, c.IdleConns, c.IdleConnsPerHost))
	}
	return errs
}

// FileUploadConfig holds file upload limits
type FileUploadConfig struct {
	MaxFileSize   int64 `env:"MAX_FILE_SIZE,notEmpty"`   // 10 MiB
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE,notEmpty"` // 32 MiB
}

// AnalysisCacheConfig bounds how long analyses of identical text are reused
type AnalysisCacheConfig struct {
	TTL             time.Duration `env:"TTL" envDefault:"30m"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	return Load(*envFlag)
}

// Load reads .env.<environment> if present, then the process environment
func Load(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errs []string

	// Validate Database configuration
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errs = append(errs, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errs = append(errs, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	// Validate upload limits
	if cfg.FileUploadCfg.MaxFileSize < 1 {
		errs = append(errs, fmt.Sprintf("FILE_UPLOAD_MAX_FILE_SIZE must be positive, got %d", cfg.FileUploadCfg.MaxFileSize))
	}

	if cfg.FileUploadCfg.MaxUploadSize < cfg.FileUploadCfg.MaxFileSize {
		errs = append(errs, fmt.Sprintf("FILE_UPLOAD_MAX_UPLOAD_SIZE must be at least FILE_UPLOAD_MAX_FILE_SIZE(%d), got %d",
			cfg.FileUploadCfg.MaxFileSize, cfg.FileUploadCfg.MaxUploadSize))
	}

	// Validate cache configuration
	if cfg.AnalysisCacheCfg.TTL < 0 {
		errs = append(errs, fmt.Sprintf("ANALYSIS_CACHE_TTL must not be negative, got %s", cfg.AnalysisCacheCfg.TTL))
	}

	// Validate outbound HTTP clients
	errs = append(errs, cfg.ExtractorConnectorCfg.validate("EXTRACTOR_")...)
	errs = append(errs, cfg.CallbackConnectorCfg.validate("CALLBACK_")...)

	if !cfg.EnableMocks && cfg.ExtractorConnectorCfg.Url == "" {
		errs = append(errs, "EXTRACTOR_SERVICE_URL is required unless ENABLE_MOCKS is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// ValidateTelegram checks the settings only the bot needs
func (cfg *Config) ValidateTelegram() error {
	var errs []string

	if cfg.TelegramCfg.BotToken == "" {
		errs = append(errs, "TELEGRAM_BOT_TOKEN is required")
	}

	if cfg.TelegramCfg.RateLimitPerMinute < 1 || cfg.TelegramCfg.RateLimitPerMinute > 60 {
		errs = append(errs, fmt.Sprintf("TELEGRAM_RATE_LIMIT_PER_MINUTE must be between 1 and 60, got %d", cfg.TelegramCfg.RateLimitPerMinute))
	}

	if cfg.TelegramCfg.RateLimitBurst < 1 || cfg.TelegramCfg.RateLimitBurst > 20 {
		errs = append(errs, fmt.Sprintf("TELEGRAM_RATE_LIMIT_BURST must be between 1 and 20, got %d", cfg.TelegramCfg.RateLimitBurst))
	}

	if cfg.TelegramCfg.ShutdownTimeout < 1 || cfg.TelegramCfg.ShutdownTimeout > 300 {
		errs = append(errs, fmt.Sprintf("TELEGRAM_SHUTDOWN_TIMEOUT must be between 1 and 300 seconds, got %d", cfg.TelegramCfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("telegram configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
