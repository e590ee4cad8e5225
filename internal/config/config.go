package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Version is reported by the health endpoint and document footers.
const Version = "2.0.0"

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Remote RAG service configuration
	RAGConnectorCfg RAGConnectorConfig `envPrefix:"RAG_"`

	// Demo mode: canned responses instead of live remote calls
	DemoMode bool `env:"DEMO_MODE" envDefault:"false"`

	// Output directories
	ReportsDir  string `env:"REPORTS_DIR" envDefault:"reports"`
	WordDocsDir string `env:"WORD_DOCS_DIR" envDefault:"word_documents"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Environment (set from flag, not from env var)
	Environment string
}

// RAGConnectorConfig configures the remote RAG HTTP client.
type RAGConnectorConfig struct {
	HTTPClientConfig
	HealthEndpoint string        `env:"HEALTH_ENDPOINT" envDefault:"/health"`
	QueryEndpoint  string        `env:"QUERY_ENDPOINT" envDefault:"/query"`
	ProbeCacheTTL  time.Duration `env:"PROBE_CACHE_TTL" envDefault:"30s"`
}

// HTTPClientConfig holds the shared HTTP client tuning knobs.
type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"30s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL" envDefault:"https://tbsg.temenos.com/api/v1.0"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.RAGConnectorCfg.Url == "" {
		return fmt.Errorf("RAG_SERVICE_URL must not be empty")
	}
	if cfg.RAGConnectorCfg.RequestTimeout <= 0 {
		return fmt.Errorf("RAG_TIMEOUT must be positive, got %s", cfg.RAGConnectorCfg.RequestTimeout)
	}
	if cfg.ReportsDir == "" || cfg.WordDocsDir == "" {
		return fmt.Errorf("REPORTS_DIR and WORD_DOCS_DIR must not be empty")
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
