package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the bridge console configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Environment EnvironmentConfig `yaml:"environment"`
	Planner     PlannerConfig     `yaml:"planner"`
	Status      StatusConfig      `yaml:"status"`
	Sessions    SessionConfig     `yaml:"sessions"`
	Monitoring  MonitoringConfig  `yaml:"monitoring"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings.
// When disabled the console keeps no status or attempt history.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host" default:"localhost" validate:"required_if=Enabled true"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"bridge_console"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// EnvironmentConfig points at the location catalog of the bridge environment
type EnvironmentConfig struct {
	// Path of the YAML environment file holding the location catalog.
	File string `yaml:"file" validate:"required"`
}

// PlannerConfig contains settings for the feasibility-check sidecar
type PlannerConfig struct {
	URL     string        `yaml:"url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" default:"30s"`
}

// StatusConfig contains bridge status polling settings
type StatusConfig struct {
	SourceURL       string        `yaml:"source_url" validate:"required,url"`
	EthereumRPCURL  string        `yaml:"ethereum_rpc_url" validate:"omitempty,url"`
	PollingInterval time.Duration `yaml:"polling_interval" default:"5m"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout" default:"30s"`
	HistoryLimit    int           `yaml:"history_limit" default:"100" validate:"min=1"`
	NativeToken     NativeToken   `yaml:"native_token"`
}

// NativeToken describes the Asset Hub native token used to format Substrate balances
type NativeToken struct {
	Symbol   string `yaml:"symbol" default:"DOT"`
	Decimals int32  `yaml:"decimals" default:"10" validate:"min=0,max=36"`
}

// SessionConfig contains transfer form session settings
type SessionConfig struct {
	IdleTimeout   time.Duration `yaml:"idle_timeout" default:"30m"`
	SweepInterval time.Duration `yaml:"sweep_interval" default:"1m"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load loads configuration from a YAML file, applying defaults and validation
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes configuration from YAML bytes
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%s failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return err
	}
	return nil
}
