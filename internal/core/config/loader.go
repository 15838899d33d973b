package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/vietddude/deploytime/internal/infra/rpc/routing"
)

// Default returns the configuration used without a config file.
func Default() *AppConfig {
	return &AppConfig{
		DedicatedEndpoint: os.Getenv("DEPLOYTIME_RPC_URL"),
		Scan:              routing.DefaultPolicy,
		Resolve:           routing.DefaultPolicy,
		PageLimit:         1000,
		HTTPTimeout:       30 * time.Second,
		Logging:           LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults, so the tool runs without any configuration at all.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Scan.Validate(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if err := cfg.Resolve.Validate(); err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	def := Default()

	if cfg.DedicatedEndpoint == "" {
		cfg.DedicatedEndpoint = def.DedicatedEndpoint
	}
	cfg.Scan = fillPolicy(cfg.Scan, def.Scan)
	cfg.Resolve = fillPolicy(cfg.Resolve, def.Resolve)
	if cfg.PageLimit == 0 {
		cfg.PageLimit = def.PageLimit
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = def.HTTPTimeout
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
}

func fillPolicy(p, def routing.Policy) routing.Policy {
	if p.Attempts == 0 {
		p.Attempts = def.Attempts
	}
	if p.InitialDelay == 0 {
		p.InitialDelay = def.InitialDelay
	}
	if p.MaxDelay == 0 {
		p.MaxDelay = def.MaxDelay
	}
	return p
}
