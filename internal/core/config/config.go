package config

import (
	"time"

	"github.com/vietddude/deploytime/internal/core/domain"
	"github.com/vietddude/deploytime/internal/infra/rpc/routing"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	// Endpoints are tried in order after the dedicated endpoint.
	Endpoints []string `yaml:"endpoints"`

	// DedicatedEndpoint is a private RPC URL tried before the public
	// lists. Populated from DEPLOYTIME_RPC_URL when empty.
	DedicatedEndpoint string `yaml:"dedicated_endpoint"`

	Scan    routing.Policy `yaml:"scan"`
	Resolve routing.Policy `yaml:"resolve"`

	PageLimit   int           `yaml:"page_limit"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// EndpointList assembles the ordered endpoint list for one run: an explicit
// override first, then the dedicated endpoint, then configured endpoints,
// then the built-in public defaults. Duplicates keep their first position.
func (c *AppConfig) EndpointList(override string) []string {
	var candidates []string
	if override != "" {
		candidates = append(candidates, override)
	}
	if c.DedicatedEndpoint != "" {
		candidates = append(candidates, c.DedicatedEndpoint)
	}
	candidates = append(candidates, c.Endpoints...)
	candidates = append(candidates, domain.DefaultEndpoints...)

	seen := make(map[string]bool, len(candidates))
	endpoints := make([]string, 0, len(candidates))
	for _, endpoint := range candidates {
		if seen[endpoint] {
			continue
		}
		seen[endpoint] = true
		endpoints = append(endpoints, endpoint)
	}
	return endpoints
}
