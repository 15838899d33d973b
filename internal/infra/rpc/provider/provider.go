// Package provider implements the JSON-RPC endpoint client.
//
// This package contains:
//   - Provider interface: abstraction for one RPC endpoint
//   - HTTPProvider: JSON-RPC 2.0 over HTTP implementation
//   - Monitor: throttle and rate-limit tracking
package provider

import (
	"context"
	"fmt"
	"time"
)

// Provider defines the interface for a single RPC endpoint.
type Provider interface {
	// Name returns the provider identifier (derived from the endpoint host)
	Name() string

	// Endpoint returns the endpoint URL
	Endpoint() string

	// Call makes a single RPC request and decodes the result into result
	// (skipped when result is nil)
	Call(ctx context.Context, method string, params []any, result any) error

	// Health returns current health metrics
	Health() HealthStatus

	// IsAvailable checks if the provider is healthy enough to use
	IsAvailable() bool

	// Close cleans up resources
	Close() error
}

// HealthStatus represents the health state of a provider.
type HealthStatus struct {
	Available     bool
	Latency       time.Duration
	ErrorRate     float64
	LastSuccessAt time.Time
	LastFailureAt time.Time
}

// RPCError is a JSON-RPC error object returned by the remote node.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
