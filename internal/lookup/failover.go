package lookup

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vietddude/deploytime/internal/core/domain"
	"github.com/vietddude/deploytime/internal/infra/rpc/routing"
	"github.com/vietddude/deploytime/internal/metrics"
)

// Client is the endpoint-bound surface the pipeline runs against.
type Client interface {
	SignatureLister
	TransactionFetcher
	Endpoint() string
	Close() error
}

// ClientFactory binds a client to one endpoint URL.
type ClientFactory func(endpoint string) Client

// Options configures the pipeline run against each endpoint.
type Options struct {
	ScanPolicy    routing.Policy
	ResolvePolicy routing.Policy
	PageLimit     int
	Logger        *slog.Logger
}

// Failover runs the scan-then-resolve pipeline against each endpoint in
// priority order until one succeeds.
type Failover struct {
	endpoints []string
	factory   ClientFactory
	opts      Options
	log       *slog.Logger
}

// failureRecord is the most recent terminal failure, carried across
// endpoint attempts so the final report can cite it.
type failureRecord struct {
	endpoint  string
	operation string
	err       error
}

// NewFailover creates a failover controller over an ordered endpoint list.
func NewFailover(endpoints []string, factory ClientFactory, opts Options) *Failover {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Failover{
		endpoints: endpoints,
		factory:   factory,
		opts:      opts,
		log:       log,
	}
}

// ResolveFirstDeployment returns the block time (epoch seconds) of the
// oldest transaction for program. First success wins; any failure advances
// to the next endpoint with the error recorded. An exhausted list yields an
// AllEndpointsFailedError preserving the last failure.
func (f *Failover) ResolveFirstDeployment(ctx context.Context, program domain.ProgramID) (int64, error) {
	if len(f.endpoints) == 0 {
		return 0, errors.New("no endpoints configured")
	}

	log := f.log.With("run_id", uuid.New().String(), "program", program)

	var last *failureRecord
	for _, endpoint := range f.endpoints {
		log.Info("Trying endpoint", "endpoint", endpoint)

		client := f.factory(endpoint)

		scanner := NewScanner(client, f.opts.ScanPolicy, f.opts.PageLimit, log)
		sig, err := scanner.FindOldestSignature(ctx, program)
		if err != nil {
			last = &failureRecord{endpoint: endpoint, operation: "scan", err: err}
			f.recordFailure(log, last)
			client.Close()
			continue
		}
		log.Debug("Oldest signature found", "endpoint", endpoint, "signature", sig)

		resolver := NewResolver(client, f.opts.ResolvePolicy, log)
		blockTime, err := resolver.ResolveBlockTime(ctx, sig)
		client.Close()
		if err != nil {
			last = &failureRecord{endpoint: endpoint, operation: "resolve", err: err}
			f.recordFailure(log, last)
			continue
		}

		log.Info("First deployment resolved",
			"endpoint", endpoint,
			"signature", sig,
			"block_time", blockTime)
		return blockTime, nil
	}

	return 0, &domain.AllEndpointsFailedError{
		Endpoint:  last.endpoint,
		Operation: last.operation,
		Last:      last.err,
	}
}

func (f *Failover) recordFailure(log *slog.Logger, rec *failureRecord) {
	metrics.EndpointFailoversTotal.Inc()
	log.Warn("Endpoint failed",
		"endpoint", rec.endpoint,
		"operation", rec.operation,
		"error", rec.err)
}
