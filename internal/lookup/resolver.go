package lookup

import (
	"context"
	"log/slog"

	"github.com/vietddude/deploytime/internal/core/domain"
	"github.com/vietddude/deploytime/internal/infra/rpc/routing"
)

// TransactionFetcher fetches one transaction by signature.
type TransactionFetcher interface {
	GetTransaction(ctx context.Context, sig domain.Signature) (*domain.TransactionDetail, error)
}

// Resolver turns a signature into its block time.
type Resolver struct {
	client TransactionFetcher
	policy routing.Policy
	log    *slog.Logger
}

// NewResolver creates a resolver. A nil logger falls back to slog.Default.
func NewResolver(client TransactionFetcher, policy routing.Policy, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{client: client, policy: policy, log: log}
}

// ResolveBlockTime fetches the transaction for sig and returns its block
// time in epoch seconds. The fetch retries through the executor; a node
// that has not indexed the signature yet answers null, which counts as a
// retryable failure. A transaction that arrives without a block time is
// terminal and not retried.
func (r *Resolver) ResolveBlockTime(ctx context.Context, sig domain.Signature) (int64, error) {
	tx, err := routing.Execute(ctx, r.log, "getTransaction", r.policy, func(ctx context.Context) (*domain.TransactionDetail, error) {
		return r.client.GetTransaction(ctx, sig)
	})
	if err != nil {
		return 0, err
	}

	if tx.BlockTime == nil {
		return 0, &domain.MissingBlockTimeError{Signature: sig}
	}

	return *tx.BlockTime, nil
}
