// Package solana wraps a generic RPC provider with the two typed calls the
// lookup pipeline needs: signature history listing and transaction fetch.
package solana

import (
	"context"
	"time"

	"github.com/vietddude/deploytime/internal/core/domain"
	"github.com/vietddude/deploytime/internal/infra/rpc/provider"
)

// commitment is the confirmation level requested on every call. "confirmed"
// is the earliest level at which public nodes index signatures.
const commitment = "confirmed"

// Client provides typed access to one RPC endpoint.
type Client struct {
	provider provider.Provider
}

// NewClient creates a typed client bound to endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		provider: provider.NewHTTPProvider(endpoint, timeout),
	}
}

// NewClientWithProvider creates a typed client over an existing provider.
func NewClientWithProvider(p provider.Provider) *Client {
	return &Client{provider: p}
}

// Endpoint returns the bound endpoint URL.
func (c *Client) Endpoint() string {
	return c.provider.Endpoint()
}

// Close releases the underlying provider.
func (c *Client) Close() error {
	return c.provider.Close()
}

// GetSignaturesForAddress returns up to limit signatures for a program,
// newest first. A non-empty before cursor restricts results to signatures
// older than it.
func (c *Client) GetSignaturesForAddress(ctx context.Context, program domain.ProgramID, limit int, before domain.Signature) ([]domain.SignatureInfo, error) {
	opts := map[string]any{
		"limit":      limit,
		"commitment": commitment,
	}
	if before != "" {
		opts["before"] = before.String()
	}
	params := []any{program.String(), opts}

	var infos []domain.SignatureInfo
	if err := c.provider.Call(ctx, "getSignaturesForAddress", params, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// GetTransaction fetches a transaction by signature. A null result from the
// node becomes a TransactionNotFoundError so callers can retry while the
// node catches up on indexing.
func (c *Client) GetTransaction(ctx context.Context, sig domain.Signature) (*domain.TransactionDetail, error) {
	params := []any{
		sig.String(),
		map[string]any{
			"encoding":                       "json",
			"commitment":                     commitment,
			"maxSupportedTransactionVersion": 0,
		},
	}

	var tx *domain.TransactionDetail
	if err := c.provider.Call(ctx, "getTransaction", params, &tx); err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, &domain.TransactionNotFoundError{Signature: sig}
	}
	return tx, nil
}
