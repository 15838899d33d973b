// Package lookup implements the first-deployment lookup pipeline: a
// backward history scan to the oldest signature, a block-time resolve for
// that signature, and failover across a prioritized endpoint list.
package lookup

import (
	"context"
	"log/slog"

	"github.com/vietddude/deploytime/internal/core/domain"
	"github.com/vietddude/deploytime/internal/infra/rpc/routing"
)

// DefaultPageLimit is the largest page size public nodes accept for
// getSignaturesForAddress.
const DefaultPageLimit = 1000

// SignatureLister lists transaction signatures for a program, newest first.
type SignatureLister interface {
	GetSignaturesForAddress(ctx context.Context, program domain.ProgramID, limit int, before domain.Signature) ([]domain.SignatureInfo, error)
}

// Scanner walks a program's signature history backward to its oldest entry.
type Scanner struct {
	client    SignatureLister
	policy    routing.Policy
	pageLimit int
	log       *slog.Logger
}

// NewScanner creates a scanner. A zero pageLimit falls back to
// DefaultPageLimit and a nil logger to slog.Default.
func NewScanner(client SignatureLister, policy routing.Policy, pageLimit int, log *slog.Logger) *Scanner {
	if pageLimit <= 0 {
		pageLimit = DefaultPageLimit
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{
		client:    client,
		policy:    policy,
		pageLimit: pageLimit,
		log:       log,
	}
}

// FindOldestSignature pages backward until history is exhausted and returns
// the oldest signature seen. Nodes signal end-of-history two ways: a page
// shorter than the limit, or an empty page after a full one. Both terminate
// the walk. Each page fetch retries independently, so a transient failure
// deep into the walk does not restart earlier pages.
func (s *Scanner) FindOldestSignature(ctx context.Context, program domain.ProgramID) (domain.Signature, error) {
	var cursor domain.Signature
	var earliest domain.Signature
	pages := 0

	for {
		before := cursor
		page, err := routing.Execute(ctx, s.log, "getSignaturesForAddress", s.policy, func(ctx context.Context) ([]domain.SignatureInfo, error) {
			return s.client.GetSignaturesForAddress(ctx, program, s.pageLimit, before)
		})
		if err != nil {
			return "", err
		}
		pages++

		if len(page) == 0 {
			if earliest == "" {
				return "", &domain.NoTransactionsError{Program: program}
			}
			s.log.Debug("History exhausted on empty page", "pages", pages, "oldest", earliest)
			return earliest, nil
		}

		earliest = page[len(page)-1].Signature

		if len(page) < s.pageLimit {
			s.log.Debug("History exhausted on short page",
				"pages", pages,
				"page_size", len(page),
				"oldest", earliest)
			return earliest, nil
		}

		cursor = earliest
	}
}
