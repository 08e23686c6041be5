package port

import (
	"context"

	"github.com/oguenfoude/bs/internal/core/domain"
)

// Ledger is the append-only order store. Append never panics across this
// boundary: every failure, including missing configuration, comes back
// inside the DispatchOutcome.
type Ledger interface {
	// Append records the order as a new row. Retry policy lives behind
	// this call, not in front of it.
	Append(ctx context.Context, order *domain.ValidatedOrder) domain.DispatchOutcome

	// Exists reports whether a record with this idempotency token was
	// already appended. An error means "unknown", the caller decides the
	// fail-open policy.
	Exists(ctx context.Context, clientRequestID string) (bool, error)

	Enabled() bool
}
