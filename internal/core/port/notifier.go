package port

import (
	"context"

	"github.com/oguenfoude/bs/internal/core/domain"
)

// Notifier alerts staff about an accepted order. One call delivers to the
// whole configured recipient list; partial per-recipient delivery is not
// modeled.
type Notifier interface {
	Notify(ctx context.Context, order *domain.ValidatedOrder) domain.DispatchOutcome

	Enabled() bool
}
