package port

import (
	"context"

	"github.com/oguenfoude/bs/internal/core/domain"
)

type Service interface {
	SubmitOrder(ctx context.Context, sub domain.OrderSubmission) (*domain.OrderReceipt, error)
}
