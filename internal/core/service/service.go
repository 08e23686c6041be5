package service

import (
	"context"
	"sync"

	"github.com/oguenfoude/bs/internal/core/domain"
	"github.com/oguenfoude/bs/internal/core/port"
	"go.uber.org/zap"
)

// Service orchestrates one order submission: validate, duplicate guard,
// parallel dispatch to the ledger and the notifier, aggregate. It performs
// no retries itself; each integration owns its own retry budget.
type Service struct {
	ledger   port.Ledger
	notifier port.Notifier
	logger   *zap.Logger
}

func NewService(ledger port.Ledger, notifier port.Notifier, logger *zap.Logger) (*Service, error) {
	return &Service{
		ledger:   ledger,
		notifier: notifier,
		logger:   logger,
	}, nil
}

func (s *Service) SubmitOrder(ctx context.Context, sub domain.OrderSubmission) (*domain.OrderReceipt, error) {
	order, verr := domain.Validate(sub)
	if verr != nil {
		return nil, verr
	}

	if order.TotalPrice.Cmp(domain.ExpectedTotal(order.DeliveryOption)) != 0 {
		// The client total is trusted as-is, the mismatch only gets logged.
		s.logger.Warn("client total disagrees with catalog price",
			zap.String("clientRequestId", order.ClientRequestID),
			zap.String("total", order.TotalPrice.String()),
			zap.String("expected", domain.ExpectedTotal(order.DeliveryOption).String()))
	}

	switch s.checkDuplicate(ctx, order.ClientRequestID) {
	case domain.DupYes:
		return nil, domain.ErrDuplicateOrder
	case domain.DupUnknown:
		s.logger.Warn("duplicate check unavailable, failing open",
			zap.String("clientRequestId", order.ClientRequestID))
	}

	if !s.ledger.Enabled() && !s.notifier.Enabled() {
		s.logger.Error("both integrations disabled, rejecting submission")
		return nil, domain.ErrAllChannelsDisabled
	}

	outcomes := s.dispatch(ctx, order)

	receipt, err := aggregate(order.ClientRequestID, outcomes)
	for _, o := range outcomes {
		if !o.Success {
			s.logger.Error("integration failed",
				zap.String("integration", string(o.Integration)),
				zap.String("clientRequestId", order.ClientRequestID),
				zap.Error(o.Err))
		}
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("order accepted",
		zap.String("clientRequestId", receipt.ClientRequestID),
		zap.Bool("sheetSaved", receipt.SheetSaved),
		zap.Bool("emailSent", receipt.EmailSent))
	return receipt, nil
}

func (s *Service) checkDuplicate(ctx context.Context, clientRequestID string) domain.DupOutcome {
	exists, err := s.ledger.Exists(ctx, clientRequestID)
	if err != nil {
		return domain.DupUnknown
	}
	if exists {
		return domain.DupYes
	}
	return domain.DupNo
}

// dispatch fans out to every integration concurrently and waits for all of
// them to settle, success or failure. No short-circuit, no cancellation.
func (s *Service) dispatch(ctx context.Context, order *domain.ValidatedOrder) []domain.DispatchOutcome {
	outcomes := make([]domain.DispatchOutcome, 2)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		outcomes[0] = s.ledger.Append(ctx, order)
	}()
	go func() {
		defer wg.Done()
		outcomes[1] = s.notifier.Notify(ctx, order)
	}()
	wg.Wait()

	return outcomes
}
