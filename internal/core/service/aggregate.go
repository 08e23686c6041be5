package service

import "github.com/oguenfoude/bs/internal/core/domain"

// aggregate folds the settled per-integration outcomes into a single result.
// Pure: the decision logic stays testable apart from the goroutine join.
//
// A skipped (disabled) integration counts as success in the response flags
// but never counts toward total failure; the order fails only when every
// integration that actually ran came back failed.
func aggregate(clientRequestID string, outcomes []domain.DispatchOutcome) (*domain.OrderReceipt, error) {
	receipt := &domain.OrderReceipt{ClientRequestID: clientRequestID}

	ran, failed := 0, 0
	for _, o := range outcomes {
		if !o.Skipped {
			ran++
			if !o.Success {
				failed++
			}
		}

		ok := o.Success || o.Skipped
		switch o.Integration {
		case domain.IntegrationLedger:
			receipt.SheetSaved = ok
		case domain.IntegrationNotifier:
			receipt.EmailSent = ok
		}
	}

	if ran == 0 {
		return nil, domain.ErrAllChannelsDisabled
	}
	if failed == ran {
		return nil, domain.ErrProcessingFailed
	}
	return receipt, nil
}
