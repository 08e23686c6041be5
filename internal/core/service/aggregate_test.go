package service

import (
	"errors"
	"testing"

	"github.com/oguenfoude/bs/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func outcome(i domain.Integration, success, skipped bool) domain.DispatchOutcome {
	o := domain.DispatchOutcome{Integration: i, Success: success, Skipped: skipped}
	if !success {
		o.Err = errors.New("boom")
	}
	return o
}

func TestAggregate(t *testing.T) {
	const token = "7f8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9c0d"

	tests := []struct {
		name          string
		outcomes      []domain.DispatchOutcome
		expError      error
		expSheetSaved bool
		expEmailSent  bool
	}{
		{
			name: "both succeed",
			outcomes: []domain.DispatchOutcome{
				outcome(domain.IntegrationLedger, true, false),
				outcome(domain.IntegrationNotifier, true, false),
			},
			expSheetSaved: true,
			expEmailSent:  true,
		},
		{
			name: "ledger fails, notifier succeeds",
			outcomes: []domain.DispatchOutcome{
				outcome(domain.IntegrationLedger, false, false),
				outcome(domain.IntegrationNotifier, true, false),
			},
			expSheetSaved: false,
			expEmailSent:  true,
		},
		{
			name: "both fail",
			outcomes: []domain.DispatchOutcome{
				outcome(domain.IntegrationLedger, false, false),
				outcome(domain.IntegrationNotifier, false, false),
			},
			expError: domain.ErrProcessingFailed,
		},
		{
			name: "skipped ledger does not count as failure",
			outcomes: []domain.DispatchOutcome{
				outcome(domain.IntegrationLedger, true, true),
				outcome(domain.IntegrationNotifier, true, false),
			},
			expSheetSaved: true,
			expEmailSent:  true,
		},
		{
			name: "skipped ledger with failing notifier is total failure",
			outcomes: []domain.DispatchOutcome{
				outcome(domain.IntegrationLedger, true, true),
				outcome(domain.IntegrationNotifier, false, false),
			},
			expError: domain.ErrProcessingFailed,
		},
		{
			name: "everything skipped",
			outcomes: []domain.DispatchOutcome{
				outcome(domain.IntegrationLedger, true, true),
				outcome(domain.IntegrationNotifier, true, true),
			},
			expError: domain.ErrAllChannelsDisabled,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			receipt, err := aggregate(token, test.outcomes)
			if test.expError != nil {
				assert.Equal(t, test.expError, err)
				assert.Nil(t, receipt)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, token, receipt.ClientRequestID)
			assert.Equal(t, test.expSheetSaved, receipt.SheetSaved)
			assert.Equal(t, test.expEmailSent, receipt.EmailSent)
		})
	}
}
