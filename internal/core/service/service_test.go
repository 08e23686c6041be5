package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/oguenfoude/bs/internal/core/domain"
	"github.com/oguenfoude/bs/internal/core/port/mock"
	"github.com/oguenfoude/bs/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(ledger *mock.MockLedger, notifier *mock.MockNotifier)

func validSubmission() domain.OrderSubmission {
	return domain.OrderSubmission{
		ClientRequestID: "7f8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9c0d",
		FullName:        "محمد بن عيسى",
		Phone:           "0555123456",
		WilayaNameAr:    "الجزائر",
		BaladiyaNameAr:  "باب الوادي",
		WatchModelID:    3,
		DeliveryOption:  "home",
		TotalPrice:      5500,
	}
}

func ledgerOK() domain.DispatchOutcome {
	return domain.DispatchOutcome{Integration: domain.IntegrationLedger, Success: true, RowNumber: 12}
}

func ledgerFail() domain.DispatchOutcome {
	return domain.DispatchOutcome{Integration: domain.IntegrationLedger, Err: errors.New("sheet unreachable")}
}

func notifierOK() domain.DispatchOutcome {
	return domain.DispatchOutcome{Integration: domain.IntegrationNotifier, Success: true}
}

func notifierFail() domain.DispatchOutcome {
	return domain.DispatchOutcome{Integration: domain.IntegrationNotifier, Err: errors.New("smtp down")}
}

func TestService_SubmitOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	token := validSubmission().ClientRequestID

	type submitTest struct {
		name          string
		sub           domain.OrderSubmission
		mock          prepareMocks
		expError      error
		expSheetSaved bool
		expEmailSent  bool
	}

	tests := []submitTest{
		{
			name: "both integrations succeed",
			sub:  validSubmission(),
			mock: func(ledger *mock.MockLedger, notifier *mock.MockNotifier) {
				ledger.EXPECT().Exists(gomock.Any(), token).Return(false, nil)
				ledger.EXPECT().Enabled().Return(true).AnyTimes()
				notifier.EXPECT().Enabled().Return(true).AnyTimes()
				ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(ledgerOK())
				notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(notifierOK())
			},
			expSheetSaved: true,
			expEmailSent:  true,
		},
		{
			name: "duplicate token rejected",
			sub:  validSubmission(),
			mock: func(ledger *mock.MockLedger, notifier *mock.MockNotifier) {
				ledger.EXPECT().Exists(gomock.Any(), token).Return(true, nil)
			},
			expError: domain.ErrDuplicateOrder,
		},
		{
			name: "duplicate check fails open",
			sub:  validSubmission(),
			mock: func(ledger *mock.MockLedger, notifier *mock.MockNotifier) {
				ledger.EXPECT().Exists(gomock.Any(), token).Return(false, errors.New("store unreachable"))
				ledger.EXPECT().Enabled().Return(true).AnyTimes()
				notifier.EXPECT().Enabled().Return(true).AnyTimes()
				ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(ledgerOK())
				notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(notifierOK())
			},
			expSheetSaved: true,
			expEmailSent:  true,
		},
		{
			name: "all integrations disabled",
			sub:  validSubmission(),
			mock: func(ledger *mock.MockLedger, notifier *mock.MockNotifier) {
				ledger.EXPECT().Exists(gomock.Any(), token).Return(false, nil)
				ledger.EXPECT().Enabled().Return(false).AnyTimes()
				notifier.EXPECT().Enabled().Return(false).AnyTimes()
			},
			expError: domain.ErrAllChannelsDisabled,
		},
		{
			name: "both integrations fail",
			sub:  validSubmission(),
			mock: func(ledger *mock.MockLedger, notifier *mock.MockNotifier) {
				ledger.EXPECT().Exists(gomock.Any(), token).Return(false, nil)
				ledger.EXPECT().Enabled().Return(true).AnyTimes()
				notifier.EXPECT().Enabled().Return(true).AnyTimes()
				ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(ledgerFail())
				notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(notifierFail())
			},
			expError: domain.ErrProcessingFailed,
		},
		{
			name: "notifier fails, order still accepted",
			sub:  validSubmission(),
			mock: func(ledger *mock.MockLedger, notifier *mock.MockNotifier) {
				ledger.EXPECT().Exists(gomock.Any(), token).Return(false, nil)
				ledger.EXPECT().Enabled().Return(true).AnyTimes()
				notifier.EXPECT().Enabled().Return(true).AnyTimes()
				ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(ledgerOK())
				notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(notifierFail())
			},
			expSheetSaved: true,
			expEmailSent:  false,
		},
		{
			name: "ledger disabled counts as saved",
			sub:  validSubmission(),
			mock: func(ledger *mock.MockLedger, notifier *mock.MockNotifier) {
				ledger.EXPECT().Exists(gomock.Any(), token).Return(false, nil)
				ledger.EXPECT().Enabled().Return(false).AnyTimes()
				notifier.EXPECT().Enabled().Return(true).AnyTimes()
				ledger.EXPECT().Append(gomock.Any(), gomock.Any()).
					Return(domain.DispatchOutcome{Integration: domain.IntegrationLedger, Success: true, Skipped: true})
				notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(notifierOK())
			},
			expSheetSaved: true,
			expEmailSent:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ledger := mock.NewMockLedger(mockCtrl)
			notifier := mock.NewMockNotifier(mockCtrl)
			test.mock(ledger, notifier)

			s, err := service.NewService(ledger, notifier, logger)
			assert.NoError(t, err)

			receipt, err := s.SubmitOrder(context.Background(), test.sub)
			if test.expError != nil {
				assert.Equal(t, test.expError, err)
				assert.Nil(t, receipt)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.sub.ClientRequestID, receipt.ClientRequestID)
			assert.Equal(t, test.expSheetSaved, receipt.SheetSaved)
			assert.Equal(t, test.expEmailSent, receipt.EmailSent)
		})
	}
}

func TestService_SubmitOrder_ValidationError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	ledger := mock.NewMockLedger(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)

	s, err := service.NewService(ledger, notifier, logger)
	assert.NoError(t, err)

	sub := validSubmission()
	sub.Phone = "0455123456"

	receipt, err := s.SubmitOrder(context.Background(), sub)
	assert.Nil(t, receipt)

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Details[0].Field)
}
