package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type DeliveryOption string

const (
	DeliveryOffice DeliveryOption = "office"
	DeliveryHome   DeliveryOption = "home"
)

// OrderSubmission is the untrusted request body of the checkout funnel.
// Every field may be missing or garbage; only Validate turns it into
// something the rest of the pipeline will touch.
type OrderSubmission struct {
	ClientRequestID string  `json:"clientRequestId"`
	FullName        string  `json:"fullName"`
	Phone           string  `json:"phone"`
	WilayaNameAr    string  `json:"wilayaNameAr"`
	BaladiyaNameAr  string  `json:"baladiyaNameAr"`
	Baladiya        string  `json:"baladiya"` // legacy alias for baladiyaNameAr
	WatchModelID    int     `json:"watchModelId"`
	DeliveryOption  string  `json:"deliveryOption"`
	TotalPrice      float64 `json:"totalPrice"`
	Notes           string  `json:"notes"`
	ModelNumber     string  `json:"modelNumber"`
	Quantity        int     `json:"quantity"`
}

// ValidatedOrder is produced only by Validate and treated as immutable:
// both integrations receive it by pointer but never write through it.
type ValidatedOrder struct {
	ClientRequestID string
	FullName        string
	Phone           string
	WilayaNameAr    string
	BaladiyaNameAr  string
	WatchModelID    int
	DeliveryOption  DeliveryOption
	TotalPrice      decimal.Decimal
	Notes           string
	ModelNumber     string
	Quantity        int
	ReceivedAt      time.Time
}

type Integration string

const (
	IntegrationLedger   Integration = "ledger"
	IntegrationNotifier Integration = "email"
)

// DispatchOutcome is the per-integration result of one submission.
// Skipped marks an administratively disabled integration: no work was done,
// but the outcome still reads as success.
type DispatchOutcome struct {
	Integration Integration
	Success     bool
	Skipped     bool
	Err         error
	RowNumber   int64
}

// OrderReceipt is the successful result of a submission. The flags expose
// partial degradation to the caller without failing the order.
type OrderReceipt struct {
	ClientRequestID string
	SheetSaved      bool
	EmailSent       bool
}

// DupOutcome is the three-valued result of the duplicate guard. The ledger
// being unreachable is its own state so the fail-open policy stays an
// explicit branch.
type DupOutcome int

const (
	DupNo DupOutcome = iota
	DupYes
	DupUnknown
)
