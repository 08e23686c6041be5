package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Business errors.
	ErrDuplicateOrder      = errors.New("order already submitted")
	ErrAllChannelsDisabled = errors.New("all notification channels disabled")
	ErrProcessingFailed    = errors.New("order processing failed in every enabled channel")

	// * Integration errors.
	ErrLedgerNotConfigured   = errors.New("ledger credentials are not configured")
	ErrNotifierNotConfigured = errors.New("mail transport is not configured")
)

// User-facing messages. The storefront audience is Algerian, so everything
// shown to the end user is Arabic.
const (
	MsgOrderAccepted  = "تم استلام طلبك بنجاح، سنتصل بك قريبًا لتأكيد الطلب"
	MsgOrderDuplicate = "تم استلام هذا الطلب مسبقًا"
	MsgOrderFailed    = "حدث خطأ أثناء معالجة طلبك، يرجى المحاولة مرة أخرى"
	MsgBadRequest     = "صيغة الطلب غير صالحة"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in a submission.
// Details is never empty.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s) rejected", len(e.Details))
}

// First returns the message used as the top-level error of a 400 response.
func (e *ValidationError) First() string {
	if len(e.Details) == 0 {
		return MsgBadRequest
	}
	return e.Details[0].Message
}
