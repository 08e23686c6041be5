package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

// Algerian mobile numbers: 10 digits, prefix 05 / 06 / 07.
var mobilePattern = regexp.MustCompile(`^0[567][0-9]{8}$`)

const (
	fullNameMinLen = 2
	fullNameMaxLen = 100
	wilayaMinLen   = 2
	notesMaxLen    = 500
)

// NormalizePhone strips spacing characters and maps the international
// prefix (+213 / 00213) to the domestic leading zero. It does not validate;
// the result still has to match the mobile pattern.
func NormalizePhone(raw string) string {
	phone := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '.', '(', ')':
			return -1
		}
		return r
	}, raw)

	switch {
	case strings.HasPrefix(phone, "+213"):
		phone = "0" + phone[len("+213"):]
	case strings.HasPrefix(phone, "00213"):
		phone = "0" + phone[len("00213"):]
	}
	return phone
}

// Validate checks a raw submission field by field and collects every
// violation instead of stopping at the first one. It is pure: no I/O, no
// logging, and the returned order is the only thing any later stage reads.
func Validate(sub OrderSubmission) (*ValidatedOrder, *ValidationError) {
	var details []FieldError
	reject := func(field, message string) {
		details = append(details, FieldError{Field: field, Message: message})
	}

	clientRequestID := strings.TrimSpace(sub.ClientRequestID)
	if clientRequestID == "" {
		// Legacy callers never sent a token. The primary caller always
		// does, so idempotency is only as good as the caller here.
		clientRequestID = uuid.NewString()
	} else if _, err := uuid.Parse(clientRequestID); err != nil {
		reject("clientRequestId", "معرف الطلب غير صالح")
	}

	fullName := strings.TrimSpace(sub.FullName)
	if n := utf8.RuneCountInString(fullName); n < fullNameMinLen || n > fullNameMaxLen {
		reject("fullName", "الاسم الكامل يجب أن يكون بين 2 و 100 حرف")
	}

	phone := NormalizePhone(sub.Phone)
	if !mobilePattern.MatchString(phone) {
		reject("phone", "رقم الهاتف غير صالح، يجب أن يبدأ بـ 05 أو 06 أو 07")
	}

	wilaya := strings.TrimSpace(sub.WilayaNameAr)
	if utf8.RuneCountInString(wilaya) < wilayaMinLen {
		reject("wilayaNameAr", "يرجى اختيار الولاية")
	}

	baladiya := strings.TrimSpace(sub.BaladiyaNameAr)
	if baladiya == "" {
		baladiya = strings.TrimSpace(sub.Baladiya)
	}
	if baladiya == "" {
		reject("baladiyaNameAr", "يرجى إدخال البلدية")
	}

	if _, ok := WatchByID(sub.WatchModelID); !ok {
		reject("watchModelId", "النموذج المختار غير متوفر")
	}

	option := DeliveryOption(strings.TrimSpace(sub.DeliveryOption))
	if option != DeliveryOffice && option != DeliveryHome {
		reject("deliveryOption", "يرجى اختيار طريقة التوصيل")
	}

	total, err := decimal.NewFromFloat64(sub.TotalPrice)
	if err != nil || total.Sign() <= 0 || total.Cmp(MaxOrderTotal()) > 0 {
		reject("totalPrice", "السعر الإجمالي غير صالح")
	}

	if utf8.RuneCountInString(sub.Notes) > notesMaxLen {
		reject("notes", "الملاحظات طويلة جدًا")
	}

	quantity := sub.Quantity
	if quantity == 0 {
		quantity = 1
	} else if quantity < 0 {
		reject("quantity", "الكمية غير صالحة")
	}

	if len(details) > 0 {
		return nil, &ValidationError{Details: details}
	}

	return &ValidatedOrder{
		ClientRequestID: clientRequestID,
		FullName:        fullName,
		Phone:           phone,
		WilayaNameAr:    wilaya,
		BaladiyaNameAr:  baladiya,
		WatchModelID:    sub.WatchModelID,
		DeliveryOption:  option,
		TotalPrice:      total,
		Notes:           strings.TrimSpace(sub.Notes),
		ModelNumber:     strings.TrimSpace(sub.ModelNumber),
		Quantity:        quantity,
		ReceivedAt:      time.Now(),
	}, nil
}
