package smtp

import (
	"context"
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/oguenfoude/bs/internal/adapter/config"
	"github.com/oguenfoude/bs/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func testOrder() *domain.ValidatedOrder {
	return &domain.ValidatedOrder{
		ClientRequestID: "7f8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9c0d",
		FullName:        "محمد بن عيسى",
		Phone:           "0666123456",
		WilayaNameAr:    "وهران",
		BaladiyaNameAr:  "السانية",
		WatchModelID:    7,
		DeliveryOption:  domain.DeliveryOffice,
		TotalPrice:      decimal.MustNew(5300, 0),
		Notes:           "الرجاء الاتصال مساءً",
		Quantity:        1,
		ReceivedAt:      time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC),
	}
}

func TestTextBody(t *testing.T) {
	body := textBody(testOrder(), "https://shop.example")

	assert.Contains(t, body, "7f8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9c0d")
	assert.Contains(t, body, "محمد بن عيسى")
	assert.Contains(t, body, "0666123456")
	assert.Contains(t, body, "وهران")
	assert.Contains(t, body, "السانية")
	assert.Contains(t, body, "الرجاء الاتصال مساءً")
	assert.Contains(t, body, "https://shop.example/images/watches/7.webp")
	// Price breakdown: base + delivery = expected total.
	assert.Contains(t, body, "4900 + 400 = 5300")
}

func TestHTMLBody(t *testing.T) {
	body := htmlBody(testOrder(), "https://shop.example")

	assert.Contains(t, body, `dir="rtl"`)
	assert.Contains(t, body, "محمد بن عيسى")
	assert.Contains(t, body, `src="https://shop.example/images/watches/7.webp"`)
	assert.Contains(t, body, "4900 + 400 = 5300")
}

func TestDeliveryLabel(t *testing.T) {
	assert.NotEqual(t, deliveryLabel(domain.DeliveryOffice), deliveryLabel(domain.DeliveryHome))
}

func TestNotifier_DisabledShortCircuits(t *testing.T) {
	n, err := NewNotifier(&config.SMTP{Enabled: false}, "https://shop.example", nil, nil)
	assert.NoError(t, err)
	assert.False(t, n.Enabled())

	out := n.Notify(context.Background(), testOrder())
	assert.True(t, out.Success)
	assert.True(t, out.Skipped)
	assert.NoError(t, out.Err)
}
