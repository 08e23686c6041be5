package domain

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// Fixed single-product catalog: one watch in ten variants. Prices are DZD.
const (
	basePriceDZD      = 4900
	deliveryOfficeDZD = 400
	deliveryHomeDZD   = 600

	// Anti-abuse ceiling on any client-reported total.
	maxOrderTotalDZD = 1_000_000
)

type WatchModel struct {
	ID     int
	NameAr string
}

var watchCatalog = [...]WatchModel{
	{ID: 1, NameAr: "أسود كلاسيكي"},
	{ID: 2, NameAr: "فضي أنيق"},
	{ID: 3, NameAr: "ذهبي فاخر"},
	{ID: 4, NameAr: "أزرق رياضي"},
	{ID: 5, NameAr: "بني جلدي"},
	{ID: 6, NameAr: "أسود مطفي"},
	{ID: 7, NameAr: "روز جولد"},
	{ID: 8, NameAr: "أخضر زيتوني"},
	{ID: 9, NameAr: "رمادي معدني"},
	{ID: 10, NameAr: "أبيض لؤلؤي"},
}

func WatchByID(id int) (WatchModel, bool) {
	if id < 1 || id > len(watchCatalog) {
		return WatchModel{}, false
	}
	return watchCatalog[id-1], true
}

func BasePrice() decimal.Decimal {
	return decimal.MustNew(basePriceDZD, 0)
}

func DeliveryCost(option DeliveryOption) decimal.Decimal {
	if option == DeliveryHome {
		return decimal.MustNew(deliveryHomeDZD, 0)
	}
	return decimal.MustNew(deliveryOfficeDZD, 0)
}

// ExpectedTotal is the price the funnel should have computed for the option.
// The pipeline trusts the client total and only uses this for the breakdown
// in notifications and for a mismatch warning.
func ExpectedTotal(option DeliveryOption) decimal.Decimal {
	if option == DeliveryHome {
		return decimal.MustNew(basePriceDZD+deliveryHomeDZD, 0)
	}
	return decimal.MustNew(basePriceDZD+deliveryOfficeDZD, 0)
}

func MaxOrderTotal() decimal.Decimal {
	return decimal.MustNew(maxOrderTotalDZD, 0)
}

// ImageURL computes the public preview URL for a watch model. Assets are
// published as webp under the storefront's base URL.
func ImageURL(baseURL string, watchModelID int) string {
	return fmt.Sprintf("%s/images/watches/%d.webp", strings.TrimRight(baseURL, "/"), watchModelID)
}
