package smtp

import (
	"fmt"
	"html"
	"strings"

	"github.com/oguenfoude/bs/internal/core/domain"
)

// textBody renders the plain-text alert: every order field plus the price
// breakdown computed from the catalog.
func textBody(order *domain.ValidatedOrder, baseURL string) string {
	model, _ := domain.WatchByID(order.WatchModelID)

	var b strings.Builder
	fmt.Fprintf(&b, "طلب جديد من المتجر\n\n")
	fmt.Fprintf(&b, "معرف الطلب: %s\n", order.ClientRequestID)
	fmt.Fprintf(&b, "التاريخ: %s\n", order.ReceivedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "الاسم الكامل: %s\n", order.FullName)
	fmt.Fprintf(&b, "الهاتف: %s\n", order.Phone)
	fmt.Fprintf(&b, "الولاية: %s\n", order.WilayaNameAr)
	fmt.Fprintf(&b, "البلدية: %s\n", order.BaladiyaNameAr)
	fmt.Fprintf(&b, "النموذج: %s (%d)\n", model.NameAr, order.WatchModelID)
	if order.ModelNumber != "" {
		fmt.Fprintf(&b, "رقم النموذج: %s\n", order.ModelNumber)
	}
	fmt.Fprintf(&b, "الكمية: %d\n", order.Quantity)
	fmt.Fprintf(&b, "التوصيل: %s\n", deliveryLabel(order.DeliveryOption))
	fmt.Fprintf(&b, "\nالسعر: %s + %s = %s دج\n",
		domain.BasePrice().String(),
		domain.DeliveryCost(order.DeliveryOption).String(),
		domain.ExpectedTotal(order.DeliveryOption).String())
	fmt.Fprintf(&b, "الإجمالي المصرح به: %s دج\n", order.TotalPrice.String())
	if order.Notes != "" {
		fmt.Fprintf(&b, "\nملاحظات: %s\n", order.Notes)
	}
	fmt.Fprintf(&b, "\nالصورة: %s\n", domain.ImageURL(baseURL, order.WatchModelID))
	return b.String()
}

func htmlBody(order *domain.ValidatedOrder, baseURL string) string {
	model, _ := domain.WatchByID(order.WatchModelID)

	row := func(label, value string) string {
		return fmt.Sprintf("<tr><td><b>%s</b></td><td>%s</td></tr>", label, html.EscapeString(value))
	}

	var b strings.Builder
	b.WriteString(`<div dir="rtl"><h2>طلب جديد من المتجر</h2><table>`)
	b.WriteString(row("معرف الطلب", order.ClientRequestID))
	b.WriteString(row("التاريخ", order.ReceivedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(row("الاسم الكامل", order.FullName))
	b.WriteString(row("الهاتف", order.Phone))
	b.WriteString(row("الولاية", order.WilayaNameAr))
	b.WriteString(row("البلدية", order.BaladiyaNameAr))
	b.WriteString(row("النموذج", fmt.Sprintf("%s (%d)", model.NameAr, order.WatchModelID)))
	if order.ModelNumber != "" {
		b.WriteString(row("رقم النموذج", order.ModelNumber))
	}
	b.WriteString(row("الكمية", fmt.Sprintf("%d", order.Quantity)))
	b.WriteString(row("التوصيل", deliveryLabel(order.DeliveryOption)))
	b.WriteString(row("السعر", fmt.Sprintf("%s + %s = %s دج",
		domain.BasePrice().String(),
		domain.DeliveryCost(order.DeliveryOption).String(),
		domain.ExpectedTotal(order.DeliveryOption).String())))
	b.WriteString(row("الإجمالي المصرح به", order.TotalPrice.String()+" دج"))
	if order.Notes != "" {
		b.WriteString(row("ملاحظات", order.Notes))
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, `<p><img src=%q alt="watch" width="240"></p></div>`,
		domain.ImageURL(baseURL, order.WatchModelID))
	return b.String()
}

func deliveryLabel(option domain.DeliveryOption) string {
	if option == domain.DeliveryHome {
		return "توصيل إلى المنزل"
	}
	return "استلام من المكتب"
}
