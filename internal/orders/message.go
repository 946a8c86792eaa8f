package orders

import (
	"fmt"
	"strings"
)

const (
	paidLabel       = "✅ KHQR Payment (Customer Confirmed)"
	onDeliveryLabel = "💵 Pay on Delivery"
	noNote          = "None"
)

// markdownEscaper escapes the legacy Telegram Markdown entity characters in
// customer-supplied text so a stray underscore cannot break the whole message.
var markdownEscaper = strings.NewReplacer(
	`_`, `\_`,
	`*`, `\*`,
	"`", "\\`",
	`[`, `\[`,
)

func esc(s string) string { return markdownEscaper.Replace(strings.TrimSpace(s)) }

func PaymentLabel(s PaymentStatus) string {
	if s == PaymentPaid {
		return paidLabel
	}
	return onDeliveryLabel
}

// FormatMessage renders the operator notification for one order.
func FormatMessage(p Payload) string {
	var items strings.Builder
	for i, it := range p.Items {
		if i > 0 {
			items.WriteByte('\n')
		}
		fmt.Fprintf(&items, "• %s x%d ($%s)", esc(it.Name), it.Quantity, it.Subtotal().StringFixed(2))
	}

	note := esc(p.Notes)
	if note == "" {
		note = noNote
	}

	var b strings.Builder
	b.WriteString("🧾 *NEW ORDER RECEIVED*\n\n")
	fmt.Fprintf(&b, "👤 *Customer:* %s\n", esc(p.Name))
	fmt.Fprintf(&b, "📱 *Phone:* %s\n", esc(p.Phone))
	fmt.Fprintf(&b, "📍 *Location:* %s\n\n", esc(p.Location))
	fmt.Fprintf(&b, "🛒 *Order Items:*\n%s\n\n", items.String())
	fmt.Fprintf(&b, "💵 *Total Amount:* $%s\n\n", p.Total().StringFixed(2))
	fmt.Fprintf(&b, "💰 *Payment:* %s\n", PaymentLabel(p.PaymentStatus))
	fmt.Fprintf(&b, "📝 *Note:* %s\n\n", note)
	b.WriteString("_Sent from Coffee App_")
	return b.String()
}
