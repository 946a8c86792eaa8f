package orders

import (
	"strings"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	// PaymentPaid means the customer asserts an out-of-band KHQR transfer. Never verified.
	PaymentPaid       PaymentStatus = "paid"
	PaymentOnDelivery PaymentStatus = "not_paid"
)

// Item is one finalized order line; Name is already resolved to the customer's language.
type Item struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (it Item) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Payload is the body of one order submission. Nothing in it is kept after the relay.
type Payload struct {
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Location      string        `json:"location"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Notes         string        `json:"notes,omitempty"`
	Items         []Item        `json:"items"`
}

func (p Payload) Validate() error {
	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(p.Location) == "" {
		missing = append(missing, "location")
	}
	if len(p.Items) == 0 {
		missing = append(missing, "items")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Total is always recomputed from the submitted lines; clients never send one.
func (p Payload) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range p.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
