// Package cart holds the in-memory cart of one storefront session.
//
// A Cart is owned by a single session and is not safe for concurrent use.
package cart

import (
	"errors"

	"github.com/misoniwath/Omega-coffee-order/internal/catalog"
	"github.com/misoniwath/Omega-coffee-order/internal/orders"
	"github.com/shopspring/decimal"
)

var ErrUnknownProduct = errors.New("unknown product")

// Line is one product in the cart. Quantity is always >= 1 while the line exists.
type Line struct {
	Product  catalog.Product
	Quantity int
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Cart struct {
	catalog *catalog.Catalog
	lines   []Line // insertion order, at most one per product id
}

func New(cat *catalog.Catalog) *Cart {
	return &Cart{catalog: cat}
}

// AddItem increments the product's line, creating it with quantity 1 if absent.
func (c *Cart) AddItem(p catalog.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Add looks the product up in the session catalog and adds it.
func (c *Cart) Add(productID string) error {
	if c.catalog == nil {
		return ErrUnknownProduct
	}
	p, ok := c.catalog.Product(productID)
	if !ok {
		return ErrUnknownProduct
	}
	c.AddItem(p)
	return nil
}

// AdjustQuantity applies delta to a line, clamping at zero. A line that reaches
// zero is removed. Returns false, changing nothing, if the product is not in the cart.
func (c *Cart) AdjustQuantity(productID string, delta int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	q := c.lines[i].Quantity + delta
	if q <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return true
	}
	c.lines[i].Quantity = q
	return true
}

// Remove drops a line by decrementing it by its full quantity.
func (c *Cart) Remove(productID string) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	return c.AdjustQuantity(productID, -c.lines[i].Quantity)
}

func (c *Cart) Clear() { c.lines = nil }

func (c *Cart) Lines() []Line { return append([]Line(nil), c.lines...) }

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) Quantity(productID string) int {
	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

type Snapshot struct {
	Items []orders.Item
	Total decimal.Decimal
}

// Snapshot projects the cart into order items named in lang. It does not modify the cart.
func (c *Cart) Snapshot(lang catalog.Language) Snapshot {
	items := make([]orders.Item, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, orders.Item{
			Name:     l.Product.Name.In(lang),
			Price:    l.Product.Price,
			Quantity: l.Quantity,
		})
	}
	return Snapshot{Items: items, Total: c.Total()}
}

func (c *Cart) index(productID string) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}
