package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Language string

const (
	English Language = "en"
	Khmer   Language = "km"
	Chinese Language = "ch"

	DefaultLanguage = Khmer
)

var Languages = []Language{English, Khmer, Chinese}

func ParseLanguage(s string) (Language, bool) {
	for _, l := range Languages {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

type LocalizedString struct {
	EN string `json:"en"`
	KM string `json:"km"`
	CH string `json:"ch"`
}

// In returns the text for lang, falling back to English when the translation is empty.
func (s LocalizedString) In(lang Language) string {
	var v string
	switch lang {
	case Khmer:
		v = s.KM
	case Chinese:
		v = s.CH
	}
	if v == "" {
		return s.EN
	}
	return v
}

type Category struct {
	ID   string          `json:"id"`
	Name LocalizedString `json:"name"`
}

type Product struct {
	ID       string          `json:"id"`
	Name     LocalizedString `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
}

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is read-only after New. Accessors hand out copies.
type Catalog struct {
	categories []Category
	products   []Product
	byID       map[string]int
}

func New(categories []Category, products []Product) (*Catalog, error) {
	c := &Catalog{
		categories: append([]Category(nil), categories...),
		products:   append([]Product(nil), products...),
		byID:       make(map[string]int, len(products)),
	}

	cats := make(map[string]bool, len(categories))
	for _, cat := range c.categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("%w: category without id", ErrInvalidCatalog)
		}
		if cats[cat.ID] {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, cat.ID)
		}
		cats[cat.ID] = true
	}

	for i, p := range c.products {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: product without id", ErrInvalidCatalog)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product %q", ErrInvalidCatalog, p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: negative price for %q", ErrInvalidCatalog, p.ID)
		}
		if !cats[p.Category] {
			return nil, fmt.Errorf("%w: product %q references unknown category %q", ErrInvalidCatalog, p.ID, p.Category)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

func (c *Catalog) Product(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// InCategory lists the products of one category in catalog order.
func (c *Catalog) InCategory(categoryID string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// Menu is the wire shape of the catalog surface.
type Menu struct {
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}

func (c *Catalog) Menu() Menu {
	return Menu{Categories: c.Categories(), Products: c.Products()}
}

func FromMenu(m Menu) (*Catalog, error) {
	return New(m.Categories, m.Products)
}
