// Package storefront is the customer side of the shop: one Session per customer,
// owning the cart, the delivery form state and the submission state machine.
package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/misoniwath/Omega-coffee-order/internal/cart"
	"github.com/misoniwath/Omega-coffee-order/internal/catalog"
	"github.com/misoniwath/Omega-coffee-order/internal/orders"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrBusy          = errors.New("order submission in progress")
	ErrOrderComplete = errors.New("order already sent; start a new order")
)

// OrderAPI is satisfied by *Client.
type OrderAPI interface {
	SubmitOrder(ctx context.Context, p orders.Payload) (SubmitResult, error)
}

// DeliveryForm holds the customer-entered fields of the checkout form.
type DeliveryForm struct {
	Name     string
	Phone    string
	Location string
	Notes    string
}

type Session struct {
	api     OrderAPI
	catalog *catalog.Catalog
	cart    *cart.Cart
	lang    catalog.Language
	status  Status
	lastErr error

	payment orders.PaymentStatus
	// paidConfirmed is the "I have paid" button state. Display only, never sent or checked.
	paidConfirmed bool
}

func NewSession(cat *catalog.Catalog, api OrderAPI, lang catalog.Language) *Session {
	if _, ok := catalog.ParseLanguage(string(lang)); !ok {
		lang = catalog.DefaultLanguage
	}
	return &Session{
		api:     api,
		catalog: cat,
		cart:    cart.New(cat),
		lang:    lang,
		status:  StatusIdle,
		payment: orders.PaymentOnDelivery,
	}
}

func (s *Session) Catalog() *catalog.Catalog { return s.catalog }
func (s *Session) Cart() *cart.Cart { return s.cart }
func (s *Session) Language() catalog.Language { return s.lang }
func (s *Session) Status() Status { return s.status }
func (s *Session) LastError() error { return s.lastErr }

func (s *Session) SetLanguage(l catalog.Language) { s.lang = l }

func (s *Session) T(k Key) string { return T(s.lang, k) }

func (s *Session) PaymentMethod() orders.PaymentStatus { return s.payment }

// SetPaymentMethod switches the payment option and resets the "I have paid" flag.
func (s *Session) SetPaymentMethod(p orders.PaymentStatus) {
	s.payment = p
	s.paidConfirmed = false
}

// ConfirmPaid records the customer's own claim of having paid by transfer.
func (s *Session) ConfirmPaid() {
	if s.payment == orders.PaymentPaid {
		s.paidConfirmed = true
	}
}

func (s *Session) PaidConfirmed() bool { return s.paidConfirmed }

// Checkout submits the cart with the given form. On failure the cart is left
// untouched and the session can submit again; on success the cart is cleared.
func (s *Session) Checkout(ctx context.Context, form DeliveryForm) (SubmitResult, error) {
	switch s.status {
	case StatusSubmitting:
		return SubmitResult{}, ErrBusy
	case StatusSuccess:
		return SubmitResult{}, ErrOrderComplete
	case StatusFailed:
		s.transition(StatusIdle)
	}
	if s.cart.IsEmpty() {
		return SubmitResult{}, ErrEmptyCart
	}

	snap := s.cart.Snapshot(s.lang)
	p := orders.Payload{
		Name:          form.Name,
		Phone:         form.Phone,
		Location:      form.Location,
		PaymentStatus: s.payment,
		Notes:         form.Notes,
		Items:         snap.Items,
	}

	s.transition(StatusSubmitting)
	res, err := s.api.SubmitOrder(ctx, p)
	if err != nil {
		s.lastErr = err
		s.transition(StatusFailed)
		return SubmitResult{}, err
	}

	s.lastErr = nil
	s.cart.Clear()
	s.paidConfirmed = false
	s.transition(StatusSuccess)
	return res, nil
}

// StartNewOrder leaves the success screen ("order more").
func (s *Session) StartNewOrder() {
	if s.status == StatusSuccess || s.status == StatusFailed {
		s.transition(StatusIdle)
	}
}

func (s *Session) transition(to Status) {
	if !CanTransition(s.status, to) {
		panic(fmt.Sprintf("storefront: invalid transition %s -> %s", s.status, to))
	}
	s.status = to
}
