package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/misoniwath/Omega-coffee-order/internal/catalog"
	"github.com/misoniwath/Omega-coffee-order/internal/httpx"
	"github.com/misoniwath/Omega-coffee-order/internal/notify"
	"github.com/misoniwath/Omega-coffee-order/internal/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var form = DeliveryForm{Name: "Dara", Phone: "012 345 678", Location: "Street 51"}

// relayServer runs the real relay API with a simulated sink.
func relayServer(t *testing.T) *httptest.Server {
	r := httpx.NewRouter()
	(&httpx.OrdersHandler{Relay: &orders.Relay{Sink: notify.LogSink{}}}).Register(r)
	(&httpx.CatalogHandler{Catalog: catalog.Default()}).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type stubAPI struct {
	calls int
	got   orders.Payload
	err   error
}

func (s *stubAPI) SubmitOrder(_ context.Context, p orders.Payload) (SubmitResult, error) {
	s.calls++
	s.got = p
	return SubmitResult{}, s.err
}

func TestCheckout_SimulatedSuccessClearsCart(t *testing.T) {
	srv := relayServer(t)
	client := NewClient(srv.URL, 2*time.Second)

	cat, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)

	s := NewSession(cat, client, catalog.English)
	require.NoError(t, s.Cart().Add("hc3"))
	require.NoError(t, s.Cart().Add("hc3"))
	s.SetPaymentMethod(orders.PaymentPaid)
	s.ConfirmPaid()

	res, err := s.Checkout(context.Background(), form)
	require.NoError(t, err)
	assert.True(t, res.Simulated)
	assert.Equal(t, StatusSuccess, s.Status())
	assert.True(t, s.Cart().IsEmpty())
	assert.False(t, s.PaidConfirmed())
}

func TestCheckout_RelayFailureKeepsCart(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to relay order"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer srv.Close()

	s := NewSession(catalog.Default(), NewClient(srv.URL, time.Second), catalog.Khmer)
	require.NoError(t, s.Cart().Add("hc1"))
	require.NoError(t, s.Cart().Add("sd1"))

	_, err := s.Checkout(context.Background(), form)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Failed to relay order", apiErr.Message)
	assert.Equal(t, StatusFailed, s.Status())
	assert.Equal(t, 2, s.Cart().Len())

	// resubmit without re-adding items
	fail.Store(false)
	res, err := s.Checkout(context.Background(), form)
	require.NoError(t, err)
	assert.False(t, res.Simulated)
	assert.True(t, s.Cart().IsEmpty())
}

func TestCheckout_UsesActiveLanguage(t *testing.T) {
	api := &stubAPI{}
	s := NewSession(catalog.Default(), api, catalog.English)
	require.NoError(t, s.Cart().Add("hc2"))
	s.SetLanguage(catalog.Chinese)

	_, err := s.Checkout(context.Background(), DeliveryForm{Name: "A", Phone: "1", Location: "L", Notes: "less sugar"})
	require.NoError(t, err)
	require.Len(t, api.got.Items, 1)
	assert.Equal(t, "热美式咖啡", api.got.Items[0].Name)
	assert.Equal(t, "1.25", api.got.Items[0].Price.StringFixed(2))
	assert.Equal(t, orders.PaymentOnDelivery, api.got.PaymentStatus)
	assert.Equal(t, "less sugar", api.got.Notes)
}

func TestCheckout_EmptyCartIsNoop(t *testing.T) {
	api := &stubAPI{}
	s := NewSession(catalog.Default(), api, catalog.English)

	_, err := s.Checkout(context.Background(), form)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, api.calls)
	assert.Equal(t, StatusIdle, s.Status())
}

func TestCheckout_SuccessIsTerminalUntilNewOrder(t *testing.T) {
	api := &stubAPI{}
	s := NewSession(catalog.Default(), api, catalog.English)
	require.NoError(t, s.Cart().Add("hc1"))
	_, err := s.Checkout(context.Background(), form)
	require.NoError(t, err)

	require.NoError(t, s.Cart().Add("hc1"))
	_, err = s.Checkout(context.Background(), form)
	assert.ErrorIs(t, err, ErrOrderComplete)
	assert.Equal(t, 1, api.calls)

	s.StartNewOrder()
	assert.Equal(t, StatusIdle, s.Status())
	_, err = s.Checkout(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, 2, api.calls)
}

func TestCheckout_ValidationRejectedByServer(t *testing.T) {
	srv := relayServer(t)
	s := NewSession(catalog.Default(), NewClient(srv.URL, time.Second), catalog.English)
	require.NoError(t, s.Cart().Add("hc1"))

	_, err := s.Checkout(context.Background(), DeliveryForm{Name: "Dara", Phone: "012"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, 1, s.Cart().Len())
	assert.Equal(t, StatusFailed, s.Status())
}

func TestPaymentConfirmation(t *testing.T) {
	s := NewSession(catalog.Default(), &stubAPI{}, catalog.English)

	s.ConfirmPaid() // cash selected: ignored
	assert.False(t, s.PaidConfirmed())

	s.SetPaymentMethod(orders.PaymentPaid)
	s.ConfirmPaid()
	assert.True(t, s.PaidConfirmed())

	s.SetPaymentMethod(orders.PaymentOnDelivery)
	assert.False(t, s.PaidConfirmed())
}

func TestNewSession_DefaultsLanguage(t *testing.T) {
	s := NewSession(catalog.Default(), &stubAPI{}, catalog.Language("fr"))
	assert.Equal(t, catalog.Khmer, s.Language())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusIdle, StatusSubmitting))
	assert.True(t, CanTransition(StatusFailed, StatusIdle))
	assert.False(t, CanTransition(StatusIdle, StatusSuccess))
	assert.False(t, CanTransition(StatusSuccess, StatusSubmitting))
}

func TestT(t *testing.T) {
	assert.Equal(t, "Order Sent!", T(catalog.English, KeyOrderSent))
	assert.Equal(t, "下单时出现问题", T(catalog.Chinese, KeyOrderProblem))
	assert.Equal(t, "English fallback", T(catalog.Language("xx"), Key("English fallback")))
	assert.Equal(t, "Your cart is empty", T(catalog.Language("xx"), KeyEmptyCart))
}
