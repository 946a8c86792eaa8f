package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	kafkax "github.com/misoniwath/Omega-coffee-order/internal/kafka"
	"github.com/misoniwath/Omega-coffee-order/internal/orders"
)

const maxOrderBody = 1 << 20

type OrdersHandler struct {
	Relay   *orders.Relay
	Limiter RateLimiter // optional
}

type CreateOrderResp struct {
	Success   bool `json:"success"`
	Simulated bool `json:"simulated,omitempty"`
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		if h.Limiter != nil {
			r.Use(RateLimit(h.Limiter))
		}
		r.Post("/api/order", h.createOrder)
	})
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req orders.Payload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxOrderBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	reqID := middleware.GetReqID(r.Context())
	ctx := kafkax.WithTraceID(r.Context(), reqID)

	res, err := h.Relay.Submit(ctx, req)
	if err != nil {
		var (
			verr *orders.ValidationError
			rerr *orders.RelayError
		)
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, "Missing required fields")
		case errors.As(err, &rerr):
			log.Printf("order relay failed (req=%s): %v", reqID, err)
			writeError(w, http.StatusBadGateway, "Failed to relay order")
		default:
			log.Printf("order error (req=%s): %v", reqID, err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	writeJSON(w, http.StatusOK, CreateOrderResp{Success: true, Simulated: res.Simulated})
}
