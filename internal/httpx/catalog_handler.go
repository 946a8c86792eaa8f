package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/misoniwath/Omega-coffee-order/internal/catalog"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/api/catalog", h.getCatalog)
}

func (h *CatalogHandler) getCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, http.StatusOK, h.Catalog.Menu())
}
