package storefront

import (
	"net/http"

	"github.com/tessvale/embla/internal/domain"
	"github.com/tessvale/embla/internal/handler"
	"github.com/tessvale/embla/internal/service"
)

// CatalogHandler serves the merged product catalog
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /api/products
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.ListProducts(r.Context())

	handler.NoStore(w)
	handler.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

// Variants handles GET /api/products/{id}/variants
func (h *CatalogHandler) Variants(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		handler.ErrorResponse(w, r, domain.Invalid("catalog.variants", "Missing product id"))
		return
	}

	detail, err := h.catalog.GetProductVariants(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.NoStore(w)
	handler.JSONResponse(w, http.StatusOK, detail)
}
