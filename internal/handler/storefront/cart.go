package storefront

import (
	"encoding/json"
	"net/http"

	"github.com/tessvale/embla/internal/domain"
	"github.com/tessvale/embla/internal/handler"
	"github.com/tessvale/embla/internal/service"
	"github.com/tessvale/embla/internal/session"
)

// CartHandler handles all cart routes. Carts are session-scoped values; the
// handler reads the current cart, applies a pure transition, and writes back.
type CartHandler struct {
	store   *session.CartStore
	catalog service.CatalogService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store *session.CartStore, catalog service.CatalogService) *CartHandler {
	return &CartHandler{
		store:   store,
		catalog: catalog,
	}
}

type cartAddRequest struct {
	ProductID string                 `json:"productId"`
	Product   *domain.DisplayProduct `json:"product"`
	Quantity  int                    `json:"quantity"`
}

type cartUpdateRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type cartRemoveRequest struct {
	ProductID string `json:"productId"`
}

// View handles GET /api/cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	sessionID := h.store.SessionID(w, r)
	cart := h.store.Get(sessionID)
	h.respondCart(w, cart)
}

// Add handles POST /api/cart/add.
// The client may send the full product (as returned by the catalog) or just
// a productId, which is resolved against the live catalog.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req cartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("cart.add", "Invalid request body"))
		return
	}

	product := req.Product
	if product == nil {
		if req.ProductID == "" {
			handler.ErrorResponse(w, r, domain.Invalid("cart.add", "Missing product"))
			return
		}
		found, ok := h.lookupProduct(r, req.ProductID)
		if !ok {
			handler.ErrorResponse(w, r, domain.NotFound("cart.add", "product", req.ProductID))
			return
		}
		product = &found
	}
	if product.ID == "" {
		handler.ErrorResponse(w, r, domain.Invalid("cart.add", "Missing product id"))
		return
	}
	if product.IsSoldOut {
		handler.ErrorResponse(w, r, domain.Errorf(domain.ECONFLICT, "cart.add", "Product is sold out"))
		return
	}

	sessionID := h.store.SessionID(w, r)
	cart := h.store.Get(sessionID).Add(*product, req.Quantity)
	h.store.Put(sessionID, cart)

	h.respondCart(w, cart)
}

// Update handles POST /api/cart/update
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req cartUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("cart.update", "Invalid request body"))
		return
	}
	if req.ProductID == "" {
		handler.ErrorResponse(w, r, domain.Invalid("cart.update", "Missing product id"))
		return
	}

	sessionID := h.store.SessionID(w, r)
	cart := h.store.Get(sessionID).UpdateQuantity(req.ProductID, req.Quantity)
	h.store.Put(sessionID, cart)

	h.respondCart(w, cart)
}

// Remove handles POST /api/cart/remove
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req cartRemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("cart.remove", "Invalid request body"))
		return
	}
	if req.ProductID == "" {
		handler.ErrorResponse(w, r, domain.Invalid("cart.remove", "Missing product id"))
		return
	}

	sessionID := h.store.SessionID(w, r)
	cart := h.store.Get(sessionID).Remove(req.ProductID)
	h.store.Put(sessionID, cart)

	h.respondCart(w, cart)
}

// Clear handles POST /api/cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := h.store.SessionID(w, r)
	cart := h.store.Get(sessionID).Clear()
	h.store.Put(sessionID, cart)

	h.respondCart(w, cart)
}

func (h *CartHandler) respondCart(w http.ResponseWriter, cart domain.Cart) {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	handler.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": cart.Count(),
		"total": cart.Total(),
	})
}

func (h *CartHandler) lookupProduct(r *http.Request, productID string) (domain.DisplayProduct, bool) {
	for _, p := range h.catalog.ListProducts(r.Context()) {
		if p.ID == productID {
			return p, true
		}
	}
	return domain.DisplayProduct{}, false
}
