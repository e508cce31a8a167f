// Package session keys a shopper's cart to a session cookie. Carts live in
// process memory only: the store is a convenience for the API surface, and
// losing it on restart mirrors the cart-in-browser-memory contract.
package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tessvale/embla/internal/domain"
)

// CookieName is the session cookie carrying the cart key.
const CookieName = "embla_session"

const cookieMaxAge = int(30 * 24 * time.Hour / time.Second)

// CartStore holds per-session carts.
type CartStore struct {
	mu     sync.RWMutex
	carts  map[string]domain.Cart
	secure bool
}

// NewCartStore creates an empty cart store. Set secure for HTTPS deployments.
func NewCartStore(secure bool) *CartStore {
	return &CartStore{
		carts:  make(map[string]domain.Cart),
		secure: secure,
	}
}

// Get returns the cart for a session id. Unknown ids yield an empty cart.
func (s *CartStore) Get(sessionID string) domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[sessionID]
}

// Put stores the cart for a session id. Empty carts are dropped from the map.
func (s *CartStore) Put(sessionID string, cart domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(cart.Items) == 0 {
		delete(s.carts, sessionID)
		return
	}
	s.carts[sessionID] = cart
}

// SessionID returns the request's session id, minting a new one (and setting
// the cookie) when the request has none.
func (s *CartStore) SessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}

	sessionID := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID
}
