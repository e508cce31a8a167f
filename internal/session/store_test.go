package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessvale/embla/internal/domain"
)

func TestGetUnknownSessionReturnsEmptyCart(t *testing.T) {
	store := NewCartStore(false)

	cart := store.Get("nope")

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.Count())
}

func TestPutAndGet(t *testing.T) {
	store := NewCartStore(false)
	cart := domain.Cart{}.Add(domain.DisplayProduct{ID: "printful-101", Price: 25}, 2)

	store.Put("s1", cart)

	got := store.Get("s1")
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Count())
}

func TestPutEmptyCartDropsSession(t *testing.T) {
	store := NewCartStore(false)
	cart := domain.Cart{}.Add(domain.DisplayProduct{ID: "printful-101"}, 1)
	store.Put("s1", cart)

	store.Put("s1", cart.Clear())

	store.mu.RLock()
	_, exists := store.carts["s1"]
	store.mu.RUnlock()
	assert.False(t, exists)
}

func TestSessionIDMintsCookie(t *testing.T) {
	store := NewCartStore(true)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	id := store.SessionID(rec, req)

	require.NotEmpty(t, id)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, id, c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestSessionIDReusesCookie(t *testing.T) {
	store := NewCartStore(false)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "existing-session"})
	rec := httptest.NewRecorder()

	id := store.SessionID(rec, req)

	assert.Equal(t, "existing-session", id)
	assert.Empty(t, rec.Result().Cookies())
}
