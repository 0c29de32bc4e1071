package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/cart"
	"storefront/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carryCookies(t *testing.T, rec *httptest.ResponseRecorder, req *http.Request) {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
}

func TestCart_FirstAccessIsEmpty(t *testing.T) {
	store := session.New("test-secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	c := store.Cart(req)
	assert.True(t, c.IsEmpty())
}

func TestCart_SaveAndReload(t *testing.T) {
	store := session.New("test-secret")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	c := store.Cart(req)
	c.Add("1")
	c.Add("1")
	c.Add("2")
	require.NoError(t, store.SaveCart(rec, req, c))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	carryCookies(t, rec, next)

	reloaded := store.Cart(next)
	assert.Equal(t, []cart.Entry{
		{ProductId: "1", Qty: 2},
		{ProductId: "2", Qty: 1},
	}, reloaded.Entries)
}

func TestClearCart(t *testing.T) {
	store := session.New("test-secret")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	c := store.Cart(req)
	c.Add("1")
	require.NoError(t, store.SaveCart(rec, req, c))

	next := httptest.NewRequest(http.MethodPost, "/", nil)
	carryCookies(t, rec, next)
	rec2 := httptest.NewRecorder()
	require.NoError(t, store.ClearCart(rec2, next))

	last := httptest.NewRequest(http.MethodGet, "/", nil)
	carryCookies(t, rec2, last)
	assert.True(t, store.Cart(last).IsEmpty())
}

func TestFlashes_ReadOnce(t *testing.T) {
	store := session.New("test-secret")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, store.Flash(rec, req, "Ürün sepete eklendi."))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	carryCookies(t, rec, next)
	rec2 := httptest.NewRecorder()

	assert.Equal(t, []string{"Ürün sepete eklendi."}, store.Flashes(rec2, next))

	// consumed: the follow-up request sees nothing
	last := httptest.NewRequest(http.MethodGet, "/", nil)
	carryCookies(t, rec2, last)
	assert.Nil(t, store.Flashes(httptest.NewRecorder(), last))
}

func TestCart_GarbageCookieFallsBackToEmpty(t *testing.T) {
	store := session.New("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "bozuk"})

	assert.True(t, store.Cart(req).IsEmpty())
}
