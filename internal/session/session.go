package session

import (
	"encoding/gob"
	"net/http"

	"storefront/internal/cart"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "storefront_session"
	cartKey     = "cart"
)

func init() {
	gob.Register([]cart.Entry{})
}

// Store keeps the visitor's cart and one-time flash notices in a
// signed session cookie.
type Store struct {
	cookies *sessions.CookieStore
}

func New(secret string) *Store {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Store{
		cookies: cs,
	}
}

// Cart returns the visitor's cart, empty on first access or when the
// cookie does not decode.
func (s *Store) Cart(r *http.Request) *cart.Cart {
	sess, _ := s.cookies.Get(r, sessionName)

	entries, ok := sess.Values[cartKey].([]cart.Entry)
	if !ok {
		return cart.New()
	}

	return &cart.Cart{Entries: entries}
}

// SaveCart persists the cart back into the session cookie.
func (s *Store) SaveCart(w http.ResponseWriter, r *http.Request, c *cart.Cart) error {
	sess, _ := s.cookies.Get(r, sessionName)
	sess.Values[cartKey] = c.Entries
	return sess.Save(r, w)
}

// ClearCart drops the cart from the session entirely.
func (s *Store) ClearCart(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, sessionName)
	delete(sess.Values, cartKey)
	return sess.Save(r, w)
}

// Flash queues a one-time notice for the next rendered page.
func (s *Store) Flash(w http.ResponseWriter, r *http.Request, msg string) error {
	sess, _ := s.cookies.Get(r, sessionName)
	sess.AddFlash(msg)
	return sess.Save(r, w)
}

// Flashes reads and clears all queued notices.
func (s *Store) Flashes(w http.ResponseWriter, r *http.Request) []string {
	sess, _ := s.cookies.Get(r, sessionName)

	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
