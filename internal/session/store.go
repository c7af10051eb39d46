package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/cargohost/backend/pkg/crypto"
)

// Store is a browser-local key/value store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string)
}

// MemoryStore is a Store backed by a map. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

// cookieMaxAge keeps the entry around until logout, like local storage.
const cookieMaxAge = 365 * 24 * time.Hour

// CookieStore keeps each key in its own sealed cookie. It is bound to a single
// request/response pair.
type CookieStore struct {
	w      http.ResponseWriter
	r      *http.Request
	sealer *crypto.Sealer
	secure bool

	// writes made during this request, so Get sees them before the browser does
	pending map[string]*string
}

// CookieStores builds per-request CookieStores sharing one sealer.
type CookieStores struct {
	sealer *crypto.Sealer
	secure bool
}

// NewCookieStores creates a CookieStore factory. Secure marks cookies HTTPS-only.
func NewCookieStores(sealer *crypto.Sealer, secure bool) *CookieStores {
	return &CookieStores{sealer: sealer, secure: secure}
}

// For returns the store for one request.
func (f *CookieStores) For(w http.ResponseWriter, r *http.Request) Store {
	return &CookieStore{w: w, r: r, sealer: f.sealer, secure: f.secure, pending: make(map[string]*string)}
}

// Get returns the opened value of the cookie named key. Values that fail to
// open are reported as absent.
func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	c, err := s.r.Cookie(key)
	if err != nil || c.Value == "" {
		return "", false
	}
	plain, err := s.sealer.Open(key, c.Value)
	if err != nil {
		return "", false
	}
	return string(plain), true
}

func (s *CookieStore) Set(key, value string) error {
	sealed, err := s.sealer.Seal(key, []byte(value))
	if err != nil {
		return err
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    sealed,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.pending[key] = &value
	return nil
}

func (s *CookieStore) Delete(key string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.pending[key] = nil
}
