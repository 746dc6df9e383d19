// Package session keeps an anonymous visitor identity in a signed, encrypted
// cookie so requests and live connections from one browser can be correlated.
package session

import (
	"encoding/gob"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

// CookieName is the name of the visitor cookie.
const CookieName = "sahayak_visitor"

func init() {
	gob.Register(uuid.UUID{})
	gob.Register(Visitor{})
}

// Visitor is the data stored in the cookie.
type Visitor struct {
	ID        uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store manages visitor cookies.
type Store struct {
	cookie *securecookie.SecureCookie
	maxAge int
	secure bool
}

// NewStore creates a new visitor store.
// The secret must be at least 64 bytes: first 32 for hash key, next 32 for block key.
func NewStore(secret string, maxAge time.Duration, secure bool) *Store {
	hashKey := []byte(secret)[:32]
	blockKey := []byte(secret)[32:64]

	cookie := securecookie.New(hashKey, blockKey)
	cookie.MaxAge(int(maxAge.Seconds()))

	return &Store{
		cookie: cookie,
		maxAge: int(maxAge.Seconds()),
		secure: secure,
	}
}

// Get reads the visitor from the request cookie.
func (s *Store) Get(r *http.Request) (*Visitor, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, err
	}

	var v Visitor
	if err := s.cookie.Decode(CookieName, cookie.Value, &v); err != nil {
		return nil, err
	}

	if time.Now().After(v.ExpiresAt) {
		return nil, http.ErrNoCookie
	}

	return &v, nil
}

// New creates a visitor with a fresh id and stores it in a cookie.
func (s *Store) New(w http.ResponseWriter) (*Visitor, error) {
	v := &Visitor{ID: uuid.New()}
	if err := s.Set(w, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Set stores the visitor in a cookie.
func (s *Store) Set(w http.ResponseWriter, v *Visitor) error {
	v.CreatedAt = time.Now()
	v.ExpiresAt = v.CreatedAt.Add(time.Duration(s.maxAge) * time.Second)

	encoded, err := s.cookie.Encode(CookieName, v)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
