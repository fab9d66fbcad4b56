package session

import (
	"encoding/gob"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const (
	keyUserID    = "user_id"
	keyCart      = "cart"
	keyFavorites = "favorites"
)

func init() {
	gob.Register(map[string]int{})
	gob.Register([]int64{})
}

type Options struct {
	Name     string
	Secret   string
	MaxAge   int
	Secure   bool
	HTTPOnly bool
}

// Store keeps per-user state in a signed cookie.
type Store struct {
	name    string
	backend sessions.Store
}

func NewCookieStore(opts Options) (*Store, error) {
	if len(opts.Secret) < 16 {
		return nil, fmt.Errorf("session secret must be at least 16 bytes")
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("session name is empty")
	}

	cs := sessions.NewCookieStore([]byte(opts.Secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		Secure:   opts.Secure,
		HttpOnly: opts.HTTPOnly,
		SameSite: http.SameSiteLaxMode,
	}
	cs.MaxAge(opts.MaxAge)

	return &Store{name: opts.Name, backend: cs}, nil
}

func (s *Store) Middleware() echo.MiddlewareFunc {
	return echosession.Middleware(s.backend)
}

// Open returns the session of the request. Middleware must be installed.
func (s *Store) Open(c echo.Context) (*Session, error) {
	raw, err := echosession.Get(s.name, c)
	if raw == nil {
		return nil, fmt.Errorf("session.Get: %w", err)
	}
	// an undecodable cookie still yields a fresh session alongside the error
	if err != nil {
		zap.L().Warn("session cookie rejected",
			zap.String("session", s.name),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err))
	}
	return &Session{raw: raw}, nil
}

// Session is the typed view over the cookie values.
type Session struct {
	raw *sessions.Session
}

// UserID reports the authenticated user, if any.
func (s *Session) UserID() (int64, bool) {
	v, ok := s.raw.Values[keyUserID]
	if !ok {
		return 0, false
	}
	id, err := cast.ToInt64E(v)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Session) SetUserID(id int64) {
	s.raw.Values[keyUserID] = id
}

// Cart returns a copy of the stored cart; mutations take effect only through PutCart.
func (s *Session) Cart() *domain.Cart {
	m, _ := s.raw.Values[keyCart].(map[string]int)
	return domain.CartFromMap(m)
}

// PutCart replaces the whole stored cart.
func (s *Session) PutCart(cart *domain.Cart) {
	s.raw.Values[keyCart] = cart.Map()
}

func (s *Session) Favorites() *domain.Favorites {
	ids, _ := s.raw.Values[keyFavorites].([]int64)
	return domain.NewFavorites(ids...)
}

func (s *Session) PutFavorites(favs *domain.Favorites) {
	s.raw.Values[keyFavorites] = favs.IDs()
}

func (s *Session) Save(c echo.Context) error {
	if err := s.raw.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("raw.Save: %w", err)
	}
	return nil
}
