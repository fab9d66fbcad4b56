package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/nikolayk812/kazprice/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()

	store, err := session.NewCookieStore(session.Options{
		Name:     "kazprice",
		Secret:   "0123456789abcdef0123456789abcdef",
		MaxAge:   3600,
		HTTPOnly: true,
	})
	require.NoError(t, err)
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	store := newStore(t)

	e := echo.New()
	e.Use(store.Middleware())
	e.POST("/write", func(c echo.Context) error {
		sess, err := store.Open(c)
		if err != nil {
			return err
		}
		cart := sess.Cart()
		cart.Add(11, 2)
		cart.Add(22, 1)
		sess.PutCart(cart)
		sess.PutFavorites(domain.NewFavorites(3, 5))
		sess.SetUserID(42)
		if err := sess.Save(c); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/read", func(c echo.Context) error {
		sess, err := store.Open(c)
		if err != nil {
			return err
		}
		userID, ok := sess.UserID()
		return c.JSON(http.StatusOK, map[string]any{
			"user_id":       userID,
			"authenticated": ok,
			"cart":          sess.Cart().Map(),
			"favorites":     sess.Favorites().IDs(),
		})
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/write", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"user_id": 42,
		"authenticated": true,
		"cart": {"11": 2, "22": 1},
		"favorites": [3, 5]
	}`, rec.Body.String())
}

func TestStore_EmptySession(t *testing.T) {
	store := newStore(t)

	e := echo.New()
	e.Use(store.Middleware())
	e.GET("/", func(c echo.Context) error {
		sess, err := store.Open(c)
		if err != nil {
			return err
		}
		_, ok := sess.UserID()
		assert.False(t, ok)
		assert.True(t, sess.Cart().IsEmpty())
		assert.Zero(t, sess.Favorites().Len())
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStore_TamperedCookieYieldsFreshSession(t *testing.T) {
	store := newStore(t)

	e := echo.New()
	e.Use(store.Middleware())
	e.GET("/", func(c echo.Context) error {
		sess, err := store.Open(c)
		if err != nil {
			return err
		}
		_, ok := sess.UserID()
		assert.False(t, ok)
		return c.NoContent(http.StatusOK)
	})

	core, logs := observer.New(zap.WarnLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "kazprice", Value: "forged"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	entries := logs.FilterMessage("session cookie rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "kazprice", entries[0].ContextMap()["session"])
	assert.Equal(t, "/", entries[0].ContextMap()["path"])
}

func TestStore_NoCookieLogsNothing(t *testing.T) {
	store := newStore(t)

	e := echo.New()
	e.Use(store.Middleware())
	e.GET("/", func(c echo.Context) error {
		_, err := store.Open(c)
		return err
	})

	core, logs := observer.New(zap.DebugLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, logs.Len())
}

func TestNewCookieStore_Validation(t *testing.T) {
	_, err := session.NewCookieStore(session.Options{Name: "kazprice", Secret: "short"})
	require.EqualError(t, err, "session secret must be at least 16 bytes")

	_, err = session.NewCookieStore(session.Options{Secret: "0123456789abcdef"})
	require.EqualError(t, err, "session name is empty")
}
