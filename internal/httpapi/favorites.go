package httpapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/nikolayk812/kazprice/internal/session"
)

type toggleFavoriteResponse struct {
	Status domain.FavoriteStatus `json:"status"`
}

type favoriteSetResponse struct {
	Status    domain.FavoriteStatus `json:"status"`
	Favorites []int64               `json:"favorites"`
}

type removeFavoriteResponse struct {
	Status    domain.FavoriteStatus `json:"status"`
	ProductID int64                 `json:"product_id"`
}

func (h *handler) viewFavorites(c echo.Context) error {
	sess, err := h.sessions.Open(c)
	if err != nil {
		return respondError(c, err)
	}

	products, err := h.Favorites.List(c.Request().Context(), sess.Favorites())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"products": toProductResponses(products)})
}

func (h *handler) toggleFavorite(c echo.Context) error {
	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid_request", "malformed body")
	}
	productID, err := req.validate()
	if err != nil {
		return respondError(c, err)
	}

	favs, status, err := h.toggle(c, productID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, favoriteSetResponse{Status: status, Favorites: favs.IDs()})
}

func (h *handler) toggleFavoriteByID(c echo.Context) error {
	productID, err := parsePathID(c.Param("product_id"))
	if err != nil {
		return respondError(c, err)
	}

	_, status, err := h.toggle(c, productID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toggleFavoriteResponse{Status: status})
}

func (h *handler) removeFavorite(c echo.Context) error {
	productID, err := parsePathID(c.Param("product_id"))
	if err != nil {
		return respondError(c, err)
	}

	sess, err := h.sessions.Open(c)
	if err != nil {
		return respondError(c, err)
	}

	favs := sess.Favorites()
	status := h.Favorites.Remove(favs, productID)
	if status == domain.FavoriteNotFound {
		return c.JSON(http.StatusNotFound, removeFavoriteResponse{Status: status, ProductID: productID})
	}

	if err := saveFavorites(c, sess, favs); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, removeFavoriteResponse{Status: status, ProductID: productID})
}

func (h *handler) toggle(c echo.Context, productID int64) (*domain.Favorites, domain.FavoriteStatus, error) {
	sess, err := h.sessions.Open(c)
	if err != nil {
		return nil, "", err
	}

	favs := sess.Favorites()
	status := h.Favorites.Toggle(favs, productID)

	if err := saveFavorites(c, sess, favs); err != nil {
		return nil, "", err
	}

	return favs, status, nil
}

func saveFavorites(c echo.Context, sess *session.Session, favs *domain.Favorites) error {
	sess.PutFavorites(favs)
	if err := sess.Save(c); err != nil {
		return fmt.Errorf("sess.Save: %w", err)
	}
	return nil
}
