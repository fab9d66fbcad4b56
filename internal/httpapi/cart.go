package httpapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/nikolayk812/kazprice/internal/service"
	"github.com/nikolayk812/kazprice/internal/session"
)

type addToCartResponse struct {
	Status    string `json:"status"`
	CartCount int    `json:"cart_count"`
}

type updateCartResponse struct {
	Status       string `json:"status"`
	UpdatedPrice int64  `json:"updated_price"`
	UpdatedTotal int64  `json:"updated_total"`
	CartCount    int    `json:"cart_count"`
}

type removeFromCartResponse struct {
	Status       service.RemoveStatus `json:"status"`
	ProductID    int64                `json:"product_id"`
	UpdatedTotal int64                `json:"updated_total"`
	CartCount    int                  `json:"cart_count"`
}

type cartViewResponse struct {
	Products  []cartLineResponse `json:"products"`
	CartTotal int64              `json:"cart_total"`
	CartCount int                `json:"cart_count"`
}

func (h *handler) viewCart(c echo.Context) error {
	sess, err := h.sessions.Open(c)
	if err != nil {
		return respondError(c, err)
	}

	cart := sess.Cart()
	lines, total, err := h.Carts.Lines(c.Request().Context(), cart)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, cartViewResponse{
		Products:  toCartLineResponses(lines),
		CartTotal: total,
		CartCount: cart.ItemCount(),
	})
}

func (h *handler) addToCart(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid_request", "malformed body")
	}
	in, err := req.validate(1)
	if err != nil {
		return respondError(c, err)
	}

	sess, err := h.sessions.Open(c)
	if err != nil {
		return respondError(c, err)
	}

	cart := sess.Cart()
	count, err := h.Carts.Add(cart, in.ProductID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.saveCart(c, sess, cart); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, addToCartResponse{Status: "ok", CartCount: count})
}

func (h *handler) updateCartQuantity(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid_request", "malformed body")
	}
	in, err := req.validate(0)
	if err != nil {
		return respondError(c, err)
	}

	sess, err := h.sessions.Open(c)
	if err != nil {
		return respondError(c, err)
	}

	cart := sess.Cart()
	totals, err := h.Carts.SetQuantity(c.Request().Context(), cart, in.ProductID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.saveCart(c, sess, cart); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, updateCartResponse{
		Status:       "ok",
		UpdatedPrice: totals.LineTotal,
		UpdatedTotal: totals.Total,
		CartCount:    totals.ItemCount,
	})
}

func (h *handler) removeFromCart(c echo.Context) error {
	productID, err := parsePathID(c.Param("product_id"))
	if err != nil {
		return respondError(c, err)
	}

	sess, err := h.sessions.Open(c)
	if err != nil {
		return respondError(c, err)
	}

	cart := sess.Cart()
	status, totals, err := h.Carts.Remove(c.Request().Context(), cart, productID)
	if err != nil {
		return respondError(c, err)
	}

	if status == service.LineRemoved {
		if err := h.saveCart(c, sess, cart); err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(http.StatusOK, removeFromCartResponse{
		Status:       status,
		ProductID:    productID,
		UpdatedTotal: totals.Total,
		CartCount:    totals.ItemCount,
	})
}

func (h *handler) clearCart(c echo.Context) error {
	sess, err := h.sessions.Open(c)
	if err != nil {
		return respondError(c, err)
	}

	cart := sess.Cart()
	count := h.Carts.Clear(cart)

	if err := h.saveCart(c, sess, cart); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"status": "cleared", "cart_count": count})
}

// saveCart replaces the stored cart as a whole.
func (h *handler) saveCart(c echo.Context, sess *session.Session, cart *domain.Cart) error {
	sess.PutCart(cart)
	if err := sess.Save(c); err != nil {
		return fmt.Errorf("sess.Save: %w", err)
	}
	return nil
}
