package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/nikolayk812/kazprice/internal/service"
	"github.com/nikolayk812/kazprice/internal/session"
)

type checkoutResponse struct {
	Products     []cartLineResponse `json:"products"`
	CartTotal    int64              `json:"cart_total"`
	DeliveryCost int64              `json:"delivery_cost"`
	TotalAmount  int64              `json:"total_amount"`
	Currency     string             `json:"currency"`
}

type paymentOptionsResponse struct {
	checkoutResponse
	Cards []cardResponse `json:"cards"`
}

type paymentResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	ReceiptID  string `json:"receipt_id"`
	NewBalance int64  `json:"new_balance"`
	TotalPaid  int64  `json:"total_paid"`
	Currency   string `json:"currency"`
}

func toCheckoutResponse(s service.CheckoutSummary) checkoutResponse {
	return checkoutResponse{
		Products:     toCartLineResponses(s.Lines),
		CartTotal:    s.CartTotal.Amount,
		DeliveryCost: s.DeliveryCost.Amount,
		TotalAmount:  s.TotalAmount.Amount,
		Currency:     s.TotalAmount.Currency.String(),
	}
}

// requireUser opens the session and rejects anonymous requests.
func (h *handler) requireUser(c echo.Context) (*session.Session, int64, error) {
	sess, err := h.sessions.Open(c)
	if err != nil {
		return nil, 0, err
	}
	userID, ok := sess.UserID()
	if !ok {
		return nil, 0, domain.ErrUnauthenticated
	}
	return sess, userID, nil
}

func (h *handler) checkout(c echo.Context) error {
	sess, userID, err := h.requireUser(c)
	if err != nil {
		return respondError(c, err)
	}

	summary, err := h.Payments.Checkout(c.Request().Context(), userID, sess.Cart())
	if errors.Is(err, domain.ErrEmptyCart) {
		return redirectToCart(c)
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toCheckoutResponse(summary))
}

func (h *handler) paymentOptions(c echo.Context) error {
	sess, userID, err := h.requireUser(c)
	if err != nil {
		return respondError(c, err)
	}

	opts, err := h.Payments.Options(c.Request().Context(), userID, sess.Cart())
	if errors.Is(err, domain.ErrEmptyCart) {
		return redirectToCart(c)
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, paymentOptionsResponse{
		checkoutResponse: toCheckoutResponse(opts.CheckoutSummary),
		Cards:            toCardResponses(opts.Cards),
	})
}

func (h *handler) processPayment(c echo.Context) error {
	sess, userID, err := h.requireUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid_request", "malformed body")
	}
	cardID, err := req.validate()
	if err != nil {
		return respondError(c, err)
	}

	cart := sess.Cart()
	receipt, err := h.Payments.Pay(c.Request().Context(), userID, cardID, cart)
	if err != nil {
		return respondError(c, err)
	}

	// the card is already debited, a failed cookie write only leaves a stale cart
	if err := h.saveCart(c, sess, cart); err != nil {
		return respondError(c, fmt.Errorf("receipt[%s]: %w", receipt.ID, err))
	}

	return c.JSON(http.StatusOK, paymentResponse{
		Status:     "success",
		Message:    "payment completed",
		ReceiptID:  receipt.ID.String(),
		NewBalance: receipt.NewBalance,
		TotalPaid:  receipt.Charged.Amount,
		Currency:   receipt.Charged.Currency.String(),
	})
}
