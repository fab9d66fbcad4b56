package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/kazprice/internal/domain"
	"go.uber.org/zap"
)

type errorResponse struct {
	Status  string `json:"status"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
	// Redirect tells the client where to continue, for guidance rejections.
	Redirect string `json:"redirect,omitempty"`
}

type productResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       *int64 `json:"price"`
}

type catalogItemResponse struct {
	productResponse
	IsFavorite bool `json:"is_favorite"`
	InCart     int  `json:"in_cart"`
}

type cartLineResponse struct {
	productResponse
	Quantity  int   `json:"quantity"`
	LineTotal int64 `json:"line_total"`
}

type cardResponse struct {
	ID        int64     `json:"id"`
	CardName  string    `json:"card_name"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.BestPrice,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	result := make([]productResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}
	return result
}

func toCartLineResponses(lines []domain.CartLine) []cartLineResponse {
	result := make([]cartLineResponse, 0, len(lines))
	for _, l := range lines {
		result = append(result, cartLineResponse{
			productResponse: toProductResponse(l.Product),
			Quantity:        l.Quantity,
			LineTotal:       l.LineTotal,
		})
	}
	return result
}

func toCardResponses(cards []domain.Card) []cardResponse {
	result := make([]cardResponse, 0, len(cards))
	for _, card := range cards {
		result = append(result, cardResponse{
			ID:        card.ID,
			CardName:  card.Name,
			Balance:   card.Balance,
			CreatedAt: card.CreatedAt,
		})
	}
	return result
}

func fail(c echo.Context, status int, reason, message string) error {
	return c.JSON(status, errorResponse{
		Status:  "error",
		Reason:  reason,
		Message: message,
	})
}

// respondError maps domain failures to their boundary status; anything else is a 500.
func respondError(c echo.Context, err error) error {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return fail(c, http.StatusBadRequest, "invalid_request", validationErr.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		return fail(c, http.StatusUnauthorized, "unauthenticated", "login required")
	case errors.Is(err, domain.ErrEmptyCart):
		return fail(c, http.StatusBadRequest, "empty_cart", "cart is empty")
	case errors.Is(err, domain.ErrCardNotFound):
		return fail(c, http.StatusNotFound, "card_not_found", "card not found")
	case errors.Is(err, domain.ErrInsufficientFunds):
		return fail(c, http.StatusBadRequest, "insufficient_funds", "insufficient funds")
	case errors.Is(err, domain.ErrAmountOverflow):
		return fail(c, http.StatusBadRequest, "invalid_request", "cart total is out of range")
	}

	zap.L().Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Error(err))
	return fail(c, http.StatusInternalServerError, "internal_error", "internal error")
}

// redirectToCart is the guidance answer for view endpoints hit with an empty cart.
func redirectToCart(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderLocation, "/cart")
	return c.JSON(http.StatusSeeOther, errorResponse{
		Status:   "error",
		Reason:   "empty_cart",
		Message:  "cart is empty",
		Redirect: "/cart",
	})
}

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		_ = fail(c, he.Code, "http_error", msg)
		return
	}

	_ = respondError(c, err)
}
