package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nikolayk812/kazprice/internal/port"
	"github.com/nikolayk812/kazprice/internal/service"
	"github.com/nikolayk812/kazprice/internal/session"
	"go.uber.org/zap"
)

// Pinger reports store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Services struct {
	Prices    port.PriceIndex
	Carts     *service.CartService
	Favorites *service.FavoritesService
	Payments  *service.PaymentService
}

type handler struct {
	sessions *session.Store
	Services
	pinger Pinger
}

func NewServer(sessions *session.Store, services Services, pinger Pinger) (*echo.Echo, error) {
	if sessions == nil {
		return nil, fmt.Errorf("sessions is nil")
	}
	if services.Prices == nil || services.Carts == nil || services.Favorites == nil || services.Payments == nil {
		return nil, fmt.Errorf("services are incomplete")
	}

	h := &handler{
		sessions: sessions,
		Services: services,
		pinger:   pinger,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	e.Use(sessions.Middleware())

	e.GET("/healthz", h.health)
	e.GET("/products", h.listProducts)

	e.GET("/cart", h.viewCart)
	e.POST("/add_to_cart", h.addToCart)
	e.POST("/update_cart_quantity", h.updateCartQuantity)
	e.POST("/remove_from_cart/:product_id", h.removeFromCart)
	e.POST("/clear_cart", h.clearCart)

	e.GET("/favorites", h.viewFavorites)
	e.POST("/toggle_favorite", h.toggleFavorite)
	e.POST("/toggle_favorite/:product_id", h.toggleFavoriteByID)
	e.POST("/remove_favorite/:product_id", h.removeFavorite)

	e.GET("/checkout", h.checkout)
	e.GET("/payment", h.paymentOptions)
	e.POST("/process_payment", h.processPayment)

	return e, nil
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				zap.L().Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			zap.L().Info("request", fields...)
			return nil
		},
	})
}

func (h *handler) health(c echo.Context) error {
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Request().Context()); err != nil {
			zap.L().Error("health check failed", zap.Error(err))
			return fail(c, http.StatusServiceUnavailable, "store_unavailable", "store unavailable")
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) listProducts(c echo.Context) error {
	sess, err := h.sessions.Open(c)
	if err != nil {
		return respondError(c, err)
	}

	products, err := h.Prices.ListProducts(c.Request().Context())
	if err != nil {
		return respondError(c, fmt.Errorf("prices.ListProducts: %w", err))
	}

	cart := sess.Cart()
	favs := sess.Favorites()

	items := make([]catalogItemResponse, 0, len(products))
	for _, p := range products {
		items = append(items, catalogItemResponse{
			productResponse: toProductResponse(p),
			IsFavorite:      favs.Contains(p.ID),
			InCart:          cart.Quantity(p.ID),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"products":   items,
		"cart_count": cart.ItemCount(),
	})
}
