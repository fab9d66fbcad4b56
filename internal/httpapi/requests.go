package httpapi

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/spf13/cast"
)

// cartItemRequest accepts ids and quantities as JSON numbers or numeric strings.
type cartItemRequest struct {
	ProductID any `json:"product_id"`
	Quantity  any `json:"quantity"`
}

type cartItemInput struct {
	ProductID int64
	Quantity  int
}

// validate uses defaultQty when quantity is absent.
func (r cartItemRequest) validate(defaultQty int) (cartItemInput, error) {
	id, err := parseID("product_id", r.ProductID)
	if err != nil {
		return cartItemInput{}, err
	}
	if id == 0 {
		return cartItemInput{}, domain.NewValidationError("product_id", "missing product_id")
	}

	qty, err := parseQuantity(r.Quantity, defaultQty)
	if err != nil {
		return cartItemInput{}, err
	}

	return cartItemInput{ProductID: id, Quantity: qty}, nil
}

type favoriteRequest struct {
	ProductID any `json:"product_id"`
}

func (r favoriteRequest) validate() (int64, error) {
	id, err := parseID("product_id", r.ProductID)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, domain.NewValidationError("product_id", "missing product_id")
	}
	return id, nil
}

type paymentRequest struct {
	CardID any `json:"card_id"`
}

// validate returns 0 for a missing card so that cart preconditions are checked first.
func (r paymentRequest) validate() (int64, error) {
	return parseID("card_id", r.CardID)
}

// parseID returns 0 for an absent value.
func parseID(field string, v any) (int64, error) {
	if s, ok := v.(string); v == nil || ok && strings.TrimSpace(s) == "" {
		return 0, nil
	}

	id, err := toInt64(v)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be an integer")
	}
	if id <= 0 {
		return 0, domain.NewValidationError(field, "must be positive")
	}
	return id, nil
}

// parseQuantity truncates fractional numbers toward zero.
func parseQuantity(v any, defaultQty int) (int, error) {
	if v == nil {
		return defaultQty, nil
	}

	qty, err := toInt64(v)
	if err != nil {
		return 0, domain.NewValidationError("quantity", "must be an integer")
	}
	if qty > domain.MaxQuantity || qty < -domain.MaxQuantity {
		return 0, domain.NewValidationError("quantity", fmt.Sprintf("must not exceed %d", domain.MaxQuantity))
	}
	return int(qty), nil
}

// toInt64 reads strings as base 10 and rejects floats outside the int64 range.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case bool:
		return 0, fmt.Errorf("bool[%t] is not an integer", n)
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	case float64:
		if math.IsNaN(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, fmt.Errorf("number[%g] is out of range", n)
		}
		return int64(n), nil
	default:
		return cast.ToInt64E(v)
	}
}

func parsePathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("product_id", "invalid product id")
	}
	return id, nil
}
