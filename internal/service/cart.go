package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/nikolayk812/kazprice/internal/port"
)

type RemoveStatus string

const (
	LineRemoved  RemoveStatus = "removed"
	LineNotFound RemoveStatus = "not_found"
)

// CartService applies cart mutations and prices the result.
// Callers pass a copy of the session cart and persist it only when no error is returned.
type CartService struct {
	prices port.PriceIndex
}

func NewCartService(prices port.PriceIndex) (*CartService, error) {
	if prices == nil {
		return nil, fmt.Errorf("prices is nil")
	}
	return &CartService{prices: prices}, nil
}

// Add returns the new item count.
func (s *CartService) Add(cart *domain.Cart, productID int64, qty int) (int, error) {
	if err := cart.Add(productID, qty); err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}

func (s *CartService) SetQuantity(ctx context.Context, cart *domain.Cart, productID int64, qty int) (domain.CartTotals, error) {
	if err := cart.SetQuantity(productID, qty); err != nil {
		return domain.CartTotals{}, err
	}

	totals, err := computeTotals(ctx, s.prices, cart, productID)
	if err != nil {
		return domain.CartTotals{}, fmt.Errorf("computeTotals: %w", err)
	}

	return totals, nil
}

func (s *CartService) Remove(ctx context.Context, cart *domain.Cart, productID int64) (RemoveStatus, domain.CartTotals, error) {
	status := LineNotFound
	if cart.Remove(productID) {
		status = LineRemoved
	}

	totals, err := computeTotals(ctx, s.prices, cart, 0)
	if err != nil {
		return "", domain.CartTotals{}, fmt.Errorf("computeTotals: %w", err)
	}

	return status, totals, nil
}

func (s *CartService) Clear(cart *domain.Cart) int {
	cart.Clear()
	return 0
}

func (s *CartService) Totals(ctx context.Context, cart *domain.Cart) (domain.CartTotals, error) {
	totals, err := computeTotals(ctx, s.prices, cart, 0)
	if err != nil {
		return domain.CartTotals{}, fmt.Errorf("computeTotals: %w", err)
	}
	return totals, nil
}

// Lines returns the resolved cart lines and the cart total.
func (s *CartService) Lines(ctx context.Context, cart *domain.Cart) ([]domain.CartLine, int64, error) {
	lines, total, err := priceCart(ctx, s.prices, cart)
	if err != nil {
		return nil, 0, fmt.Errorf("priceCart: %w", err)
	}
	return lines, total, nil
}
