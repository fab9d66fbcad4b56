package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/nikolayk812/kazprice/internal/port"
)

// priceCart resolves the cart against the index and returns the priced lines in id order.
// Products missing from the index are left out and contribute nothing to the total.
// A total outside the int64 range is ErrAmountOverflow, never a wrapped value.
func priceCart(ctx context.Context, prices port.PriceIndex, cart *domain.Cart) ([]domain.CartLine, int64, error) {
	if cart.IsEmpty() {
		return nil, 0, nil
	}

	products, err := prices.GetProducts(ctx, cart.ProductIDs())
	if err != nil {
		return nil, 0, fmt.Errorf("prices.GetProducts: %w", err)
	}

	var (
		lines = make([]domain.CartLine, 0, len(products))
		total int64
	)
	for _, p := range products {
		qty := cart.Quantity(p.ID)
		if qty <= 0 {
			continue
		}
		lineTotal, err := domain.MulAmount(p.Price(), qty)
		if err != nil {
			return nil, 0, fmt.Errorf("product[%d]: %w", p.ID, err)
		}
		if total, err = domain.AddAmounts(total, lineTotal); err != nil {
			return nil, 0, fmt.Errorf("cart total: %w", err)
		}
		lines = append(lines, domain.CartLine{
			Product:   p,
			Quantity:  qty,
			LineTotal: lineTotal,
		})
	}

	return lines, total, nil
}

// computeTotals prices the cart; touched selects the line whose total is reported, 0 for none.
func computeTotals(ctx context.Context, prices port.PriceIndex, cart *domain.Cart, touched int64) (domain.CartTotals, error) {
	lines, total, err := priceCart(ctx, prices, cart)
	if err != nil {
		return domain.CartTotals{}, err
	}

	totals := domain.CartTotals{
		Total:     total,
		ItemCount: cart.ItemCount(),
	}
	for _, line := range lines {
		if line.Product.ID == touched {
			totals.LineTotal = line.LineTotal
		}
	}

	return totals, nil
}
