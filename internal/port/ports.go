package port

import (
	"context"

	"github.com/nikolayk812/kazprice/internal/domain"
)

// PriceIndex resolves products together with their best price.
type PriceIndex interface {
	// GetProducts returns the products among ids that exist; missing ids are absent from the result.
	GetProducts(ctx context.Context, ids []int64) ([]domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type CardRepository interface {
	ListCards(ctx context.Context, userID int64) ([]domain.Card, error)
	// Debit atomically subtracts amount from the card owned by userID and returns the new balance.
	// It fails with domain.ErrCardNotFound or domain.ErrInsufficientFunds without mutating anything.
	Debit(ctx context.Context, cardID, userID, amount int64) (int64, error)
}
