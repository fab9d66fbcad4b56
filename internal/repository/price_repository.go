package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/kazprice/internal/db"
	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/nikolayk812/kazprice/internal/port"
)

type priceRepository struct {
	q *db.Queries
}

func NewPriceIndex(pool *pgxpool.Pool) (port.PriceIndex, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &priceRepository{
		q: db.New(pool),
	}, nil
}

func (r *priceRepository) GetProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.q.GetProductsWithBestPrice(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("q.GetProductsWithBestPrice: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapProductToDomain(row.ID, row.Name, row.Description, row.ImageUrl, row.BestPrice))
	}

	return products, nil
}

func (r *priceRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProductsWithBestPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProductsWithBestPrice: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapProductToDomain(row.ID, row.Name, row.Description, row.ImageUrl, row.BestPrice))
	}

	return products, nil
}

func mapProductToDomain(id int64, name, description, imageURL string, bestPrice pgtype.Int8) domain.Product {
	p := domain.Product{
		ID:          id,
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
	}
	if bestPrice.Valid {
		price := bestPrice.Int64
		p.BestPrice = &price
	}
	return p
}
