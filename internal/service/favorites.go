package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/nikolayk812/kazprice/internal/port"
)

type FavoritesService struct {
	prices port.PriceIndex
}

func NewFavoritesService(prices port.PriceIndex) (*FavoritesService, error) {
	if prices == nil {
		return nil, fmt.Errorf("prices is nil")
	}
	return &FavoritesService{prices: prices}, nil
}

func (s *FavoritesService) Toggle(favs *domain.Favorites, productID int64) domain.FavoriteStatus {
	return favs.Toggle(productID)
}

func (s *FavoritesService) Remove(favs *domain.Favorites, productID int64) domain.FavoriteStatus {
	return favs.Remove(productID)
}

// List resolves the favorites against the price index, skipping unknown products.
func (s *FavoritesService) List(ctx context.Context, favs *domain.Favorites) ([]domain.Product, error) {
	if favs.Len() == 0 {
		return nil, nil
	}

	products, err := s.prices.GetProducts(ctx, favs.IDs())
	if err != nil {
		return nil, fmt.Errorf("prices.GetProducts: %w", err)
	}

	return products, nil
}
