package service_test

import (
	"testing"

	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/nikolayk812/kazprice/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesService(t *testing.T) {
	svc, err := service.NewFavoritesService(newPriceIndex(map[int64]int64{1: 100, 2: 200}))
	require.NoError(t, err)

	favs := domain.NewFavorites()

	assert.Equal(t, domain.FavoriteAdded, svc.Toggle(favs, 1))
	assert.Equal(t, domain.FavoriteAdded, svc.Toggle(favs, 3))
	assert.Equal(t, domain.FavoriteNotFound, svc.Remove(favs, 2))

	products, err := svc.List(t.Context(), favs)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)

	assert.Equal(t, domain.FavoriteRemoved, svc.Toggle(favs, 1))
	assert.Equal(t, domain.FavoriteRemoved, svc.Remove(favs, 3))

	products, err = svc.List(t.Context(), favs)
	require.NoError(t, err)
	assert.Empty(t, products)
}
