package domain_test

import (
	"testing"

	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Add(t *testing.T) {
	tests := []struct {
		name     string
		initial  map[string]int
		id       int64
		qty      int
		wantQty  int
		wantItem int
	}{
		{
			name:     "add new line: ok",
			id:       7,
			qty:      2,
			wantQty:  2,
			wantItem: 2,
		},
		{
			name:     "add to existing line: increments",
			initial:  map[string]int{"7": 3},
			id:       7,
			qty:      2,
			wantQty:  5,
			wantItem: 5,
		},
		{
			name:     "add zero quantity: counts as one",
			initial:  map[string]int{"7": 1, "8": 4},
			id:       7,
			qty:      0,
			wantQty:  2,
			wantItem: 6,
		},
		{
			name:     "add negative quantity: never decreases",
			initial:  map[string]int{"7": 1},
			id:       7,
			qty:      -5,
			wantQty:  2,
			wantItem: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.CartFromMap(tt.initial)
			require.NoError(t, cart.Add(tt.id, tt.qty))

			assert.Equal(t, tt.wantQty, cart.Quantity(tt.id))
			assert.Equal(t, tt.wantItem, cart.ItemCount())
		})
	}
}

func TestCart_AddBeyondMaxQuantity(t *testing.T) {
	tests := []struct {
		name    string
		initial map[string]int
		qty     int
	}{
		{
			name: "single add above max",
			qty:  domain.MaxQuantity + 1,
		},
		{
			name:    "sum above max",
			initial: map[string]int{"7": domain.MaxQuantity - 1},
			qty:     2,
		},
		{
			name:    "huge quantity does not wrap",
			initial: map[string]int{"7": 5},
			qty:     1 << 62,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.CartFromMap(tt.initial)
			before := cart.Map()

			err := cart.Add(7, tt.qty)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, before, cart.Map())
		})
	}

	cart := domain.NewCart()
	require.NoError(t, cart.Add(7, domain.MaxQuantity))
	assert.Equal(t, domain.MaxQuantity, cart.Quantity(7))
	for range 3 {
		require.Error(t, cart.Add(7, 1<<62))
	}
	assert.Equal(t, domain.MaxQuantity, cart.ItemCount())
}

func TestCart_SetQuantityBeyondMax(t *testing.T) {
	cart := domain.CartFromMap(map[string]int{"11": 2})

	err := cart.SetQuantity(11, 1<<62)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, map[string]int{"11": 2}, cart.Map())

	require.NoError(t, cart.SetQuantity(11, domain.MaxQuantity))
	assert.Equal(t, domain.MaxQuantity, cart.Quantity(11))
}

func TestCart_SetQuantity(t *testing.T) {
	tests := []struct {
		name    string
		initial map[string]int
		id      int64
		qty     int
		want    map[string]int
	}{
		{
			name:    "overwrite existing: ok",
			initial: map[string]int{"11": 2, "22": 1},
			id:      11,
			qty:     5,
			want:    map[string]int{"11": 5, "22": 1},
		},
		{
			name:    "zero removes line",
			initial: map[string]int{"11": 2, "22": 1},
			id:      11,
			qty:     0,
			want:    map[string]int{"22": 1},
		},
		{
			name:    "negative removes line",
			initial: map[string]int{"11": 2},
			id:      11,
			qty:     -1,
			want:    map[string]int{},
		},
		{
			name:    "zero on absent line: no-op",
			initial: map[string]int{"22": 1},
			id:      11,
			qty:     0,
			want:    map[string]int{"22": 1},
		},
		{
			name:    "set absent line: creates",
			initial: map[string]int{},
			id:      3,
			qty:     4,
			want:    map[string]int{"3": 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.CartFromMap(tt.initial)
			require.NoError(t, cart.SetQuantity(tt.id, tt.qty))

			assert.Equal(t, tt.want, cart.Map())
		})
	}
}

func TestCart_Remove(t *testing.T) {
	cart := domain.CartFromMap(map[string]int{"11": 2, "22": 1})

	assert.True(t, cart.Remove(22))
	assert.False(t, cart.Remove(22))
	assert.Equal(t, map[string]int{"11": 2}, cart.Map())
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCart_Clear(t *testing.T) {
	cart := domain.CartFromMap(map[string]int{"11": 2, "22": 1})
	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.ItemCount())
	assert.Empty(t, cart.Map())
}

func TestCartFromMap(t *testing.T) {
	cart := domain.CartFromMap(map[string]int{
		"11":  2,
		"22":  0,
		"33":  -1,
		"abc": 4,
		"44":  1,
		"55":  domain.MaxQuantity + 1,
	})

	assert.Equal(t, map[string]int{"11": 2, "44": 1}, cart.Map())
	assert.Equal(t, []int64{11, 44}, cart.ProductIDs())
}

func TestCart_Clone(t *testing.T) {
	cart := domain.CartFromMap(map[string]int{"11": 2})
	cloned := cart.Clone()
	require.NoError(t, cloned.Add(11, 1))
	require.NoError(t, cloned.Add(12, 1))

	assert.Equal(t, map[string]int{"11": 2}, cart.Map())
	assert.Equal(t, map[string]int{"11": 3, "12": 1}, cloned.Map())
}

func TestCartKey(t *testing.T) {
	id, err := domain.ParseProductID(domain.CartKey(7))
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = domain.ParseProductID("seven")
	assert.Error(t, err)
}
