package domain

import "slices"

type FavoriteStatus string

const (
	FavoriteAdded    FavoriteStatus = "added"
	FavoriteRemoved  FavoriteStatus = "removed"
	FavoriteNotFound FavoriteStatus = "not_found"
)

// Favorites is an unordered set of product ids.
type Favorites struct {
	ids map[int64]struct{}
}

func NewFavorites(ids ...int64) *Favorites {
	f := &Favorites{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		f.ids[id] = struct{}{}
	}
	return f
}

// Toggle inserts the id if absent and removes it otherwise.
func (f *Favorites) Toggle(productID int64) FavoriteStatus {
	if _, ok := f.ids[productID]; ok {
		delete(f.ids, productID)
		return FavoriteRemoved
	}
	f.ids[productID] = struct{}{}
	return FavoriteAdded
}

func (f *Favorites) Remove(productID int64) FavoriteStatus {
	if _, ok := f.ids[productID]; !ok {
		return FavoriteNotFound
	}
	delete(f.ids, productID)
	return FavoriteRemoved
}

func (f *Favorites) Contains(productID int64) bool {
	_, ok := f.ids[productID]
	return ok
}

func (f *Favorites) Len() int {
	return len(f.ids)
}

// IDs returns the members in ascending order.
func (f *Favorites) IDs() []int64 {
	ids := make([]int64, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (f *Favorites) Clone() *Favorites {
	return NewFavorites(f.IDs()...)
}
