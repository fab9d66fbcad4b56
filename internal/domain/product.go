package domain

// Product is a catalogue entry with its best price across vendors.
type Product struct {
	ID          int64
	Name        string
	Description string
	ImageURL    string
	// BestPrice is nil when the product has no price rows.
	BestPrice *int64
}

// Price returns the best price, treating a missing one as 0.
func (p Product) Price() int64 {
	if p.BestPrice == nil {
		return 0
	}
	return *p.BestPrice
}
