package domain

import (
	"fmt"
	"slices"
	"strconv"
)

// MaxQuantity bounds a single cart line.
const MaxQuantity = 9999

// Cart maps product ids to quantities in [1, MaxQuantity].
// Lines with a quantity <= 0 are never stored.
type Cart struct {
	lines map[int64]int
}

func NewCart() *Cart {
	return &Cart{lines: make(map[int64]int)}
}

// CartFromMap decodes the session representation, keyed by the decimal
// form of the product id. Malformed keys and out of range quantities are dropped.
func CartFromMap(m map[string]int) *Cart {
	cart := NewCart()
	for key, qty := range m {
		id, err := ParseProductID(key)
		if err != nil || qty <= 0 || qty > MaxQuantity {
			continue
		}
		cart.lines[id] = qty
	}
	return cart
}

// Map returns the session representation of the cart.
func (c *Cart) Map() map[string]int {
	m := make(map[string]int, len(c.lines))
	for id, qty := range c.lines {
		m[CartKey(id)] = qty
	}
	return m
}

// Add increments the line by max(1, qty), creating it if absent.
// The cart is unchanged when the line would exceed MaxQuantity.
func (c *Cart) Add(productID int64, qty int) error {
	qty = max(1, qty)
	if qty > MaxQuantity-c.lines[productID] {
		return errQuantityTooLarge()
	}
	c.lines[productID] += qty
	return nil
}

// SetQuantity overwrites the line, deleting it when qty <= 0.
func (c *Cart) SetQuantity(productID int64, qty int) error {
	if qty > MaxQuantity {
		return errQuantityTooLarge()
	}
	if qty <= 0 {
		delete(c.lines, productID)
		return nil
	}
	c.lines[productID] = qty
	return nil
}

func errQuantityTooLarge() error {
	return NewValidationError("quantity", fmt.Sprintf("must not exceed %d per product", MaxQuantity))
}

// Remove reports whether the line was present.
func (c *Cart) Remove(productID int64) bool {
	if _, ok := c.lines[productID]; !ok {
		return false
	}
	delete(c.lines, productID)
	return true
}

func (c *Cart) Clear() {
	clear(c.lines)
}

func (c *Cart) Quantity(productID int64) int {
	return c.lines[productID]
}

func (c *Cart) Contains(productID int64) bool {
	_, ok := c.lines[productID]
	return ok
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount is the sum of all quantities, not the number of lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, qty := range c.lines {
		n += qty
	}
	return n
}

// ProductIDs returns the distinct ids in ascending order.
func (c *Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.lines))
	for id := range c.lines {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (c *Cart) Clone() *Cart {
	cloned := NewCart()
	for id, qty := range c.lines {
		cloned.lines[id] = qty
	}
	return cloned
}

// CartKey is the session key of a cart line.
func CartKey(productID int64) string {
	return strconv.FormatInt(productID, 10)
}

func ParseProductID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseInt: %w", err)
	}
	return id, nil
}

// CartLine is a cart entry resolved against the price index.
type CartLine struct {
	Product   Product
	Quantity  int
	LineTotal int64
}

// CartTotals is the result of pricing a cart.
type CartTotals struct {
	// Total is the sum of price * quantity over all resolvable lines.
	Total int64
	// LineTotal is the total of the line touched by an update, 0 otherwise.
	LineTotal int64
	ItemCount int
}
