package domain

import (
	"errors"
	"math"
	"strconv"

	"golang.org/x/text/currency"
)

// DeliveryCost is the fixed surcharge added to every checkout total.
const DeliveryCost int64 = 1500

// DefaultCurrency is the tenge. x/text/currency exports only a few majors.
var DefaultCurrency = currency.MustParseISO("KZT")

var ErrAmountOverflow = errors.New("amount overflows")

// Money is an amount in integer currency units.
type Money struct {
	Amount   int64
	Currency currency.Unit
}

func NewMoney(amount int64, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

func (m Money) Add(amount int64) (Money, error) {
	sum, err := AddAmounts(m.Amount, amount)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: sum, Currency: m.Currency}, nil
}

// AddAmounts returns a + b or ErrAmountOverflow.
func AddAmounts(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrAmountOverflow
	}
	return a + b, nil
}

// MulAmount returns price * qty or ErrAmountOverflow. Both must be non-negative.
func MulAmount(price int64, qty int) (int64, error) {
	if price < 0 || qty < 0 {
		return 0, ErrAmountOverflow
	}
	if qty != 0 && price > math.MaxInt64/int64(qty) {
		return 0, ErrAmountOverflow
	}
	return price * int64(qty), nil
}

func (m Money) String() string {
	return strconv.FormatInt(m.Amount, 10) + " " + m.Currency.String()
}
