package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/nikolayk812/kazprice/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// CheckoutSummary is what the user pays for the current cart.
type CheckoutSummary struct {
	Lines        []domain.CartLine
	CartTotal    domain.Money
	DeliveryCost domain.Money
	TotalAmount  domain.Money
}

type PaymentOptions struct {
	Cards []domain.Card
	CheckoutSummary
}

// Receipt describes a successful debit. It is not persisted.
type Receipt struct {
	ID         uuid.UUID
	CardID     int64
	NewBalance int64
	Charged    domain.Money
}

type PaymentService struct {
	prices   port.PriceIndex
	cards    port.CardRepository
	delivery int64
	unit     currency.Unit
}

type PaymentOption func(*PaymentService)

func WithDeliveryCost(cost int64) PaymentOption {
	return func(s *PaymentService) {
		s.delivery = cost
	}
}

func WithCurrency(unit currency.Unit) PaymentOption {
	return func(s *PaymentService) {
		s.unit = unit
	}
}

func NewPaymentService(prices port.PriceIndex, cards port.CardRepository, opts ...PaymentOption) (*PaymentService, error) {
	if prices == nil {
		return nil, fmt.Errorf("prices is nil")
	}
	if cards == nil {
		return nil, fmt.Errorf("cards is nil")
	}

	s := &PaymentService{
		prices:   prices,
		cards:    cards,
		delivery: domain.DeliveryCost,
		unit:     domain.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.delivery < 0 {
		return nil, fmt.Errorf("delivery cost[%d] is negative", s.delivery)
	}

	return s, nil
}

func (s *PaymentService) Checkout(ctx context.Context, userID int64, cart *domain.Cart) (CheckoutSummary, error) {
	if err := checkPreconditions(userID, cart); err != nil {
		return CheckoutSummary{}, err
	}

	return s.summarize(ctx, cart)
}

func (s *PaymentService) Options(ctx context.Context, userID int64, cart *domain.Cart) (PaymentOptions, error) {
	if err := checkPreconditions(userID, cart); err != nil {
		return PaymentOptions{}, err
	}

	summary, err := s.summarize(ctx, cart)
	if err != nil {
		return PaymentOptions{}, err
	}

	cards, err := s.cards.ListCards(ctx, userID)
	if err != nil {
		return PaymentOptions{}, fmt.Errorf("cards.ListCards: %w", err)
	}

	return PaymentOptions{
		Cards:           cards,
		CheckoutSummary: summary,
	}, nil
}

// Pay debits the card with the cart total plus delivery and clears the cart.
// On any error the cart is left untouched.
func (s *PaymentService) Pay(ctx context.Context, userID, cardID int64, cart *domain.Cart) (Receipt, error) {
	if err := checkPreconditions(userID, cart); err != nil {
		return Receipt{}, err
	}
	if cardID <= 0 {
		return Receipt{}, domain.NewValidationError("card_id", "card is required")
	}

	summary, err := s.summarize(ctx, cart)
	if err != nil {
		return Receipt{}, err
	}

	amount := summary.TotalAmount.Amount
	log := zap.L().With(
		zap.Int64("user_id", userID),
		zap.Int64("card_id", cardID),
		zap.Int64("amount", amount),
	)

	newBalance, err := s.cards.Debit(ctx, cardID, userID, amount)
	switch {
	case errors.Is(err, domain.ErrCardNotFound), errors.Is(err, domain.ErrInsufficientFunds):
		log.Info("payment rejected", zap.Error(err))
		return Receipt{}, err
	case err != nil:
		return Receipt{}, fmt.Errorf("cards.Debit: %w", err)
	}

	cart.Clear()

	receipt := Receipt{
		ID:         uuid.New(),
		CardID:     cardID,
		NewBalance: newBalance,
		Charged:    summary.TotalAmount,
	}
	log.Info("payment completed",
		zap.Stringer("receipt_id", receipt.ID),
		zap.Int64("new_balance", newBalance))

	return receipt, nil
}

func (s *PaymentService) summarize(ctx context.Context, cart *domain.Cart) (CheckoutSummary, error) {
	lines, total, err := priceCart(ctx, s.prices, cart)
	if err != nil {
		return CheckoutSummary{}, fmt.Errorf("priceCart: %w", err)
	}

	cartTotal := domain.NewMoney(total, s.unit)
	totalAmount, err := cartTotal.Add(s.delivery)
	if err != nil {
		return CheckoutSummary{}, fmt.Errorf("cartTotal.Add: %w", err)
	}

	return CheckoutSummary{
		Lines:        lines,
		CartTotal:    cartTotal,
		DeliveryCost: domain.NewMoney(s.delivery, s.unit),
		TotalAmount:  totalAmount,
	}, nil
}

func checkPreconditions(userID int64, cart *domain.Cart) error {
	if userID <= 0 {
		return domain.ErrUnauthenticated
	}
	if cart == nil || cart.IsEmpty() {
		return domain.ErrEmptyCart
	}
	return nil
}
