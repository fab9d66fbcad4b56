package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/kazprice/internal/db"
	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/nikolayk812/kazprice/internal/port"
)

type cardRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCard(pool *pgxpool.Pool) (port.CardRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &cardRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewCardWithTx(tx pgx.Tx) port.CardRepository {
	return &cardRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cardRepository) ListCards(ctx context.Context, userID int64) ([]domain.Card, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("userID is not positive")
	}

	rows, err := r.q.ListCardsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("q.ListCardsByUser: %w", err)
	}

	cards := make([]domain.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, mapCardToDomain(row))
	}

	return cards, nil
}

func (r *cardRepository) Debit(ctx context.Context, cardID, userID, amount int64) (int64, error) {
	if userID <= 0 {
		return 0, fmt.Errorf("userID is not positive")
	}
	if amount < 0 {
		return 0, fmt.Errorf("amount[%d] is negative", amount)
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (int64, error) {
		balance, err := q.GetCardBalanceForUpdate(ctx, db.GetCardBalanceForUpdateParams{
			ID:     cardID,
			UserID: userID,
		})
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrCardNotFound
		}
		if err != nil {
			return 0, fmt.Errorf("q.GetCardBalanceForUpdate: %w", err)
		}

		if balance < amount {
			return 0, domain.ErrInsufficientFunds
		}

		newBalance, err := q.DebitCard(ctx, db.DebitCardParams{
			Amount: amount,
			ID:     cardID,
			UserID: userID,
		})
		// the row is locked, so no row here means the guard balance >= amount failed
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientFunds
		}
		if err != nil {
			return 0, fmt.Errorf("q.DebitCard: %w", err)
		}

		return newBalance, nil
	})
}

func mapCardToDomain(row db.Card) domain.Card {
	return domain.Card{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.CardName,
		Balance:   row.Balance,
		CreatedAt: row.CreatedAt.Time,
	}
}
