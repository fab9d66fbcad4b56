package repository_test

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// startStore runs PostgreSQL with the catalog and card schemas applied.
func startStore(ctx context.Context) (*postgres.PostgresContainer, *pgxpool.Pool, error) {
	container, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithDatabase("kazprice"),
		postgres.WithInitScripts(
			"../migrations/01_catalog.up.sql",
			"../migrations/02_cards.up.sql"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, fmt.Errorf("container.ConnectionString: %w", err)
	}

	poolCfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return container, nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	// room for the concurrent debit tests
	poolCfg.MaxConns = 16

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return container, nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	return container, pool, nil
}
