package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/kazprice/internal/config"
	"github.com/nikolayk812/kazprice/internal/httpapi"
	"github.com/nikolayk812/kazprice/internal/logging"
	"github.com/nikolayk812/kazprice/internal/repository"
	"github.com/nikolayk812/kazprice/internal/service"
	"github.com/nikolayk812/kazprice/internal/session"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("c", "", "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	flush, err := logging.Init(cfg.Logger)
	if err != nil {
		return fmt.Errorf("logging.Init: %w", err)
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	poolCfg.MaxConns = cfg.Database.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	e, err := newServer(cfg, pool)
	if err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		zap.L().Info("server started", zap.String("addr", cfg.Server.Addr))
		if err := e.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("e.Start: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		zap.L().Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("e.Shutdown: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	zap.L().Info("server stopped")
	return nil
}

func newServer(cfg *config.AppConfig, pool *pgxpool.Pool) (*echo.Echo, error) {
	prices, err := repository.NewPriceIndex(pool)
	if err != nil {
		return nil, fmt.Errorf("repository.NewPriceIndex: %w", err)
	}

	cards, err := repository.NewCard(pool)
	if err != nil {
		return nil, fmt.Errorf("repository.NewCard: %w", err)
	}

	carts, err := service.NewCartService(prices)
	if err != nil {
		return nil, fmt.Errorf("service.NewCartService: %w", err)
	}

	favorites, err := service.NewFavoritesService(prices)
	if err != nil {
		return nil, fmt.Errorf("service.NewFavoritesService: %w", err)
	}

	payments, err := service.NewPaymentService(prices, cards,
		service.WithDeliveryCost(cfg.Checkout.DeliveryCost),
		service.WithCurrency(cfg.Checkout.CurrencyUnit()),
	)
	if err != nil {
		return nil, fmt.Errorf("service.NewPaymentService: %w", err)
	}

	sessions, err := session.NewCookieStore(session.Options{
		Name:     cfg.Session.Name,
		Secret:   cfg.Session.Secret,
		MaxAge:   cfg.Session.MaxAge,
		Secure:   cfg.Session.Secure,
		HTTPOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("session.NewCookieStore: %w", err)
	}

	e, err := httpapi.NewServer(sessions, httpapi.Services{
		Prices:    prices,
		Carts:     carts,
		Favorites: favorites,
		Payments:  payments,
	}, pool)
	if err != nil {
		return nil, fmt.Errorf("httpapi.NewServer: %w", err)
	}

	return e, nil
}
