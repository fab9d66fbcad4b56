package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/nikolayk812/kazprice/internal/domain"
	"github.com/spf13/cast"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

const envPrefix = "KAZPRICE_"

type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Checkout CheckoutConfig `yaml:"checkout"`
	Logger   LoggerConfig   `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL      string `yaml:"url"`
	MaxConns int32  `yaml:"max_conns"`
}

type SessionConfig struct {
	Name   string `yaml:"name"`
	Secret string `yaml:"secret"`
	MaxAge int    `yaml:"max_age"`
	Secure bool   `yaml:"secure"`
}

type CheckoutConfig struct {
	DeliveryCost int64  `yaml:"delivery_cost"`
	Currency     string `yaml:"currency"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// CurrencyUnit is valid after Validate succeeded.
func (c CheckoutConfig) CurrencyUnit() currency.Unit {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return domain.DefaultCurrency
	}
	return unit
}

func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			MaxConns: 10,
		},
		Session: SessionConfig{
			Name:   "kazprice",
			MaxAge: 7 * 24 * 3600,
		},
		Checkout: CheckoutConfig{
			DeliveryCost: 1500,
			Currency:     "KZT",
		},
		Logger: LoggerConfig{
			Mode:     "development",
			Filename: "kazprice.log",
		},
	}
}

// Load reads the optional YAML file at path, the optional .env file and
// KAZPRICE_* environment overrides, in that order of increasing precedence.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("godotenv.Load: %w", err)
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("applyEnv: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *AppConfig, lookup func(string) (string, bool)) error {
	var err error
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, set func(string) error) {
		if v, ok := lookup(envPrefix + key); ok && err == nil {
			if setErr := set(v); setErr != nil {
				err = fmt.Errorf("%s%s: %w", envPrefix, key, setErr)
			}
		}
	}

	str("SERVER_ADDR", &cfg.Server.Addr)
	str("DATABASE_URL", &cfg.Database.URL)
	str("SESSION_NAME", &cfg.Session.Name)
	str("SESSION_SECRET", &cfg.Session.Secret)
	str("CHECKOUT_CURRENCY", &cfg.Checkout.Currency)
	str("LOGGER_MODE", &cfg.Logger.Mode)
	str("LOGGER_FILENAME", &cfg.Logger.Filename)

	num("SERVER_SHUTDOWN_TIMEOUT", func(v string) (e error) {
		cfg.Server.ShutdownTimeout, e = cast.ToDurationE(v)
		return e
	})
	num("DATABASE_MAX_CONNS", func(v string) (e error) {
		cfg.Database.MaxConns, e = cast.ToInt32E(v)
		return e
	})
	num("SESSION_MAX_AGE", func(v string) (e error) {
		cfg.Session.MaxAge, e = cast.ToIntE(v)
		return e
	})
	num("SESSION_SECURE", func(v string) (e error) {
		cfg.Session.Secure, e = cast.ToBoolE(v)
		return e
	})
	num("CHECKOUT_DELIVERY_COST", func(v string) (e error) {
		cfg.Checkout.DeliveryCost, e = cast.ToInt64E(v)
		return e
	})
	num("LOGGER_FILE_ENABLE", func(v string) (e error) {
		cfg.Logger.FileEnable, e = cast.ToBoolE(v)
		return e
	})

	return err
}

func (c *AppConfig) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, fmt.Errorf("server.addr is empty"))
	}
	if c.Database.URL == "" {
		errs = append(errs, fmt.Errorf("database.url is empty"))
	}
	if len(c.Session.Secret) < 16 {
		errs = append(errs, fmt.Errorf("session.secret must be at least 16 bytes"))
	}
	if c.Checkout.DeliveryCost < 0 {
		errs = append(errs, fmt.Errorf("checkout.delivery_cost[%d] is negative", c.Checkout.DeliveryCost))
	}
	if _, err := currency.ParseISO(c.Checkout.Currency); err != nil {
		errs = append(errs, fmt.Errorf("checkout.currency[%s] is not valid: %w", c.Checkout.Currency, err))
	}
	if c.Logger.FileEnable && c.Logger.Filename == "" {
		errs = append(errs, fmt.Errorf("logger.filename is empty"))
	}

	return errors.Join(errs...)
}
