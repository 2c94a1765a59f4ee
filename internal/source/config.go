package source

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/model"
)

// Kind names where records come from.
type Kind string

// Source kinds.
const (
	KindFixed  Kind = "fixed"
	KindHTTP   Kind = "http"
	KindSQLite Kind = "sqlite"
)

// DefaultURL is the remote endpoint used when none is configured.
const DefaultURL = "http://localhost:3000/api"

// Config selects and configures a record source.
type Config struct {
	Kind    Kind
	URL     string
	Path    string
	Timeout time.Duration
}

// DefaultConfig returns a config serving the built-in records.
func DefaultConfig() Config {
	return Config{
		Kind:    KindFixed,
		URL:     DefaultURL,
		Timeout: 30 * time.Second,
	}
}

// Validate checks that the config is usable for its kind.
func (c Config) Validate() error {
	switch c.Kind {
	case KindFixed:
		return nil
	case KindHTTP:
		if c.URL == "" {
			return fmt.Errorf("%w: source.url is required for http sources", common.ErrMissingConfig)
		}
	case KindSQLite:
		if c.Path == "" {
			return fmt.Errorf("%w: source.path is required for sqlite sources", common.ErrMissingConfig)
		}
	default:
		return fmt.Errorf("%w: unknown source kind %q", common.ErrInvalidConfig, c.Kind)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: source.timeout cannot be negative", common.ErrInvalidConfig)
	}
	return nil
}

func failing(err error) Fetcher {
	return FetcherFunc(func(context.Context) ([]model.SalesRecord, error) {
		return nil, err
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the DataSource described by cfg. The returned closer releases any
// underlying connection and is never nil.
func Open(ctx context.Context, cfg Config) (*DataSource, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nopCloser{}, err
	}

	switch cfg.Kind {
	case KindHTTP:
		client, err := NewHTTPClient(cfg.URL, cfg.Timeout)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return NewDataSource(client, WithWriter(client)), nopCloser{}, nil

	case KindSQLite:
		db, err := NewSQLiteSource(ctx, cfg.Path)
		if err != nil {
			// An unreadable database is a retrieval failure, answered with the fallback set.
			return NewDataSource(failing(err)), nopCloser{}, nil
		}
		return NewDataSource(db, WithWriter(db)), db, nil

	default:
		return NewDataSource(Fixed{}), nopCloser{}, nil
	}
}
