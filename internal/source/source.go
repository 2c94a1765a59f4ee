// Package source supplies sales records from the built-in set, a remote endpoint or SQLite.
package source

import (
	"context"

	"github.com/Veraticus/salesdash/internal/model"
)

// Fetcher retrieves the ordered sequence of sales records.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.SalesRecord, error)
}

// Writer creates and updates records on a remote store.
type Writer interface {
	Create(ctx context.Context, record model.NewSalesRecord) (*model.SalesRecord, error)
	Update(ctx context.Context, id string, patch model.SalesPatch) (*model.SalesRecord, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) ([]model.SalesRecord, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context) ([]model.SalesRecord, error) {
	return f(ctx)
}
