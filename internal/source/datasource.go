package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/filter"
	"github.com/Veraticus/salesdash/internal/model"
)

// DataSource fronts a Fetcher (and optionally a Writer) with the dashboard's
// recovery rules: reads fall back to the built-in set, writes yield nil on failure.
type DataSource struct {
	fetcher  Fetcher
	writer   Writer
	fallback []model.SalesRecord
}

// DataSourceOption configures a DataSource.
type DataSourceOption func(*DataSource)

// WithWriter enables create and update against w.
func WithWriter(w Writer) DataSourceOption {
	return func(ds *DataSource) {
		ds.writer = w
	}
}

// WithFallback replaces the built-in fallback records.
func WithFallback(records []model.SalesRecord) DataSourceOption {
	return func(ds *DataSource) {
		ds.fallback = records
	}
}

// NewDataSource wraps fetcher. A nil fetcher serves the built-in set.
func NewDataSource(fetcher Fetcher, opts ...DataSourceOption) *DataSource {
	if fetcher == nil {
		fetcher = Fixed{}
	}
	ds := &DataSource{
		fetcher:  fetcher,
		fallback: FixedRecords(),
	}
	for _, opt := range opts {
		opt(ds)
	}
	return ds
}

// Fetch returns the source's records, or the fallback set if retrieval fails.
func (ds *DataSource) Fetch(ctx context.Context) []model.SalesRecord {
	records, err := ds.fetcher.Fetch(ctx)
	if err != nil {
		slog.Warn("Failed to fetch sales data, using built-in records",
			"error", err,
			"fallback_count", len(ds.fallback))
		return ds.fallbackCopy()
	}

	slog.Debug("Fetched sales data", "count", len(records))
	return records
}

// FetchFiltered fetches and keeps only records whose sales meet threshold.
func (ds *DataSource) FetchFiltered(ctx context.Context, threshold float64) ([]model.SalesRecord, error) {
	if err := filter.Validate(threshold); err != nil {
		return nil, err
	}
	return filter.Apply(ds.Fetch(ctx), threshold)
}

// Create stores a new record. It returns nil when the write fails or no writer is configured.
func (ds *DataSource) Create(ctx context.Context, record model.NewSalesRecord) *model.SalesRecord {
	if ds.writer == nil {
		common.LogError(common.ErrNoWriter, "Error creating sales record", nil)
		return nil
	}

	created, err := ds.writer.Create(ctx, record)
	if err != nil {
		common.LogError(err, "Error creating sales record", common.Fields{"month": record.Month})
		return nil
	}
	return created
}

// Update applies patch to record id. It returns nil when the write fails or no writer is configured.
func (ds *DataSource) Update(ctx context.Context, id string, patch model.SalesPatch) *model.SalesRecord {
	if ds.writer == nil {
		common.LogError(common.ErrNoWriter, "Error updating sales record", common.Fields{"id": id})
		return nil
	}

	updated, err := ds.writer.Update(ctx, id, patch)
	if err != nil {
		common.LogError(err, "Error updating sales record", common.Fields{"id": id})
		return nil
	}
	return updated
}

// CanWrite reports whether create and update can reach a store.
func (ds *DataSource) CanWrite() bool {
	return ds.writer != nil
}

func (ds *DataSource) fallbackCopy() []model.SalesRecord {
	out := make([]model.SalesRecord, len(ds.fallback))
	copy(out, ds.fallback)
	return out
}

// String describes the underlying fetcher for logs.
func (ds *DataSource) String() string {
	return fmt.Sprintf("%T", ds.fetcher)
}
