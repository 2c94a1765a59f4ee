package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const salesSchema = `
CREATE TABLE IF NOT EXISTS sales_records (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	id       TEXT    NOT NULL UNIQUE,
	month    TEXT    NOT NULL,
	sales    REAL    NOT NULL CHECK (sales >= 0),
	revenue  REAL    NOT NULL CHECK (revenue >= 0),
	date     TEXT
)`

// SQLiteSource reads records from a local SQLite table, in insertion order.
type SQLiteSource struct {
	db   *sqlx.DB
	path string
}

// NewSQLiteSource opens the database at path and makes sure the table exists.
func NewSQLiteSource(ctx context.Context, path string) (*SQLiteSource, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: sqlite source requires a path", common.ErrMissingConfig)
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections, and :memory: needs exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, salesSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create sales table: %w", err)
	}

	return &SQLiteSource{db: db, path: path}, nil
}

// Fetch returns every stored record in insertion order.
func (s *SQLiteSource) Fetch(ctx context.Context) ([]model.SalesRecord, error) {
	const q = `SELECT id, month, sales, revenue, COALESCE(date, '') AS date
		FROM sales_records ORDER BY position`

	records := []model.SalesRecord{}
	if err := s.db.SelectContext(ctx, &records, q); err != nil {
		return nil, fmt.Errorf("failed to query sales records: %w", err)
	}
	return records, nil
}

// Create inserts record and assigns it the next free numeric id.
func (s *SQLiteSource) Create(ctx context.Context, record model.NewSalesRecord) (*model.SalesRecord, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int64
	if err := tx.GetContext(ctx, &next, `SELECT COALESCE(MAX(position), 0) + 1 FROM sales_records`); err != nil {
		return nil, fmt.Errorf("failed to allocate id: %w", err)
	}
	// Seeded ids need not be numeric or follow position.
	for {
		var taken int
		if err := tx.GetContext(ctx, &taken, `SELECT COUNT(*) FROM sales_records WHERE id = ?`, strconv.FormatInt(next, 10)); err != nil {
			return nil, fmt.Errorf("failed to allocate id: %w", err)
		}
		if taken == 0 {
			break
		}
		next++
	}

	created := model.SalesRecord{
		ID:      strconv.FormatInt(next, 10),
		Month:   record.Month,
		Date:    record.Date,
		Sales:   record.Sales,
		Revenue: record.Revenue,
	}
	if err := saveRecordTx(ctx, tx, created, true); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return &created, nil
}

// Update applies the non-nil fields of patch to record id.
func (s *SQLiteSource) Update(ctx context.Context, id string, patch model.SalesPatch) (*model.SalesRecord, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var record model.SalesRecord
	err = tx.GetContext(ctx, &record,
		`SELECT id, month, sales, revenue, COALESCE(date, '') AS date FROM sales_records WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sales record %q: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sales record: %w", err)
	}

	if patch.Month != nil {
		record.Month = *patch.Month
	}
	if patch.Date != nil {
		record.Date = *patch.Date
	}
	if patch.Sales != nil {
		record.Sales = *patch.Sales
	}
	if patch.Revenue != nil {
		record.Revenue = *patch.Revenue
	}

	if err := saveRecordTx(ctx, tx, record, false); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return &record, nil
}

func saveRecordTx(ctx context.Context, tx *sqlx.Tx, r model.SalesRecord, insert bool) error {
	var date any
	if r.Date != "" {
		date = r.Date
	}

	q := `UPDATE sales_records SET month = ?, sales = ?, revenue = ?, date = ? WHERE id = ?`
	args := []any{r.Month, r.Sales, r.Revenue, date, r.ID}
	if insert {
		q = `INSERT INTO sales_records (month, sales, revenue, date, id) VALUES (?, ?, ?, ?, ?)`
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("failed to save sales record: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
