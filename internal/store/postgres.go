// Package store persists the item catalog in PostgreSQL. It implements
// the category resolver and the insert-or-update executor consumed by the
// import pipeline, plus the queries behind the export and stats commands.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"inventox/items-import/internal/config"
	"inventox/items-import/internal/logging"
	"inventox/items-import/internal/models"
)

// querier is satisfied by both pgxpool.Pool and pgx.Tx, so the same SQL
// paths serve per-row and all-or-nothing modes.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres is the pgx-backed catalog store.
//
// In the default mode every write runs in its own short transaction,
// committed immediately, so partial progress survives a failure later in
// the batch. With AllOrNothing set, all writes share one transaction with
// a savepoint per operation, and Finish decides its fate.
type Postgres struct {
	pool         *pgxpool.Pool
	logger       logging.Logger
	allOrNothing bool

	batchTx pgx.Tx
	saveSeq int
}

// Options configures a Postgres store.
type Options struct {
	AllOrNothing bool
}

// Open connects to the database described by cfg and verifies the
// connection.
func Open(ctx context.Context, cfg *config.Config, logger logging.Logger, opts Options) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database.Name, err)
	}

	logger.Debug("connected to database",
		logging.Field{Key: "host", Value: cfg.Database.Host},
		logging.Field{Key: "name", Value: cfg.Database.Name})

	return &Postgres{
		pool:         pool,
		logger:       logger,
		allOrNothing: opts.AllOrNothing,
	}, nil
}

// Close releases the connection pool. A still-open batch transaction is
// rolled back.
func (s *Postgres) Close() {
	if s.batchTx != nil {
		_ = s.batchTx.Rollback(context.Background())
		s.batchTx = nil
	}
	s.pool.Close()
}

// conn returns the querier writes should go through: the pool in per-row
// mode, the shared transaction in all-or-nothing mode.
func (s *Postgres) conn(ctx context.Context) (querier, error) {
	if !s.allOrNothing {
		return s.pool, nil
	}
	if s.batchTx == nil {
		tx, err := s.pool.Begin(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to begin batch transaction: %w", err)
		}
		s.batchTx = tx
	}
	return s.batchTx, nil
}

// withSavepoint runs fn inside a savepoint on the batch transaction so a
// failed operation does not poison the rest of the batch.
func (s *Postgres) withSavepoint(ctx context.Context, tx pgx.Tx, fn func(querier) error) error {
	s.saveSeq++
	name := fmt.Sprintf("op_%d", s.saveSeq)

	if _, err := tx.Exec(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("failed to create savepoint: %w", err)
	}
	if err := fn(tx); err != nil {
		_, _ = tx.Exec(ctx, "ROLLBACK TO SAVEPOINT "+name)
		return err
	}
	_, _ = tx.Exec(ctx, "RELEASE SAVEPOINT "+name)
	return nil
}

// ResolveCategory returns the identifier for a category name, creating the
// category if it does not exist yet. The conditional insert and the fetch
// are one statement, so concurrent imports racing on the same name cannot
// create duplicates.
func (s *Postgres) ResolveCategory(ctx context.Context, name string) (int64, error) {
	const resolveSQL = `
		INSERT INTO categories (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	q, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}

	var id int64
	resolve := func(q querier) error {
		return q.QueryRow(ctx, resolveSQL, name).Scan(&id)
	}

	if tx, ok := q.(pgx.Tx); ok {
		err = s.withSavepoint(ctx, tx, resolve)
	} else {
		err = resolve(q)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve category %q: %w", name, err)
	}

	s.logger.Debug("category resolved",
		logging.Field{Key: logging.FieldCategory, Value: name},
		logging.Field{Key: "category_id", Value: id})
	return id, nil
}

// UpsertItem inserts or updates one item keyed by barcode. In per-row mode
// the write runs in its own transaction committed before returning; a
// failure rolls back only this row's work.
func (s *Postgres) UpsertItem(ctx context.Context, item models.ItemRecord) (models.UpsertOutcome, error) {
	var outcome models.UpsertOutcome

	if s.allOrNothing {
		q, err := s.conn(ctx)
		if err != nil {
			return outcome, err
		}
		tx := q.(pgx.Tx)
		err = s.withSavepoint(ctx, tx, func(q querier) error {
			var err error
			outcome, err = upsertItem(ctx, q, item)
			return err
		})
		return outcome, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return outcome, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	outcome, err = upsertItem(ctx, tx, item)
	if err != nil {
		return outcome, err
	}
	if err := tx.Commit(ctx); err != nil {
		return outcome, fmt.Errorf("failed to commit item %s: %w", item.Barcode, err)
	}
	return outcome, nil
}

func upsertItem(ctx context.Context, q querier, item models.ItemRecord) (models.UpsertOutcome, error) {
	var id int64
	err := q.QueryRow(ctx, `SELECT id FROM items WHERE barcode = $1`, item.Barcode).Scan(&id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		_, err = q.Exec(ctx, `
			INSERT INTO items
				(barcode, name, description, category_id, quantity,
				 min_quantity, unit_price, location, supplier)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			item.Barcode, item.Name, item.Description, item.CategoryID,
			item.Quantity, item.MinQuantity, item.UnitPrice.String(),
			item.Location, item.Supplier)
		if err != nil {
			return models.OutcomeInserted, fmt.Errorf("failed to insert item %s: %w", item.Barcode, err)
		}
		return models.OutcomeInserted, nil

	case err != nil:
		return models.OutcomeInserted, fmt.Errorf("failed to look up item %s: %w", item.Barcode, err)

	default:
		_, err = q.Exec(ctx, `
			UPDATE items
			SET name = $2,
			    description = $3,
			    category_id = $4,
			    quantity = $5,
			    min_quantity = $6,
			    unit_price = $7,
			    location = $8,
			    supplier = $9,
			    updated_at = now()
			WHERE barcode = $1`,
			item.Barcode, item.Name, item.Description, item.CategoryID,
			item.Quantity, item.MinQuantity, item.UnitPrice.String(),
			item.Location, item.Supplier)
		if err != nil {
			return models.OutcomeUpdated, fmt.Errorf("failed to update item %s: %w", item.Barcode, err)
		}
		return models.OutcomeUpdated, nil
	}
}

// Finish closes out an all-or-nothing batch: commit on success, rollback
// on abort. In per-row mode every write already committed and Finish is a
// no-op.
func (s *Postgres) Finish(ctx context.Context, abort bool) error {
	if s.batchTx == nil {
		return nil
	}
	tx := s.batchTx
	s.batchTx = nil

	if abort {
		if err := tx.Rollback(ctx); err != nil {
			return fmt.Errorf("failed to roll back batch: %w", err)
		}
		return nil
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

// ListItems returns the whole catalog with category names denormalized,
// ordered by item name. Used by the export command.
func (s *Postgres) ListItems(ctx context.Context) ([]models.ExportRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT i.barcode,
		       i.name,
		       COALESCE(i.description, ''),
		       COALESCE(c.name, ''),
		       i.quantity,
		       i.min_quantity,
		       i.unit_price::text,
		       COALESCE(i.location, ''),
		       COALESCE(i.supplier, '')
		FROM items i
		LEFT JOIN categories c ON c.id = i.category_id
		ORDER BY i.name, i.barcode`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []models.ExportRow
	for rows.Next() {
		var row models.ExportRow
		if err := rows.Scan(&row.Barcode, &row.Name, &row.Description, &row.Category,
			&row.Quantity, &row.MinQuantity, &row.UnitPrice, &row.Location, &row.Supplier); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

// Stats computes the inventory snapshot used by the stats command.
func (s *Postgres) Stats(ctx context.Context) (models.InventoryStats, error) {
	var stats models.InventoryStats

	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&stats.TotalItems); err != nil {
		return stats, fmt.Errorf("failed to count items: %w", err)
	}
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM items WHERE quantity <= min_quantity`).Scan(&stats.LowStockItems); err != nil {
		return stats, fmt.Errorf("failed to count low-stock items: %w", err)
	}
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&stats.TotalCategories); err != nil {
		return stats, fmt.Errorf("failed to count categories: %w", err)
	}

	var total string
	if err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity * unit_price), 0)::text FROM items WHERE quantity > 0`).Scan(&total); err != nil {
		return stats, fmt.Errorf("failed to sum stock value: %w", err)
	}
	value, err := decimal.NewFromString(total)
	if err != nil {
		return stats, fmt.Errorf("failed to parse stock value %q: %w", total, err)
	}
	stats.TotalStockValue = value

	return stats, nil
}
