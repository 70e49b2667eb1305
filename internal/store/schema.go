package store

import (
	"context"
	"fmt"
)

// schemaStatements is the catalog DDL, executed in order by InitSchema.
// Statements are idempotent so initdb can be re-run safely.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS items (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		barcode TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT,
		category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		min_quantity INTEGER NOT NULL DEFAULT 0,
		unit_price NUMERIC(10,2) NOT NULL DEFAULT 0,
		location TEXT,
		supplier TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_items_name ON items (name)`,

	`INSERT INTO categories (name, description) VALUES
		('Geral', 'Categoria geral para artigos diversos'),
		('Electrónicos', 'Equipamentos electrónicos'),
		('Alimentação', 'Produtos alimentares')
	ON CONFLICT (name) DO NOTHING`,
}

// InitSchema creates the categories and items tables plus the seed
// categories. Each statement reports its own failure; execution stops at
// the first error.
func (s *Postgres) InitSchema(ctx context.Context) error {
	for i, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}
	s.logger.Info("database schema initialized")
	return nil
}
