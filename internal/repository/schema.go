package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the DDL for the flower shop tables. Shipping addresses and line
// items are stored as JSONB, keeping the nested order document in one row.
const Schema = `
CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL,
	price       BIGINT NOT NULL CHECK (price >= 0),
	category    TEXT NOT NULL,
	image_url   TEXT NOT NULL,
	in_stock    BOOLEAN NOT NULL DEFAULT TRUE,
	featured    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id               TEXT PRIMARY KEY,
	customer_name    TEXT NOT NULL,
	email            TEXT NOT NULL,
	phone            TEXT NOT NULL DEFAULT '',
	shipping_address JSONB NOT NULL,
	items            JSONB NOT NULL,
	total_amount     BIGINT NOT NULL CHECK (total_amount >= 0),
	notes            TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'pending',
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products (category);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC);
`

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
