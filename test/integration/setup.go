package integration

import (
	"context"
	"testing"
	"time"

	"flower-shop/internal/model"
	"flower-shop/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the flower shop schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// CleanupDB removes all rows from the flower shop tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	for _, table := range []string{"orders", "products"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			t.Fatalf("failed to clean table %s: %v", table, err)
		}
	}
}

// SeedProducts inserts a small catalogue for tests.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []model.Product {
	t.Helper()

	ctx := context.Background()
	repo := repository.NewProductRepository(pool, zerolog.Nop())

	base := time.Now().Add(-time.Hour)
	products := []model.Product{
		{
			ID:          "P001",
			Name:        "Classic Red Roses",
			Description: "A dozen red roses.",
			Price:       5999,
			Category:    model.CategoryRoses,
			ImageURL:    "/images/red-roses.png",
			InStock:     true,
			Featured:    true,
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			ID:          "P002",
			Name:        "Spring Tulip Arrangement",
			Description: "Pink and white tulips.",
			Price:       4599,
			Category:    model.CategoryTulips,
			ImageURL:    "/images/spring-tulips.png",
			InStock:     true,
			Featured:    true,
			CreatedAt:   base.Add(time.Minute),
			UpdatedAt:   base.Add(time.Minute),
		},
		{
			ID:          "P003",
			Name:        "Autumn Harvest Bouquet",
			Description: "Warm autumn tones.",
			Price:       5499,
			Category:    model.CategorySeasonal,
			ImageURL:    "/images/autumn-bouquet.png",
			InStock:     true,
			Featured:    false,
			CreatedAt:   base.Add(2 * time.Minute),
			UpdatedAt:   base.Add(2 * time.Minute),
		},
	}

	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			t.Fatalf("failed to seed product %s: %v", products[i].ID, err)
		}
	}

	return products
}
