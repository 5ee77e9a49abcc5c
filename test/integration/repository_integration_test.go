package integration

import (
	"context"
	"testing"
	"time"

	"flower-shop/internal/model"
	"flower-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	repo := repository.NewProductRepository(testDB.Pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("GetAll returns seeded products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedProducts(t, testDB.Pool)

		products, err := repo.GetAll(ctx, model.ProductFilter{})
		require.NoError(t, err)
		assert.Len(t, products, len(seeded))
	})

	t.Run("GetAll filters by category", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		products, err := repo.GetAll(ctx, model.ProductFilter{Category: "roses"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, model.CategoryRoses, products[0].Category)
	})

	t.Run("GetAll filters featured and honors limit", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		products, err := repo.GetAll(ctx, model.ProductFilter{Featured: true, Limit: 1})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.True(t, products[0].Featured)
	})

	t.Run("GetByID returns the product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedProducts(t, testDB.Pool)

		product, err := repo.GetByID(ctx, seeded[0].ID)
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, seeded[0].Name, product.Name)
		assert.Equal(t, seeded[0].Price, product.Price)
	})

	t.Run("GetByID returns nil for missing product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		product, err := repo.GetByID(ctx, "no-such-id")
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("Update modifies the product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedProducts(t, testDB.Pool)

		input := &model.ProductInput{
			Name:        "Premium Red Roses",
			Description: seeded[0].Description,
			Price:       6999,
			Category:    seeded[0].Category,
			ImageURL:    seeded[0].ImageURL,
			InStock:     true,
			Featured:    true,
		}

		result, err := repo.Update(ctx, seeded[0].ID, input)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Premium Red Roses", result.Name)
		assert.Equal(t, int64(6999), result.Price)
	})

	t.Run("Update returns nil for missing product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		result, err := repo.Update(ctx, "no-such-id", &model.ProductInput{
			Name:     "Ghost Bouquet",
			Price:    100,
			Category: model.CategoryMixed,
		})
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Delete removes the product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		seeded := SeedProducts(t, testDB.Pool)

		deleted, err := repo.Delete(ctx, seeded[0].ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		product, err := repo.GetByID(ctx, seeded[0].ID)
		require.NoError(t, err)
		assert.Nil(t, product)

		deleted, err = repo.Delete(ctx, seeded[0].ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	repo := repository.NewOrderRepository(testDB.Pool, zerolog.Nop())
	ctx := context.Background()

	newOrder := func() *model.Order {
		now := time.Now().UTC().Truncate(time.Millisecond)
		return &model.Order{
			ID:           uuid.New().String(),
			CustomerName: "Rosa Bloom",
			Email:        "rosa@example.com",
			Phone:        "555-0101",
			ShippingAddress: model.Address{
				Street:  "12 Garden Lane",
				City:    "Springfield",
				ZipCode: "12345",
			},
			Items: []model.OrderItem{
				{ProductID: "P001", Quantity: 2, Price: 5999},
				{ProductID: "P002", Quantity: 1, Price: 4599},
			},
			TotalAmount: 16597,
			Notes:       "Leave at the door",
			Status:      model.StatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	t.Run("Create and GetByID round-trips the document", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order := newOrder()
		require.NoError(t, repo.Create(ctx, order))

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, order.CustomerName, got.CustomerName)
		assert.Equal(t, order.ShippingAddress, got.ShippingAddress)
		assert.Equal(t, order.Items, got.Items)
		assert.Equal(t, order.TotalAmount, got.TotalAmount)
		assert.Equal(t, model.StatusPending, got.Status)
	})

	t.Run("GetByID returns nil for missing order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		got, err := repo.GetByID(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("List returns newest first", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		first := newOrder()
		require.NoError(t, repo.Create(ctx, first))

		second := newOrder()
		second.CreatedAt = first.CreatedAt.Add(time.Minute)
		second.UpdatedAt = second.CreatedAt
		require.NoError(t, repo.Create(ctx, second))

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, second.ID, orders[0].ID)
		assert.Equal(t, first.ID, orders[1].ID)
	})

	t.Run("UpdateStatus changes the status", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order := newOrder()
		require.NoError(t, repo.Create(ctx, order))

		updated, err := repo.UpdateStatus(ctx, order.ID, model.StatusShipped)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, model.StatusShipped, updated.Status)
	})

	t.Run("UpdateStatus returns nil for missing order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		updated, err := repo.UpdateStatus(ctx, uuid.New().String(), model.StatusShipped)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("Delete removes the order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order := newOrder()
		require.NoError(t, repo.Create(ctx, order))

		deleted, err := repo.Delete(ctx, order.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
