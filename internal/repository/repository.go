package repository

import (
	"context"

	"flower-shop/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves products matching the filter, newest first.
	GetAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns (nil, nil) when the product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update replaces a product's mutable fields.
	// Returns (nil, nil) when the product does not exist.
	Update(ctx context.Context, id string, input *model.ProductInput) (*model.Product, error)

	// Delete removes a product. Returns false when the product does not exist.
	Delete(ctx context.Context, id string) (bool, error)
}

// OrderRepository defines the interface for durable order storage.
// The in-memory fallback store implements only the write path; see
// MemoryOrderStore.
type OrderRepository interface {
	// Create inserts a new order with its line items.
	Create(ctx context.Context, order *model.Order) error

	// GetByID retrieves an order by its ID.
	// Returns (nil, nil) when the order does not exist.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// List retrieves all orders, newest first.
	List(ctx context.Context) ([]model.Order, error)

	// UpdateStatus sets the order's status and refreshes its update timestamp.
	// Returns (nil, nil) when the order does not exist.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)

	// Delete removes an order. Returns false when the order does not exist.
	Delete(ctx context.Context, id string) (bool, error)
}
