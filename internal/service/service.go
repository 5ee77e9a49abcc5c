package service

import (
	"context"

	"flower-shop/internal/model"
)

// ProductService defines operations for the product catalogue.
type ProductService interface {
	// List retrieves products matching the filter, falling back to the
	// built-in mock catalogue when the database is unreachable.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by ID, with the same fallback.
	// Returns (nil, nil) when the product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create adds a new catalogue product.
	Create(ctx context.Context, input *model.ProductInput) (*model.Product, error)

	// Update replaces a product's fields. Returns (nil, nil) when absent.
	Update(ctx context.Context, id string, input *model.ProductInput) (*model.Product, error)

	// Delete removes a product. Returns false when absent.
	Delete(ctx context.Context, id string) (bool, error)
}

// OrderService defines operations for order ingestion and management.
type OrderService interface {
	// Create validates and records an order. When the database is
	// unreachable the order lands in the in-memory fallback store and the
	// returned record carries a synthetic identifier.
	Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// GetByID retrieves a durably stored order.
	// Returns (nil, nil) when the order does not exist; fallback orders are
	// not visible here.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// List retrieves all durably stored orders, newest first.
	List(ctx context.Context) ([]model.Order, error)

	// UpdateStatus moves the order to the given status after validating it
	// against the enumeration. Returns (nil, nil) when the order is absent.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)

	// Delete removes a durably stored order. Returns false when absent.
	Delete(ctx context.Context, id string) (bool, error)
}
