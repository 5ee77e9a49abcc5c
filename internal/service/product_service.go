package service

import (
	"context"
	"time"

	"flower-shop/internal/model"
	"flower-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService. Reads fall back to the built-in
// mock catalogue when the database errors; writes are durable-only.
type productService struct {
	repo    repository.ProductRepository
	timeout time.Duration
	logger  zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, timeout time.Duration, logger zerolog.Logger) ProductService {
	return &productService{
		repo:    repo,
		timeout: timeout,
		logger:  logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves products matching the filter.
func (s *productService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	products, err := s.repo.GetAll(storeCtx, filter)
	if err != nil {
		s.logger.Warn().Err(err).Msg("database unavailable, serving mock catalogue")
		return repository.MockProducts(filter), nil
	}

	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product, err := s.repo.GetByID(storeCtx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("database unavailable, serving mock catalogue")
		return repository.MockProduct(id), nil
	}

	return product, nil
}

// Create adds a new catalogue product.
func (s *productService) Create(ctx context.Context, input *model.ProductInput) (*model.Product, error) {
	if err := validateProductInput(input); err != nil {
		s.logger.Warn().Err(err).Msg("product input rejected")
		return nil, err
	}

	now := time.Now()
	product := model.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		InStock:     input.InStock,
		Featured:    input.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, &product); err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("category", string(product.Category)).
		Msg("product created successfully")

	return &product, nil
}

// Update replaces a product's fields.
func (s *productService) Update(ctx context.Context, id string, input *model.ProductInput) (*model.Product, error) {
	if err := validateProductInput(input); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("product input rejected")
		return nil, err
	}

	product, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, err
	}

	return product, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return false, err
	}
	return deleted, nil
}

// validateProductInput checks the product input contract.
func validateProductInput(input *model.ProductInput) error {
	if input == nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "product input is empty")
	}

	if input.Name == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "product name is required")
	}

	if input.Description == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "product description is required")
	}

	if input.Price < 0 {
		return model.ErrInvalidPrice
	}

	if !input.Category.Valid() {
		return model.ErrInvalidCategory
	}

	if input.ImageURL == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "product image URL is required")
	}

	return nil
}
