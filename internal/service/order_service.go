package service

import (
	"context"
	"time"

	"flower-shop/internal/model"
	"flower-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService with dual-path persistence: a durable
// PostgreSQL repository and a process-local fallback store used when the
// database errors or times out.
type orderService struct {
	repo     repository.OrderRepository
	fallback *repository.MemoryOrderStore
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	repo repository.OrderRepository,
	fallback *repository.MemoryOrderStore,
	timeout time.Duration,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		repo:     repo,
		fallback: fallback,
		timeout:  timeout,
		logger:   logger.With().Str("service", "order").Logger(),
	}
}

// Create validates and records an order.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("order request rejected")
		return nil, err
	}

	now := time.Now()
	order := model.Order{
		ID:              uuid.New().String(),
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
		Notes:           req.Notes,
		Status:          model.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Single attempt against the database; a timeout counts as a store
	// failure and takes the fallback path.
	storeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(storeCtx, &order); err != nil {
		s.logger.Warn().
			Err(err).
			Str("order_id", order.ID).
			Msg("database write failed, using in-memory fallback for order")

		order = s.fallback.Append(order)

		s.logger.Info().
			Str("order_id", order.ID).
			Int("item_count", len(order.Items)).
			Msg("order created via fallback store")

		return &order, nil
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Int64("total_amount", order.TotalAmount).
		Msg("order created successfully")

	return &order, nil
}

// GetByID retrieves a durably stored order.
func (s *orderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to get order")
		return nil, err
	}
	return order, nil
}

// List retrieves all durably stored orders, newest first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves the order to the given status.
// Only membership in the enumeration is checked; there is no transition
// graph, so any enumerated status may follow any other.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		s.logger.Warn().
			Str("order_id", id).
			Str("status", string(status)).
			Msg("invalid status value")
		return nil, model.ErrInvalidStatus
	}

	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order status")
		return nil, err
	}
	return order, nil
}

// Delete removes a durably stored order.
func (s *orderService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to delete order")
		return false, err
	}
	return deleted, nil
}

// validateOrderRequest checks the order input contract. The total is
// recomputed from the line items; prices are integer cents, so the submitted
// total must match exactly.
func validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "order request is empty")
	}

	if req.CustomerName == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "customer name is required")
	}

	if req.Email == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "email is required")
	}

	if req.ShippingAddress.Street == "" || req.ShippingAddress.City == "" || req.ShippingAddress.ZipCode == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "shipping address is incomplete")
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyOrder
	}

	var total int64
	for _, item := range req.Items {
		if item.ProductID == "" {
			return model.NewDomainError(model.ErrCodeMissingField, "item product ID is required")
		}
		if item.Quantity <= 0 {
			return model.ErrInvalidQuantity
		}
		if item.Price < 0 {
			return model.ErrInvalidPrice
		}
		total += item.Price * int64(item.Quantity)
	}

	if total != req.TotalAmount {
		return model.ErrTotalMismatch
	}

	return nil
}
