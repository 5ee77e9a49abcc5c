package repository

import (
	"fmt"
	"sync"
	"time"

	"flower-shop/internal/model"

	"github.com/rs/zerolog"
)

// MemoryOrderStore is the process-local fallback for order creation when the
// database is unreachable. It is append-only: orders landed here are never
// removed, never reconciled into the database, and are invisible to the
// durable read path. The list is lost on process restart.
type MemoryOrderStore struct {
	mu     sync.Mutex
	orders []model.Order
	seq    int64
	logger zerolog.Logger
}

// NewMemoryOrderStore creates an empty fallback order store.
func NewMemoryOrderStore(logger zerolog.Logger) *MemoryOrderStore {
	return &MemoryOrderStore{
		logger: logger.With().Str("repository", "memory-order").Logger(),
	}
}

// Append records the order with a synthetic timestamp-derived identifier and
// returns it. The sequence suffix keeps ids unique when concurrent requests
// fall back within the same millisecond.
func (s *MemoryOrderStore) Append(order model.Order) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	order.ID = fmt.Sprintf("mem-%d-%d", time.Now().UnixMilli(), s.seq)
	s.orders = append(s.orders, order)

	s.logger.Warn().
		Str("order_id", order.ID).
		Int("fallback_size", len(s.orders)).
		Msg("order recorded in in-memory fallback store")

	return order
}

// Orders returns a copy of everything held in the fallback store.
func (s *MemoryOrderStore) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Len returns the number of orders held in the fallback store.
func (s *MemoryOrderStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
