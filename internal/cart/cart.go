// Package cart implements the client-resident shopping cart: it merges
// duplicate additions by product id, keeps totals in integer minor units,
// and persists a snapshot after every mutation so a crash loses at most the
// in-flight operation.
package cart

import (
	"flower-shop/internal/model"
	"sync"

	"github.com/rs/zerolog"
)

// Item is a cart line: the product's display fields denormalized at add
// time plus a quantity. Price is in minor units and is captured when the
// product is added; later catalogue changes do not affect it.
type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"imageUrl"`
	Quantity  int    `json:"quantity"`
}

// Cart holds the selected items. All methods are safe for concurrent use.
// Every mutation persists the full snapshot synchronously before returning,
// then notifies subscribers.
type Cart struct {
	mu       sync.Mutex
	items    []Item
	snapshot Snapshot
	subs     []func([]Item)
	logger   zerolog.Logger
}

// New creates a cart restored from the snapshot store. A missing or corrupt
// snapshot yields an empty cart, never an error.
func New(snapshot Snapshot, logger zerolog.Logger) *Cart {
	c := &Cart{
		snapshot: snapshot,
		logger:   logger.With().Str("component", "cart").Logger(),
	}

	items, err := snapshot.Load()
	if err != nil {
		c.logger.Warn().Err(err).Msg("cart snapshot unreadable, starting with empty cart")
		return c
	}

	c.items = items
	c.logger.Debug().Int("items", len(items)).Msg("cart restored from snapshot")
	return c
}

// Add puts quantity units of the product in the cart. If the product is
// already present its quantity is incremented; otherwise a new line is
// appended with the product's display fields. Quantity must be positive.
func (c *Cart) Add(product model.Product, quantity int) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity += quantity
			c.persist()
			return nil
		}
	}

	c.items = append(c.items, Item{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  quantity,
	})
	c.persist()
	return nil
}

// Remove drops the matching line. Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to the given value (replace, not
// increment). A quantity of zero or less removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// Clear empties the cart. Called after a successful order submission.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persist()
}

// Total returns the sum of price times quantity over all lines, in minor
// units. An empty cart totals zero.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, item := range c.items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// Count returns the sum of quantities across lines, not the line count.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// OrderItems returns the checkout snapshot: one line item per cart line
// carrying the price captured at add time.
func (c *Cart) OrderItems() []model.OrderItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]model.OrderItem, len(c.items))
	for i, item := range c.items {
		items[i] = model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return items
}

// Subscribe registers a function called with a copy of the items after
// every mutation.
func (c *Cart) Subscribe(fn func([]Item)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// persist serializes the cart and notifies subscribers. Caller holds the lock.
func (c *Cart) persist() {
	if err := c.snapshot.Save(c.items); err != nil {
		c.logger.Error().Err(err).Msg("failed to persist cart snapshot")
	}

	snapshot := make([]Item, len(c.items))
	copy(snapshot, c.items)
	for _, fn := range c.subs {
		fn(snapshot)
	}
}
