package model

import "time"

// OrderStatus is the lifecycle state of an order. New orders always start
// as pending; status updates may move to any other enumerated value.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the five enumerated values.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Address is a shipping address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// OrderItem is a line item on an order. Price is the unit price in minor
// units captured at submission time; later catalogue changes never touch it.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// Order represents a placed customer order. The ID is a UUID when the order
// was durably persisted and a "mem-" prefixed synthetic id when it landed in
// the in-memory fallback store.
type Order struct {
	ID              string      `json:"id" db:"id"`
	CustomerName    string      `json:"customerName" db:"customer_name"`
	Email           string      `json:"email" db:"email"`
	Phone           string      `json:"phone" db:"phone"`
	ShippingAddress Address     `json:"shippingAddress" db:"shipping_address"`
	Items           []OrderItem `json:"items" db:"items"`
	TotalAmount     int64       `json:"totalAmount" db:"total_amount"`
	Notes           string      `json:"notes" db:"notes"`
	Status          OrderStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderRequest is the request payload for creating an order: the cart
// snapshot plus customer and shipping details.
type OrderRequest struct {
	CustomerName    string      `json:"customerName"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	ShippingAddress Address     `json:"shippingAddress"`
	Items           []OrderItem `json:"items"`
	TotalAmount     int64       `json:"totalAmount"`
	Notes           string      `json:"notes"`
}

// StatusUpdateRequest is the request payload for PATCH /api/orders/{id}/status.
type StatusUpdateRequest struct {
	Status OrderStatus `json:"status"`
}
