package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks the lifecycle of a placed order.
type OrderStatus string

const (
	OrderStatusPaid OrderStatus = "paid"
)

// Order is a completed checkout persisted for the confirmation page.
type Order struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	Reference      string      `json:"reference" db:"reference"`
	Email          string      `json:"email" db:"email"`
	FirstName      string      `json:"first_name" db:"first_name"`
	LastName       string      `json:"last_name" db:"last_name"`
	Phone          string      `json:"phone" db:"phone"`
	Address        string      `json:"address" db:"address"`
	City           string      `json:"city" db:"city"`
	PostalCode     string      `json:"postal_code" db:"postal_code"`
	Country        string      `json:"country" db:"country"`
	ShippingOption string      `json:"shipping_option" db:"shipping_option"`
	PromoCode      string      `json:"promo_code,omitempty" db:"promo_code"`
	Subtotal       float64     `json:"subtotal" db:"subtotal"`
	ShippingCost   float64     `json:"shipping_cost" db:"shipping_cost"`
	Discount       float64     `json:"discount" db:"discount"`
	Total          float64     `json:"total" db:"total"`
	Status         OrderStatus `json:"status" db:"status"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	Items          []OrderItem `json:"items"`
}

// OrderItem is one purchased line, frozen at checkout time.
type OrderItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID string    `json:"product_id" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	UnitPrice float64   `json:"unit_price" db:"unit_price"`
	Quantity  int       `json:"quantity" db:"quantity"`
}
