package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aero-store/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository persists completed checkouts.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByReference(ctx context.Context, reference string) (*domain.Order, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its items in a single transaction.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (id, reference, email, first_name, last_name, phone,
			address, city, postal_code, country, shipping_option, promo_code,
			subtotal, shipping_cost, discount, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err = tx.ExecContext(
		ctx,
		orderQuery,
		order.ID,
		order.Reference,
		order.Email,
		order.FirstName,
		order.LastName,
		order.Phone,
		order.Address,
		order.City,
		order.PostalCode,
		order.Country,
		order.ShippingOption,
		order.PromoCode,
		order.Subtotal,
		order.ShippingCost,
		order.Discount,
		order.Total,
		order.Status,
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, name, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, item := range order.Items {
		_, err = tx.ExecContext(
			ctx,
			itemQuery,
			item.ID,
			order.ID,
			item.ProductID,
			item.Name,
			item.UnitPrice,
			item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// FindByReference loads an order and its items by the customer-facing
// reference.
func (r *orderRepository) FindByReference(ctx context.Context, reference string) (*domain.Order, error) {
	query := `
		SELECT id, reference, email, first_name, last_name, phone, address,
			city, postal_code, country, shipping_option, promo_code,
			subtotal, shipping_cost, discount, total, status, created_at
		FROM orders
		WHERE reference = $1
	`

	order := &domain.Order{}
	var promoCode sql.NullString
	err := r.db.QueryRowContext(ctx, query, reference).Scan(
		&order.ID,
		&order.Reference,
		&order.Email,
		&order.FirstName,
		&order.LastName,
		&order.Phone,
		&order.Address,
		&order.City,
		&order.PostalCode,
		&order.Country,
		&order.ShippingOption,
		&promoCode,
		&order.Subtotal,
		&order.ShippingCost,
		&order.Discount,
		&order.Total,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	order.PromoCode = promoCode.String

	itemsQuery := `
		SELECT id, order_id, product_id, name, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
	`

	rows, err := r.db.QueryContext(ctx, itemsQuery, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		var itemID, orderID uuid.UUID
		if err := rows.Scan(&itemID, &orderID, &item.ProductID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		item.ID = itemID
		item.OrderID = orderID
		order.Items = append(order.Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return order, nil
}
