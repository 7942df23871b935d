package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"aero-store/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines read access to the catalog. The catalog is
// seeded by migrations and never mutated at runtime.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindRelated(ctx context.Context, category, excludeID string, limit int) ([]*domain.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, tagline, description, category, kind, price,
	original_price, image_url, color, rating, review_count, in_stock,
	stock_count, badge, specs, position`

// ListAll returns the full catalog in declaration order. This order is the
// implicit "featured" sort, so it must be deterministic.
func (r *productRepository) ListAll(ctx context.Context) ([]*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		ORDER BY position ASC
	`, productColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// FindByID retrieves a product by ID using parameterized queries
func (r *productRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = $1
	`, productColumns)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// FindRelated returns up to limit products sharing a category, excluding the
// product itself. Used by the product detail page.
func (r *productRepository) FindRelated(ctx context.Context, category, excludeID string, limit int) ([]*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE category = $1 AND id <> $2
		ORDER BY position ASC
		LIMIT $3
	`, productColumns)

	rows, err := r.db.QueryContext(ctx, query, category, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find related products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating related products: %w", err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var (
		originalPrice sql.NullFloat64
		rating        sql.NullFloat64
		reviewCount   sql.NullInt64
		stockCount    sql.NullInt64
		badge         sql.NullString
		specsJSON     []byte
	)

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Tagline,
		&product.Description,
		&product.Category,
		&product.Kind,
		&product.Price,
		&originalPrice,
		&product.ImageURL,
		&product.Color,
		&rating,
		&reviewCount,
		&product.InStock,
		&stockCount,
		&badge,
		&specsJSON,
		&product.Position,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	product.OriginalPrice = originalPrice.Float64
	product.Rating = rating.Float64
	product.ReviewCount = int(reviewCount.Int64)
	product.StockCount = int(stockCount.Int64)
	product.Badge = badge.String

	if len(specsJSON) > 0 {
		specs := &domain.Specs{}
		if err := json.Unmarshal(specsJSON, specs); err != nil {
			return nil, fmt.Errorf("failed to decode product specs: %w", err)
		}
		product.Specs = specs
	}

	return product, nil
}
