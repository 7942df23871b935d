package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aero-store/internal/domain"
)

var (
	ErrPriceRangeNotFound     = errors.New("price range not found")
	ErrShippingOptionNotFound = errors.New("shipping option not found")
)

// LookupRepository serves the small fixed lookup tables the storefront
// filters and checkout depend on: price ranges and shipping options.
type LookupRepository interface {
	ListPriceRanges(ctx context.Context) ([]*domain.PriceRange, error)
	FindPriceRange(ctx context.Context, id string) (*domain.PriceRange, error)
	ListShippingOptions(ctx context.Context) ([]*domain.ShippingOption, error)
	FindShippingOption(ctx context.Context, id string) (*domain.ShippingOption, error)
}

type lookupRepository struct {
	db *sql.DB
}

// NewLookupRepository creates a new instance of LookupRepository
func NewLookupRepository(db *sql.DB) LookupRepository {
	return &lookupRepository{db: db}
}

// ListPriceRanges returns the named price brackets in menu order.
func (r *lookupRepository) ListPriceRanges(ctx context.Context) ([]*domain.PriceRange, error) {
	query := `
		SELECT id, name, min_price, max_price
		FROM price_ranges
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list price ranges: %w", err)
	}
	defer rows.Close()

	ranges := []*domain.PriceRange{}
	for rows.Next() {
		pr := &domain.PriceRange{}
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Min, &pr.Max); err != nil {
			return nil, fmt.Errorf("failed to scan price range: %w", err)
		}
		ranges = append(ranges, pr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price ranges: %w", err)
	}

	return ranges, nil
}

// FindPriceRange retrieves a price range by ID.
func (r *lookupRepository) FindPriceRange(ctx context.Context, id string) (*domain.PriceRange, error) {
	query := `
		SELECT id, name, min_price, max_price
		FROM price_ranges
		WHERE id = $1
	`

	pr := &domain.PriceRange{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&pr.ID, &pr.Name, &pr.Min, &pr.Max)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPriceRangeNotFound
		}
		return nil, fmt.Errorf("failed to find price range: %w", err)
	}

	return pr, nil
}

// ListShippingOptions returns the fixed delivery menu in display order.
func (r *lookupRepository) ListShippingOptions(ctx context.Context) ([]*domain.ShippingOption, error) {
	query := `
		SELECT id, name, delay, price, position
		FROM shipping_options
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipping options: %w", err)
	}
	defer rows.Close()

	options := []*domain.ShippingOption{}
	for rows.Next() {
		opt := &domain.ShippingOption{}
		if err := rows.Scan(&opt.ID, &opt.Name, &opt.Delay, &opt.Price, &opt.Position); err != nil {
			return nil, fmt.Errorf("failed to scan shipping option: %w", err)
		}
		options = append(options, opt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipping options: %w", err)
	}

	return options, nil
}

// FindShippingOption retrieves a shipping option by ID.
func (r *lookupRepository) FindShippingOption(ctx context.Context, id string) (*domain.ShippingOption, error) {
	query := `
		SELECT id, name, delay, price, position
		FROM shipping_options
		WHERE id = $1
	`

	opt := &domain.ShippingOption{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&opt.ID, &opt.Name, &opt.Delay, &opt.Price, &opt.Position)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShippingOptionNotFound
		}
		return nil, fmt.Errorf("failed to find shipping option: %w", err)
	}

	return opt, nil
}
