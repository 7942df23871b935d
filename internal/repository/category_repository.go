package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aero-store/internal/domain"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository defines read access to product categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns all categories with their current product counts. The "all"
// pseudo-category is included with the full catalog count.
func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT c.id, c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category = c.id OR c.id = 'all'
		GROUP BY c.id, c.name, c.position
		ORDER BY c.position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// FindByID retrieves a category by ID using parameterized queries
func (r *categoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `
		SELECT c.id, c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category = c.id
		WHERE c.id = $1
		GROUP BY c.id, c.name
	`

	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name, &category.Count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	return category, nil
}
