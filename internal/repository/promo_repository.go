package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"aero-store/internal/domain"
)

var (
	ErrPromoNotFound = errors.New("promo code not found")
)

// PromoRepository defines lookup access to the fixed promo code table.
type PromoRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.PromoCode, error)
}

type promoRepository struct {
	db *sql.DB
}

// NewPromoRepository creates a new instance of PromoRepository
func NewPromoRepository(db *sql.DB) PromoRepository {
	return &promoRepository{db: db}
}

// FindByCode matches a promo code case-insensitively. Codes are stored
// uppercase.
func (r *promoRepository) FindByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	query := `
		SELECT code, discount_type, amount
		FROM promo_codes
		WHERE code = $1
	`

	promo := &domain.PromoCode{}
	err := r.db.QueryRowContext(ctx, query, strings.ToUpper(strings.TrimSpace(code))).Scan(
		&promo.Code,
		&promo.Type,
		&promo.Amount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPromoNotFound
		}
		return nil, fmt.Errorf("failed to find promo code: %w", err)
	}

	return promo, nil
}
