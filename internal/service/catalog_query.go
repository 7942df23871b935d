package service

import (
	"slices"
	"strings"

	"aero-store/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by the catalog query. SortFeatured preserves catalog
// declaration order.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// FilterAll disables the category or price-range filter.
const FilterAll = "all"

// CatalogQuery holds the storefront filter/sort inputs. Zero values mean
// "no filtering, featured order".
type CatalogQuery struct {
	Search     string
	Category   string
	PriceRange string
	SortBy     string
}

// nameCollator compares product names with French collation rules, matching
// the storefront's locale-aware A-Z sort.
var nameCollator = collate.New(language.French)

// ApplyQuery filters and sorts the catalog. The input slice is never
// mutated; all sorts are stable so equal elements keep their relative
// catalog order. An empty result is a valid outcome, distinct from a nil
// catalog.
func ApplyQuery(products []*domain.Product, ranges []*domain.PriceRange, q CatalogQuery) []*domain.Product {
	result := make([]*domain.Product, 0, len(products))
	result = append(result, products...)

	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		result = slices.DeleteFunc(result, func(p *domain.Product) bool {
			return !strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Tagline), search) &&
				!strings.Contains(strings.ToLower(p.Category), search)
		})
	}

	if q.Category != "" && q.Category != FilterAll {
		result = slices.DeleteFunc(result, func(p *domain.Product) bool {
			return p.Category != q.Category
		})
	}

	if q.PriceRange != "" && q.PriceRange != FilterAll {
		if pr := findPriceRange(ranges, q.PriceRange); pr != nil {
			result = slices.DeleteFunc(result, func(p *domain.Product) bool {
				return p.Price < pr.Min || p.Price >= pr.Max
			})
		}
	}

	sortProducts(result, q.SortBy)

	return result
}

func findPriceRange(ranges []*domain.PriceRange, id string) *domain.PriceRange {
	for _, pr := range ranges {
		if pr.ID == id {
			return pr
		}
	}
	return nil
}

func sortProducts(products []*domain.Product, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b *domain.Product) int {
			return compareFloat(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b *domain.Product) int {
			return compareFloat(b.Price, a.Price)
		})
	case SortName:
		slices.SortStableFunc(products, func(a, b *domain.Product) int {
			return nameCollator.CompareString(a.Name, b.Name)
		})
	case SortRating:
		// Missing ratings sort as 0, i.e. last.
		slices.SortStableFunc(products, func(a, b *domain.Product) int {
			return compareFloat(b.Rating, a.Rating)
		})
	case SortNewest:
		// Not chronological: a stable partition putting "Nouveau" badges
		// first, everything else in catalog order behind them.
		slices.SortStableFunc(products, func(a, b *domain.Product) int {
			return badgeRank(a) - badgeRank(b)
		})
	default:
		// SortFeatured and unknown keys keep catalog order.
	}
}

func badgeRank(p *domain.Product) int {
	if p.Badge == domain.BadgeNew {
		return 0
	}
	return 1
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
