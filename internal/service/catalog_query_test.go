package service

import (
	"slices"
	"testing"

	"aero-store/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func queryCatalog() []*domain.Product {
	return []*domain.Product{
		{ID: "aero-nano", Name: "Aero Nano", Tagline: "Le drone de poche", Category: "entry", Price: 99.00, Rating: 4.2},
		{ID: "aero-lite", Name: "Aero Lite", Tagline: "Léger et agile", Category: "entry", Price: 199.00, Rating: 4.5},
		{ID: "aero-x1", Name: "Aero X1", Tagline: "Pour progresser", Category: "intermediate", Price: 449.00, Rating: 4.5},
		{ID: "aero-sky", Name: "Aero Sky", Tagline: "Vue imprenable", Category: "intermediate", Price: 649.00, Badge: domain.BadgeNew},
		{ID: "aero-pro", Name: "Aero Pro", Tagline: "Caméra 4K stabilisée", Category: "pro", Price: 1299.00, Rating: 4.8},
		{ID: "aero-pro-max", Name: "Aero Pro Max", Tagline: "Le vaisseau amiral", Category: "pro", Price: 2499.00, Rating: 4.9, Badge: domain.BadgeNew},
		{ID: "etui-rigide", Name: "Étui rigide", Tagline: "Protection de transport", Category: "accessoires", Price: 59.90, Rating: 4.1},
	}
}

func queryRanges() []*domain.PriceRange {
	return []*domain.PriceRange{
		{ID: "under-500", Name: "Moins de 500 €", Min: 0, Max: 500},
		{ID: "500-1000", Name: "500 € - 1000 €", Min: 500, Max: 1000},
		{ID: "over-2000", Name: "Plus de 2000 €", Min: 2000, Max: 1000000},
	}
}

func productIDs(products []*domain.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestApplyQueryFilterComposition(t *testing.T) {
	catalog := queryCatalog()
	ranges := queryRanges()

	tests := []struct {
		name  string
		query CatalogQuery
		want  []string
	}{
		{
			name:  "no filters keeps catalog order",
			query: CatalogQuery{},
			want:  productIDs(catalog),
		},
		{
			name:  "category filter",
			query: CatalogQuery{Category: "pro"},
			want:  []string{"aero-pro", "aero-pro-max"},
		},
		{
			name:  "all category disables the filter",
			query: CatalogQuery{Category: FilterAll},
			want:  productIDs(catalog),
		},
		{
			name:  "price range is half-open",
			query: CatalogQuery{PriceRange: "500-1000"},
			want:  []string{"aero-sky"},
		},
		{
			name:  "search matches name case-insensitively",
			query: CatalogQuery{Search: "PRO"},
			want:  []string{"aero-pro", "aero-pro-max"},
		},
		{
			name:  "search matches tagline",
			query: CatalogQuery{Search: "poche"},
			want:  []string{"aero-nano"},
		},
		{
			name:  "search matches category",
			query: CatalogQuery{Search: "accessoires"},
			want:  []string{"etui-rigide"},
		},
		{
			name:  "search then category then price range",
			query: CatalogQuery{Search: "aero", Category: "pro", PriceRange: "over-2000"},
			want:  []string{"aero-pro-max"},
		},
		{
			name:  "empty result is valid",
			query: CatalogQuery{Search: "sous-marin"},
			want:  []string{},
		},
		{
			name:  "unknown price range is ignored",
			query: CatalogQuery{PriceRange: "no-such-range"},
			want:  productIDs(catalog),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productIDs(ApplyQuery(catalog, ranges, tt.query))
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyQuerySorts(t *testing.T) {
	catalog := queryCatalog()
	ranges := queryRanges()

	tests := []struct {
		name   string
		sortBy string
		want   []string
	}{
		{
			name:   "price ascending",
			sortBy: SortPriceAsc,
			want:   []string{"etui-rigide", "aero-nano", "aero-lite", "aero-x1", "aero-sky", "aero-pro", "aero-pro-max"},
		},
		{
			name:   "price descending",
			sortBy: SortPriceDesc,
			want:   []string{"aero-pro-max", "aero-pro", "aero-sky", "aero-x1", "aero-lite", "aero-nano", "etui-rigide"},
		},
		{
			name:   "name uses French collation, accents sort with their base letter",
			sortBy: SortName,
			want:   []string{"aero-lite", "aero-nano", "aero-pro", "aero-pro-max", "aero-sky", "aero-x1", "etui-rigide"},
		},
		{
			// aero-lite and aero-x1 share a 4.5 rating; stability keeps
			// aero-lite (earlier in catalog order) first. aero-sky has no
			// rating and sorts last as 0.
			name:   "rating descending with missing ratings last",
			sortBy: SortRating,
			want:   []string{"aero-pro-max", "aero-pro", "aero-lite", "aero-x1", "aero-nano", "etui-rigide", "aero-sky"},
		},
		{
			name:   "newest is a stable partition on the Nouveau badge",
			sortBy: SortNewest,
			want:   []string{"aero-sky", "aero-pro-max", "aero-nano", "aero-lite", "aero-x1", "aero-pro", "etui-rigide"},
		},
		{
			name:   "unknown sort key keeps catalog order",
			sortBy: "chronological",
			want:   productIDs(catalog),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productIDs(ApplyQuery(catalog, ranges, CatalogQuery{SortBy: tt.sortBy}))
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProperty_ApplyQueryNeverMutatesTheCatalog(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("the input slice keeps its order after any query", prop.ForAll(
		func(search string, category string, sortBy string) bool {
			catalog := queryCatalog()
			before := productIDs(catalog)

			ApplyQuery(catalog, queryRanges(), CatalogQuery{
				Search:   search,
				Category: category,
				SortBy:   sortBy,
			})

			return slices.Equal(productIDs(catalog), before)
		},
		gen.AnyString(),
		gen.OneConstOf("", FilterAll, "entry", "pro", "accessoires"),
		gen.OneConstOf(SortFeatured, SortPriceAsc, SortPriceDesc, SortName, SortRating, SortNewest),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_FilteredResultsSatisfyTheirFilters(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every surviving product matches the active filters", prop.ForAll(
		func(category string, rangeID string) bool {
			catalog := queryCatalog()
			ranges := queryRanges()

			result := ApplyQuery(catalog, ranges, CatalogQuery{Category: category, PriceRange: rangeID})

			pr := findPriceRange(ranges, rangeID)
			for _, p := range result {
				if category != "" && category != FilterAll && p.Category != category {
					t.Logf("FAIL: product %s escaped category filter %s", p.ID, category)
					return false
				}
				if pr != nil && (p.Price < pr.Min || p.Price >= pr.Max) {
					t.Logf("FAIL: product %s price %f outside range %s", p.ID, p.Price, rangeID)
					return false
				}
			}
			return true
		},
		gen.OneConstOf("", FilterAll, "entry", "intermediate", "pro", "accessoires"),
		gen.OneConstOf("", FilterAll, "under-500", "500-1000", "over-2000"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
