package service

import (
	"context"
	"fmt"

	"aero-store/internal/domain"
	"aero-store/internal/repository"
)

// RelatedProductLimit caps the "you may also like" strip on the detail page.
const RelatedProductLimit = 3

// ProductDetail bundles a product with its related items and the computed
// discount percentage shown next to the original price.
type ProductDetail struct {
	Product         *domain.Product   `json:"product"`
	DiscountPercent int               `json:"discount_percent"`
	Related         []*domain.Product `json:"related"`
}

// CatalogService defines the browsing surface over the static catalog.
type CatalogService interface {
	Browse(ctx context.Context, query CatalogQuery) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*ProductDetail, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	ListPriceRanges(ctx context.Context) ([]*domain.PriceRange, error)
	ListShippingOptions(ctx context.Context) ([]*domain.ShippingOption, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	catRepo     repository.CategoryRepository
	lookupRepo  repository.LookupRepository
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(
	productRepo repository.ProductRepository,
	catRepo repository.CategoryRepository,
	lookupRepo repository.LookupRepository,
) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		catRepo:     catRepo,
		lookupRepo:  lookupRepo,
	}
}

// Browse loads the full catalog and applies the query. The catalog is tens
// of items, so filtering in memory on every request is cheaper than keeping
// an index consistent.
func (s *catalogService) Browse(ctx context.Context, query CatalogQuery) ([]*domain.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	ranges, err := s.lookupRepo.ListPriceRanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load price ranges: %w", err)
	}

	return ApplyQuery(products, ranges, query), nil
}

// GetProduct returns a product with up to RelatedProductLimit same-category
// products. A missing id surfaces repository.ErrProductNotFound, which the
// transport layer maps to a recoverable 404.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	related, err := s.productRepo.FindRelated(ctx, product.Category, product.ID, RelatedProductLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load related products: %w", err)
	}

	return &ProductDetail{
		Product:         product,
		DiscountPercent: product.DiscountPercent(),
		Related:         related,
	}, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.catRepo.List(ctx)
}

func (s *catalogService) ListPriceRanges(ctx context.Context) ([]*domain.PriceRange, error) {
	return s.lookupRepo.ListPriceRanges(ctx)
}

func (s *catalogService) ListShippingOptions(ctx context.Context) ([]*domain.ShippingOption, error) {
	return s.lookupRepo.ListShippingOptions(ctx)
}
