package service

import (
	"context"
	"slices"
	"sync"

	"aero-store/internal/domain"
	"aero-store/internal/repository"
)

// WishlistService tracks favorited products per session with set semantics:
// at most one entry per product id. Like carts, wishlists are memory-only.
type WishlistService interface {
	Get(sessionID string) *domain.WishlistView
	IsInWishlist(sessionID, productID string) bool
	Toggle(ctx context.Context, sessionID, productID string) (*domain.WishlistView, error)
	Add(ctx context.Context, sessionID, productID string) (*domain.WishlistView, error)
	Remove(sessionID, productID string) *domain.WishlistView
	Clear(sessionID string) *domain.WishlistView
}

type wishlistService struct {
	mu          sync.Mutex
	lists       map[string][]*domain.Product
	productRepo repository.ProductRepository
}

// NewWishlistService creates a new instance of WishlistService
func NewWishlistService(productRepo repository.ProductRepository) WishlistService {
	return &wishlistService{
		lists:       make(map[string][]*domain.Product),
		productRepo: productRepo,
	}
}

// view must be called with the lock held.
func (s *wishlistService) view(sessionID string) *domain.WishlistView {
	items := slices.Clone(s.lists[sessionID])
	if items == nil {
		items = []*domain.Product{}
	}
	return &domain.WishlistView{Items: items, ItemCount: len(items)}
}

// Get returns the current wishlist snapshot for a session.
func (s *wishlistService) Get(sessionID string) *domain.WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(sessionID)
}

// IsInWishlist reports membership by product id.
func (s *wishlistService) IsInWishlist(sessionID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOfProduct(s.lists[sessionID], productID) >= 0
}

// Toggle removes the product if present, otherwise stores the full product
// record.
func (s *wishlistService) Toggle(ctx context.Context, sessionID, productID string) (*domain.WishlistView, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.lists[sessionID]
	if i := indexOfProduct(items, productID); i >= 0 {
		s.lists[sessionID] = slices.Delete(items, i, i+1)
	} else {
		s.lists[sessionID] = append(items, product)
	}

	return s.view(sessionID), nil
}

// Add is idempotent: adding a product already present changes nothing.
func (s *wishlistService) Add(ctx context.Context, sessionID, productID string) (*domain.WishlistView, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOfProduct(s.lists[sessionID], productID) < 0 {
		s.lists[sessionID] = append(s.lists[sessionID], product)
	}

	return s.view(sessionID), nil
}

// Remove is idempotent: removing an absent product is a no-op.
func (s *wishlistService) Remove(sessionID, productID string) *domain.WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.lists[sessionID]
	if i := indexOfProduct(items, productID); i >= 0 {
		s.lists[sessionID] = slices.Delete(items, i, i+1)
	}

	return s.view(sessionID)
}

// Clear empties the wishlist.
func (s *wishlistService) Clear(sessionID string) *domain.WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.lists, sessionID)

	return s.view(sessionID)
}

func indexOfProduct(items []*domain.Product, productID string) int {
	return slices.IndexFunc(items, func(p *domain.Product) bool {
		return p.ID == productID
	})
}
