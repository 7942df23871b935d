package service

import (
	"context"
	"slices"
	"sync"

	"aero-store/internal/domain"
	"aero-store/internal/repository"
)

// CartService is the single owner of per-session shopping carts. Carts are
// memory-only and vanish with the process; derived totals are recomputed on
// every read, never cached.
type CartService interface {
	Get(sessionID string) *domain.CartView
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (*domain.CartView, error)
	UpdateQuantity(sessionID, productID string, quantity int) *domain.CartView
	RemoveItem(sessionID, productID string) *domain.CartView
	Clear(sessionID string) *domain.CartView
	OpenCart(sessionID string) *domain.CartView
	CloseCart(sessionID string) *domain.CartView
	ToggleCart(sessionID string) *domain.CartView
}

// sessionCart keeps line items in insertion order so the cart renders
// stably. At most one line item exists per product id.
type sessionCart struct {
	items []domain.CartItem
	open  bool
}

type cartService struct {
	mu          sync.Mutex
	carts       map[string]*sessionCart
	productRepo repository.ProductRepository
}

// NewCartService creates a new instance of CartService
func NewCartService(productRepo repository.ProductRepository) CartService {
	return &cartService{
		carts:       make(map[string]*sessionCart),
		productRepo: productRepo,
	}
}

func (s *cartService) cart(sessionID string) *sessionCart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &sessionCart{}
		s.carts[sessionID] = c
	}
	return c
}

// view must be called with the lock held.
func (s *cartService) view(c *sessionCart) *domain.CartView {
	items := slices.Clone(c.items)
	if items == nil {
		items = []domain.CartItem{}
	}
	itemCount, subtotal, shipping, total := domain.ComputeCartTotals(items)
	return &domain.CartView{
		Items:     items,
		ItemCount: itemCount,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     total,
		Open:      c.open,
	}
}

// Get returns the current cart snapshot for a session.
func (s *cartService) Get(sessionID string) *domain.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.cart(sessionID))
}

// AddItem merges the product into the cart: an existing line item has its
// quantity incremented, otherwise a new snapshot line is appended. Adding
// always opens the cart sidebar.
func (s *cartService) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*domain.CartView, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	if i := indexOfItem(c.items, productID); i >= 0 {
		c.items[i].Quantity += quantity
	} else {
		c.items = append(c.items, domain.NewCartItem(product, quantity))
	}
	c.open = true

	return s.view(c), nil
}

// UpdateQuantity sets an absolute quantity. A quantity of zero or less
// removes the line item.
func (s *cartService) UpdateQuantity(sessionID, productID string, quantity int) *domain.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	if i := indexOfItem(c.items, productID); i >= 0 {
		if quantity <= 0 {
			c.items = slices.Delete(c.items, i, i+1)
		} else {
			c.items[i].Quantity = quantity
		}
	}

	return s.view(c)
}

// RemoveItem deletes the line item for the product if present, no-op
// otherwise.
func (s *cartService) RemoveItem(sessionID, productID string) *domain.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	if i := indexOfItem(c.items, productID); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}

	return s.view(c)
}

// Clear empties the cart without touching the sidebar flag.
func (s *cartService) Clear(sessionID string) *domain.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	c.items = nil

	return s.view(c)
}

func (s *cartService) OpenCart(sessionID string) *domain.CartView {
	return s.setOpen(sessionID, func(open bool) bool { return true })
}

func (s *cartService) CloseCart(sessionID string) *domain.CartView {
	return s.setOpen(sessionID, func(open bool) bool { return false })
}

func (s *cartService) ToggleCart(sessionID string) *domain.CartView {
	return s.setOpen(sessionID, func(open bool) bool { return !open })
}

func (s *cartService) setOpen(sessionID string, next func(bool) bool) *domain.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	c.open = next(c.open)

	return s.view(c)
}

func indexOfItem(items []domain.CartItem, productID string) int {
	return slices.IndexFunc(items, func(item domain.CartItem) bool {
		return item.ProductID == productID
	})
}
