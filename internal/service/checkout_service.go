package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aero-store/internal/domain"
	"aero-store/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// CheckoutQuote is the priced summary of a checkout in progress: the cart
// subtotal combined with the chosen delivery option and any applied promo.
type CheckoutQuote struct {
	Subtotal       float64                `json:"subtotal"`
	ShippingCost   float64                `json:"shipping_cost"`
	Discount       float64                `json:"discount"`
	Total          float64                `json:"total"`
	ShippingOption *domain.ShippingOption `json:"shipping_option"`
	Promo          *domain.PromoCode      `json:"promo,omitempty"`
}

// PlaceOrderInput carries the validated checkout form.
type PlaceOrderInput struct {
	Email          string
	FirstName      string
	LastName       string
	Phone          string
	Address        string
	City           string
	PostalCode     string
	Country        string
	ShippingOption string
	PromoCode      string
}

// CheckoutService prices and places orders. Payment is simulated with a
// fixed, cancellable delay; there is no real payment gateway.
type CheckoutService interface {
	Quote(ctx context.Context, sessionID, shippingOptionID, promoCode string) (*CheckoutQuote, error)
	PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, reference string) (*domain.Order, error)
}

type checkoutService struct {
	cartService  CartService
	lookupRepo   repository.LookupRepository
	promoRepo    repository.PromoRepository
	orderRepo    repository.OrderRepository
	paymentDelay time.Duration
}

// NewCheckoutService creates a new instance of CheckoutService
func NewCheckoutService(
	cartService CartService,
	lookupRepo repository.LookupRepository,
	promoRepo repository.PromoRepository,
	orderRepo repository.OrderRepository,
	paymentDelay time.Duration,
) CheckoutService {
	return &checkoutService{
		cartService:  cartService,
		lookupRepo:   lookupRepo,
		promoRepo:    promoRepo,
		orderRepo:    orderRepo,
		paymentDelay: paymentDelay,
	}
}

// Quote computes subtotal + shipping - discount for the session cart. An
// unknown promo code is an explicit error, not a silent no-op; the discount
// is clamped so the total never drops below the shipping cost.
func (s *checkoutService) Quote(ctx context.Context, sessionID, shippingOptionID, promoCode string) (*CheckoutQuote, error) {
	cart := s.cartService.Get(sessionID)

	option, err := s.lookupRepo.FindShippingOption(ctx, shippingOptionID)
	if err != nil {
		return nil, err
	}

	quote := &CheckoutQuote{
		Subtotal:       cart.Subtotal,
		ShippingCost:   option.Price,
		ShippingOption: option,
	}

	if strings.TrimSpace(promoCode) != "" {
		promo, err := s.promoRepo.FindByCode(ctx, promoCode)
		if err != nil {
			return nil, err
		}
		quote.Promo = promo
		quote.Discount = promo.DiscountFor(cart.Subtotal)
	}

	quote.Total = quote.Subtotal + quote.ShippingCost - quote.Discount

	return quote, nil
}

// PlaceOrder runs the simulated payment, persists the order with its line
// items and clears the session cart. The cart must not be empty.
func (s *checkoutService) PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*domain.Order, error) {
	cart := s.cartService.Get(sessionID)
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	quote, err := s.Quote(ctx, sessionID, input.ShippingOption, input.PromoCode)
	if err != nil {
		return nil, err
	}

	if err := s.processPayment(ctx); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:             uuid.New(),
		Reference:      newOrderReference(),
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Phone:          input.Phone,
		Address:        input.Address,
		City:           input.City,
		PostalCode:     input.PostalCode,
		Country:        input.Country,
		ShippingOption: quote.ShippingOption.ID,
		Subtotal:       quote.Subtotal,
		ShippingCost:   quote.ShippingCost,
		Discount:       quote.Discount,
		Total:          quote.Total,
		Status:         domain.OrderStatusPaid,
		CreatedAt:      time.Now(),
	}
	if quote.Promo != nil {
		order.PromoCode = quote.Promo.Code
	}

	for _, item := range cart.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.cartService.Clear(sessionID)

	return order, nil
}

// GetOrder loads a placed order by its customer-facing reference, for the
// confirmation page.
func (s *checkoutService) GetOrder(ctx context.Context, reference string) (*domain.Order, error) {
	return s.orderRepo.FindByReference(ctx, reference)
}

// processPayment stands in for a payment gateway call: a fixed delay that
// honors context cancellation.
func (s *checkoutService) processPayment(ctx context.Context) error {
	if s.paymentDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.paymentDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// newOrderReference builds the short customer-facing order code.
func newOrderReference() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "AERO-" + strings.ToUpper(id[:8])
}
