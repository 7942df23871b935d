package transport

import (
	"errors"
	"net/http"

	"aero-store/internal/middleware"
	"aero-store/internal/repository"
	"aero-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// QuoteRequest prices the cart against a delivery option and optional promo
// code without placing an order.
type QuoteRequest struct {
	ShippingOption string `json:"shipping_option" validate:"required"`
	PromoCode      string `json:"promo_code"`
}

// PlaceOrderRequest represents the full checkout form. Card fields are
// accepted for flow fidelity but never stored; payment is simulated.
type PlaceOrderRequest struct {
	Email          string `json:"email" validate:"required,email"`
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city" validate:"required"`
	PostalCode     string `json:"postal_code" validate:"required"`
	Country        string `json:"country" validate:"required"`
	ShippingOption string `json:"shipping_option" validate:"required"`
	PromoCode      string `json:"promo_code"`
	CardNumber     string `json:"card_number" validate:"required"`
	CardExpiry     string `json:"card_expiry" validate:"required"`
	CardCVC        string `json:"card_cvc" validate:"required"`
	CardName       string `json:"card_name" validate:"required"`
}

// CheckoutHandler handles HTTP requests for quotes and order placement
type CheckoutHandler struct {
	checkoutService service.CheckoutService
	logger          *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService service.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// RegisterRoutes registers all checkout routes
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/checkout", func(r chi.Router) {
		r.Post("/quote", h.Quote)
		r.Post("/", h.PlaceOrder)
	})
	r.Get("/api/orders/{reference}", h.GetOrder)
}

// GetOrder serves the confirmation page lookup by order reference
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	order, err := h.checkoutService.GetOrder(r.Context(), reference)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}

		h.logger.Error("Order lookup failed", zap.Error(err), zap.String("reference", reference))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// Quote prices the current cart
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	var req QuoteRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Quote validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.checkoutService.Quote(r.Context(), sessionID, req.ShippingOption, req.PromoCode)
	if err != nil {
		h.respondQuoteError(w, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, quote)
}

// PlaceOrder runs the simulated payment and persists the order
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	var req PlaceOrderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Checkout validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.checkoutService.PlaceOrder(r.Context(), sessionID, service.PlaceOrderInput{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		PostalCode:     req.PostalCode,
		Country:        req.Country,
		ShippingOption: req.ShippingOption,
		PromoCode:      req.PromoCode,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			middleware.RespondWithError(w, http.StatusConflict, "cart is empty")
			return
		}
		h.respondQuoteError(w, err)
		return
	}

	h.logger.Info("Order placed",
		zap.String("reference", order.Reference),
		zap.Float64("total", order.Total),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

func (h *CheckoutHandler) respondQuoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrPromoNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "promo code not found")
	case errors.Is(err, repository.ErrShippingOptionNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "shipping option not found")
	default:
		h.logger.Error("Checkout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "checkout failed")
	}
}
