package transport

import (
	"errors"
	"net/http"

	"aero-store/internal/domain"
	"aero-store/internal/middleware"
	"aero-store/internal/repository"
	"aero-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddItemRequest represents the add-to-cart payload. Quantity defaults to 1
// when omitted.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

// UpdateQuantityRequest represents an absolute quantity set. Zero and
// negative values remove the line item.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartHandler handles HTTP requests for the session cart
type CartHandler struct {
	cartService service.CartService
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddItem)
		r.Put("/items/{productID}", h.UpdateQuantity)
		r.Delete("/items/{productID}", h.RemoveItem)
		r.Post("/open", h.OpenCart)
		r.Post("/close", h.CloseCart)
		r.Post("/toggle", h.ToggleCart)
	})
}

// GetCart returns the cart snapshot with derived totals
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("Session ID not found in context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.cartService.Get(sessionID))
}

// AddItem merges a product into the cart and opens the sidebar
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	var req AddItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to cart validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddItem(r.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Failed to add cart item", zap.Error(err), zap.String("product_id", req.ProductID))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	h.logger.Info("Item added to cart",
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
	)
	middleware.RespondWithJSON(w, http.StatusOK, cart)
}

// UpdateQuantity sets an absolute quantity for a line item
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	var req UpdateQuantityRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Quantity update decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID := chi.URLParam(r, "productID")
	cart := h.cartService.UpdateQuantity(sessionID, productID, req.Quantity)

	middleware.RespondWithJSON(w, http.StatusOK, cart)
}

// RemoveItem deletes a line item
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	productID := chi.URLParam(r, "productID")
	cart := h.cartService.RemoveItem(sessionID, productID)

	middleware.RespondWithJSON(w, http.StatusOK, cart)
}

// ClearCart empties all line items
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.cartService.Clear(sessionID))
}

// OpenCart shows the cart sidebar
func (h *CartHandler) OpenCart(w http.ResponseWriter, r *http.Request) {
	h.toggleVisibility(w, r, h.cartService.OpenCart)
}

// CloseCart hides the cart sidebar
func (h *CartHandler) CloseCart(w http.ResponseWriter, r *http.Request) {
	h.toggleVisibility(w, r, h.cartService.CloseCart)
}

// ToggleCart flips the cart sidebar flag
func (h *CartHandler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	h.toggleVisibility(w, r, h.cartService.ToggleCart)
}

func (h *CartHandler) toggleVisibility(w http.ResponseWriter, r *http.Request, op func(string) *domain.CartView) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, op(sessionID))
}
