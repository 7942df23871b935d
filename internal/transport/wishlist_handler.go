package transport

import (
	"context"
	"errors"
	"net/http"

	"aero-store/internal/domain"
	"aero-store/internal/middleware"
	"aero-store/internal/repository"
	"aero-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WishlistRequest represents a wishlist toggle/add payload
type WishlistRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// WishlistHandler handles HTTP requests for the session wishlist
type WishlistHandler struct {
	wishlistService service.WishlistService
	logger          *zap.Logger
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlistService service.WishlistService, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		logger:          logger,
	}
}

// RegisterRoutes registers all wishlist routes
func (h *WishlistHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/wishlist", func(r chi.Router) {
		r.Get("/", h.GetWishlist)
		r.Delete("/", h.ClearWishlist)
		r.Post("/toggle", h.Toggle)
		r.Post("/items", h.AddItem)
		r.Delete("/items/{productID}", h.RemoveItem)
	})
}

// GetWishlist returns the wishlist snapshot
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.wishlistService.Get(sessionID))
}

// Toggle flips membership for a product
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.wishlistService.Toggle)
}

// AddItem adds a product; adding twice is a no-op
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.wishlistService.Add)
}

func (h *WishlistHandler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, sessionID, productID string) (*domain.WishlistView, error),
) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	var req WishlistRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Wishlist validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wishlist, err := op(r.Context(), sessionID, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Wishlist mutation failed", zap.Error(err), zap.String("product_id", req.ProductID))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update wishlist")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, wishlist)
}

// RemoveItem removes a product; removing an absent product is a no-op
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	productID := chi.URLParam(r, "productID")
	middleware.RespondWithJSON(w, http.StatusOK, h.wishlistService.Remove(sessionID, productID))
}

// ClearWishlist empties the wishlist
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusInternalServerError, "session unavailable")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.wishlistService.Clear(sessionID))
}
