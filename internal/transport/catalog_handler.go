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

// ProductListResponse wraps a catalog query result. Count is present so an
// empty result renders as "0 found" rather than a missing catalog.
type ProductListResponse struct {
	Products interface{} `json:"products"`
	Count    int         `json:"count"`
}

// CatalogHandler handles HTTP requests for catalog browsing
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/catalog", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Get("/categories", h.ListCategories)
		r.Get("/price-ranges", h.ListPriceRanges)
		r.Get("/shipping-options", h.ListShippingOptions)
	})
}

// ListProducts handles filtered, sorted catalog queries
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := service.CatalogQuery{
		Search:     r.URL.Query().Get("search"),
		Category:   r.URL.Query().Get("category"),
		PriceRange: r.URL.Query().Get("price_range"),
		SortBy:     r.URL.Query().Get("sort"),
	}

	products, err := h.catalogService.Browse(r.Context(), query)
	if err != nil {
		h.logger.Error("Catalog query failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Products: products,
		Count:    len(products),
	})
}

// GetProduct handles product detail lookups. Unknown ids are a recoverable
// not-found, never an internal error.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}

		h.logger.Error("Product lookup failed", zap.Error(err), zap.String("product_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, detail)
}

// ListCategories handles the category menu with product counts
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load categories")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// ListPriceRanges handles the price filter menu
func (h *CatalogHandler) ListPriceRanges(w http.ResponseWriter, r *http.Request) {
	ranges, err := h.catalogService.ListPriceRanges(r.Context())
	if err != nil {
		h.logger.Error("Failed to list price ranges", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load price ranges")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ranges)
}

// ListShippingOptions handles the delivery menu
func (h *CatalogHandler) ListShippingOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.catalogService.ListShippingOptions(r.Context())
	if err != nil {
		h.logger.Error("Failed to list shipping options", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load shipping options")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, options)
}
