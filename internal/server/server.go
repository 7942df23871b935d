package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"aero-store/internal/config"
	custommiddleware "aero-store/internal/middleware"
	"aero-store/internal/repository"
	"aero-store/internal/service"
	"aero-store/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config      *config.Config
	logger      *zap.Logger
	db          *sql.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.SessionMiddleware(cfg.Session.Secret, logger))

	// Rate limiting is optional; the storefront works without Redis.
	var redisClient *redis.Client
	if cfg.Redis.RateLimitEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.Redis.RequestsPerMinute,
			Window:            time.Minute,
			KeyPrefix:         "ratelimit",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	promoRepo := repository.NewPromoRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, categoryRepo, lookupRepo)
	cartService := service.NewCartService(productRepo)
	wishlistService := service.NewWishlistService(productRepo)
	checkoutService := service.NewCheckoutService(cartService, lookupRepo, promoRepo, orderRepo, cfg.Checkout.PaymentDelay)

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(catalogService, logger)
	cartHandler := transport.NewCartHandler(cartService, logger)
	wishlistHandler := transport.NewWishlistHandler(wishlistService, logger)
	checkoutHandler := transport.NewCheckoutHandler(checkoutService, logger)

	// Register routes
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	wishlistHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:      cfg,
		logger:      logger,
		db:          db,
		redisClient: redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
