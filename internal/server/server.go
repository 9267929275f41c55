package server

import (
	"context"
	"math"
	"net/http"
	"path/filepath"
	"sync/atomic"

	"ecommerce-platform/internal/auth"
	"ecommerce-platform/internal/config"
	"ecommerce-platform/internal/handler"
	"ecommerce-platform/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type handlers struct {
	auth    *handler.AuthHandler
	order   *handler.OrderHandler
	product *handler.ProductHandler
}

// Server accepts requests before the database is connected. API routes
// answer 503 until Attach is called.
type Server struct {
	echo     *echo.Echo
	cfg      *config.Config
	tokens   *auth.TokenManager
	handlers atomic.Pointer[handlers]
}

func NewServer(cfg *config.Config, log *zap.Logger, tokens *auth.TokenManager) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.ReadTimeout
	e.Server.WriteTimeout = cfg.HTTP.WriteTimeout
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.Metrics())

	s := &Server{
		echo:   e,
		cfg:    cfg,
		tokens: tokens,
	}

	s.setupRoutes()
	return s
}

// Attach makes the services available to the API routes.
func (s *Server) Attach(svcs *Services) {
	s.handlers.Store(&handlers{
		auth:    handler.NewAuthHandler(svcs.Auth),
		order:   handler.NewOrderHandler(svcs.Orders),
		product: handler.NewProductHandler(svcs.Products),
	})
}

func (s *Server) Ready() bool {
	return s.handlers.Load() != nil
}

func (s *Server) setupRoutes() {
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		if !s.Ready() {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "starting"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	authenticated := middleware.AuthMiddleware(s.tokens)
	authLimit := s.authRateLimit()

	// -------- auth --------
	api.POST("/register", s.route(func(h *handlers) echo.HandlerFunc { return h.auth.Register }), authLimit...)
	api.POST("/login", s.route(func(h *handlers) echo.HandlerFunc { return h.auth.Login }), authLimit...)

	// -------- catalog --------
	api.GET("/products", s.route(func(h *handlers) echo.HandlerFunc { return h.product.ListProducts }))
	api.GET("/products/:id", s.route(func(h *handlers) echo.HandlerFunc { return h.product.GetProduct }))

	// -------- orders --------
	api.POST("/orders", s.route(func(h *handlers) echo.HandlerFunc { return h.order.PlaceOrder }), authenticated)
	api.GET("/orders", s.route(func(h *handlers) echo.HandlerFunc { return h.order.ListOrders }), authenticated)
	api.GET("/orders/:id", s.route(func(h *handlers) echo.HandlerFunc { return h.order.GetOrder }), authenticated)

	// -------- pages --------
	dir := s.cfg.StaticDir
	s.echo.File("/auth", filepath.Join(dir, "auth.html"))
	s.echo.File("/cart", filepath.Join(dir, "cart.html"))
	s.echo.File("/checkout", filepath.Join(dir, "checkout.html"))
	// also serves index.html for "/"
	s.echo.Static("/", dir)
}

// route resolves the handler per request so routes registered before Attach
// answer 503 until the services exist.
func (s *Server) route(pick func(*handlers) echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := s.handlers.Load()
		if h == nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "Service not ready")
		}
		return pick(h)(c)
	}
}

func (s *Server) authRateLimit() []echo.MiddlewareFunc {
	limit := s.cfg.HTTP.AuthRateLimit
	if limit <= 0 {
		return nil
	}

	return []echo.MiddlewareFunc{
		echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
			Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(limit),
				Burst: int(math.Max(1, math.Ceil(limit))),
			}),
			DenyHandler: func(c echo.Context, identifier string, err error) error {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			},
		}),
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
