package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikolayk812/shopapi/internal/domain"
	"github.com/nikolayk812/shopapi/internal/service"
)

// Catalog is the product-catalog surface the handlers depend on.
type Catalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
	SearchProducts(ctx context.Context, filter domain.ProductFilter, key domain.SortKey, order domain.SortOrder) ([]domain.Product, error)
}

type Orders interface {
	GetOrder(ctx context.Context, orderID int64) (domain.Order, error)
	CreateOrder(ctx context.Context, input service.CreateOrderInput) (domain.Order, error)
}

type Checkout interface {
	ReconcileSession(ctx context.Context, sessionID string) (domain.Order, error)
}

type PingFunc func(ctx context.Context) error

type Options struct {
	AllowedOrigin string
	Currency      string
	Ping          PingFunc
	Logger        *slog.Logger
}

type Server struct {
	catalog  Catalog
	orders   Orders
	checkout Checkout
	ping     PingFunc
	currency string
	router   *gin.Engine
}

func NewServer(catalog Catalog, orders Orders, checkout Checkout, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	if opts.AllowedOrigin != "" {
		router.Use(CORS(opts.AllowedOrigin))
	}

	s := &Server{
		catalog:  catalog,
		orders:   orders,
		checkout: checkout,
		ping:     opts.Ping,
		currency: opts.Currency,
		router:   router,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	s.router.GET("/products", s.handleListProducts)
	s.router.GET("/products/search", s.handleSearchProducts)
	s.router.GET("/products/:id", s.handleGetProduct)
	s.router.POST("/products", s.handleCreateProduct)
	s.router.PUT("/products/:id", s.handleUpdateProduct)
	s.router.DELETE("/products/:id", s.handleDeleteProduct)

	s.router.GET("/orders/:id", s.handleGetOrder)
	s.router.GET("/orders/session/:sessionId", s.handleOrderBySession)
	s.router.POST("/orders", s.handleCreateOrder)
}

// Handler exposes the router so main can wrap it in an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}
