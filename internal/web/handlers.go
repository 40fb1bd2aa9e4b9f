package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/nikolayk812/shopapi/internal/domain"
	"github.com/nikolayk812/shopapi/internal/repository"
	"github.com/nikolayk812/shopapi/internal/service"
)

type productRequest struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price"`
	IsOnSale     bool             `json:"isOnSale"`
	SalePrice    *decimal.Decimal `json:"salePrice"`
	CurrentStock int32            `json:"currentStock"`
	ImageURL     string           `json:"imageUrl"`
}

func (r productRequest) toDomain() domain.Product {
	return domain.Product{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		IsOnSale:     r.IsOnSale,
		SalePrice:    r.SalePrice,
		CurrentStock: r.CurrentStock,
		ImageURL:     r.ImageURL,
	}
}

type createOrderRequest struct {
	CustomerEmail   string             `json:"customerEmail" binding:"required,email"`
	StripeSessionID *string            `json:"stripeSessionId"`
	Items           []orderItemRequest `json:"items" binding:"omitempty,dive"`
}

type orderItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int32 `json:"quantity" binding:"required,min=1"`
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.ping != nil {
		if err := s.ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "currency": s.currency})
}

func (s *Server) handleListProducts(c *gin.Context) {
	products, err := s.catalog.ListProducts(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) handleGetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := s.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	var req productRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := s.catalog.CreateProduct(c.Request.Context(), req.toDomain())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req productRequest
	if !bindJSON(c, &req) {
		return
	}

	if id != req.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID in URL and body must match"})
		return
	}

	product, err := s.catalog.UpdateProduct(c.Request.Context(), req.toDomain())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleSearchProducts(c *gin.Context) {
	var filter domain.ProductFilter

	filter.Name = c.Query("name")

	if v := c.Query("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minPrice"})
			return
		}
		filter.MinPrice = &d
	}

	if v := c.Query("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxPrice"})
			return
		}
		filter.MaxPrice = &d
	}

	if v := c.Query("isOnSale"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid isOnSale"})
			return
		}
		filter.IsOnSale = lo.ToPtr(b)
	}

	if v := c.Query("inStock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inStock"})
			return
		}
		filter.InStock = lo.ToPtr(b)
	}

	key := domain.ToSortKey(c.DefaultQuery("sortBy", "name"))
	order := domain.ToSortOrder(c.DefaultQuery("sortOrder", "asc"))

	products, err := s.catalog.SearchProducts(c.Request.Context(), filter, key, order)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) handleGetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := s.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (s *Server) handleOrderBySession(c *gin.Context) {
	sessionID := c.Param("sessionId")

	order, err := s.checkout.ReconcileSession(c.Request.Context(), sessionID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var req createOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	input := service.CreateOrderInput{
		CustomerEmail:   req.CustomerEmail,
		StripeSessionID: req.StripeSessionID,
		Items: lo.Map(req.Items, func(item orderItemRequest, _ int) service.CreateOrderItem {
			return service.CreateOrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}
		}),
	}

	order, err := s.orders.CreateOrder(c.Request.Context(), input)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// bindJSON decodes the body, answering 422 for validation failures and
// 400 for malformed payloads.
func bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return false
		}

		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	return true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}

	return id, true
}

// respondError translates domain outcomes into response codes:
// 422 validation, 400 semantic bad request, 404 missing resource.
func (s *Server) respondError(c *gin.Context, err error) {
	var (
		validationErr service.ValidationError
		notFoundErr   service.ProductNotFoundError
		providerErr   service.ProviderError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Product with ID %d not found", notFoundErr.ProductID)})
	case errors.As(err, &providerErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid session ID: %v", providerErr.Err)})
	case errors.Is(err, service.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
