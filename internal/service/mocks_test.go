package service_test

import (
	"context"

	"github.com/nikolayk812/shopapi/internal/domain"
	"github.com/nikolayk812/shopapi/internal/repository"
)

// Function-field mocks: unset fields fall back to not-found / echo behavior.

type productRepoMock struct {
	listFunc   func(ctx context.Context) ([]domain.Product, error)
	getFunc    func(ctx context.Context, productID int64) (domain.Product, error)
	searchFunc func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	insertFunc func(ctx context.Context, product domain.Product) (domain.Product, error)
	updateFunc func(ctx context.Context, product domain.Product) (domain.Product, error)
	deleteFunc func(ctx context.Context, productID int64) error
}

func (m *productRepoMock) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *productRepoMock) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, productID)
	}
	return domain.Product{}, repository.ErrNotFound
}

func (m *productRepoMock) SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, filter)
	}
	return nil, nil
}

func (m *productRepoMock) InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, product)
	}
	product.ID = 1
	return product, nil
}

func (m *productRepoMock) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, product)
	}
	return product, nil
}

func (m *productRepoMock) DeleteProduct(ctx context.Context, productID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, productID)
	}
	return nil
}

type orderRepoMock struct {
	getFunc          func(ctx context.Context, orderID int64) (domain.Order, error)
	getBySessionFunc func(ctx context.Context, sessionID string) (domain.Order, error)
	insertFunc       func(ctx context.Context, order domain.Order) (domain.Order, error)
	completeFunc     func(ctx context.Context, orderID int64, paymentIntentID string) error
	failFunc         func(ctx context.Context, orderID int64) error

	completeCalls int
	failCalls     int
	insertCalls   int
}

func (m *orderRepoMock) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, orderID)
	}
	return domain.Order{}, repository.ErrNotFound
}

func (m *orderRepoMock) GetOrderBySessionID(ctx context.Context, sessionID string) (domain.Order, error) {
	if m.getBySessionFunc != nil {
		return m.getBySessionFunc(ctx, sessionID)
	}
	return domain.Order{}, repository.ErrNotFound
}

func (m *orderRepoMock) InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	m.insertCalls++
	if m.insertFunc != nil {
		return m.insertFunc(ctx, order)
	}
	order.ID = 1
	return order, nil
}

func (m *orderRepoMock) CompleteOrder(ctx context.Context, orderID int64, paymentIntentID string) error {
	m.completeCalls++
	if m.completeFunc != nil {
		return m.completeFunc(ctx, orderID, paymentIntentID)
	}
	return nil
}

func (m *orderRepoMock) FailOrder(ctx context.Context, orderID int64) error {
	m.failCalls++
	if m.failFunc != nil {
		return m.failFunc(ctx, orderID)
	}
	return nil
}

type providerMock struct {
	getSessionFunc func(ctx context.Context, sessionID string) (domain.CheckoutSession, error)
}

func (m *providerMock) GetSession(ctx context.Context, sessionID string) (domain.CheckoutSession, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	return domain.CheckoutSession{}, nil
}
