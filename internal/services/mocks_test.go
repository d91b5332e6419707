package service_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storage/memory"
)

var errStorage = errors.New("storage unavailable")

// flakyKV is an in-memory store whose operations can be made to fail.
type flakyKV struct {
	*memory.Store
	getErr    error
	setErr    error
	removeErr error
}

func newFlakyKV() *flakyKV {
	return &flakyKV{Store: memory.New()}
}

func (f *flakyKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.Store.Get(ctx, key)
}

func (f *flakyKV) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

func (f *flakyKV) Remove(ctx context.Context, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	return f.Store.Remove(ctx, key)
}

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, paymentMethod string, amount float64) (*models.PaymentResult, error) {
	args := m.Called(ctx, paymentMethod, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentResult), args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendOrderConfirmation(ctx context.Context, to, name string, order *models.Order) error {
	args := m.Called(ctx, to, name, order)
	return args.Error(0)
}

func testProduct(id string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: models.CategoryMouse,
		Specs:    []string{"16000 DPI", "RGB"},
	}
}
