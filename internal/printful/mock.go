package printful

import "context"

// Mock is a test implementation of API. Unset functions return empty results.
type Mock struct {
	ListStoreProductsFunc func(ctx context.Context) ([]StoreProduct, error)
	GetProductFunc        func(ctx context.Context, productID string) (*Product, error)
	CreateOrderFunc       func(ctx context.Context, params OrderParams) (*Order, error)
}

// ListStoreProducts delegates to the configured function.
func (m *Mock) ListStoreProducts(ctx context.Context) ([]StoreProduct, error) {
	if m.ListStoreProductsFunc != nil {
		return m.ListStoreProductsFunc(ctx)
	}
	return nil, nil
}

// GetProduct delegates to the configured function.
func (m *Mock) GetProduct(ctx context.Context, productID string) (*Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, productID)
	}
	return nil, ErrProductNotFound
}

// CreateOrder delegates to the configured function.
func (m *Mock) CreateOrder(ctx context.Context, params OrderParams) (*Order, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, params)
	}
	return &Order{ID: 1, Status: "draft"}, nil
}
