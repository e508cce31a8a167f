package storefront

import (
	"context"

	"github.com/tessvale/embla/internal/billing"
	"github.com/tessvale/embla/internal/domain"
	"github.com/tessvale/embla/internal/service"
)

// mockCatalogService implements service.CatalogService for handler tests.
type mockCatalogService struct {
	listProductsFunc       func(ctx context.Context) []domain.DisplayProduct
	getProductVariantsFunc func(ctx context.Context, productID string) (*domain.ProductVariantDetail, error)
}

func (m *mockCatalogService) ListProducts(ctx context.Context) []domain.DisplayProduct {
	if m.listProductsFunc != nil {
		return m.listProductsFunc(ctx)
	}
	return nil
}

func (m *mockCatalogService) GetProductVariants(ctx context.Context, productID string) (*domain.ProductVariantDetail, error) {
	if m.getProductVariantsFunc != nil {
		return m.getProductVariantsFunc(ctx, productID)
	}
	return nil, domain.NotFound("catalog.variants", "product", productID)
}

// mockCheckoutService implements service.CheckoutService for handler tests.
type mockCheckoutService struct {
	createPaymentIntentFunc func(ctx context.Context, params service.CreateIntentParams) (*billing.PaymentIntent, error)
}

func (m *mockCheckoutService) CreatePaymentIntent(ctx context.Context, params service.CreateIntentParams) (*billing.PaymentIntent, error) {
	if m.createPaymentIntentFunc != nil {
		return m.createPaymentIntentFunc(ctx, params)
	}
	return &billing.PaymentIntent{ID: "pi_mock", ClientSecret: "pi_mock_secret"}, nil
}
