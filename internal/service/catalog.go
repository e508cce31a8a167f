package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tessvale/embla/internal/catalog"
	"github.com/tessvale/embla/internal/domain"
	"github.com/tessvale/embla/internal/printful"
	"github.com/tessvale/embla/internal/telemetry"
)

// Fallback card price when no variant carries a parseable price.
var fallbackPrice = decimal.RequireFromString("29.99")

// Default card description for provider products without one.
const defaultProviderDescription = "Custom apparel from Embla"

// CatalogService produces the storefront's displayable catalog and
// per-product variant detail. Everything is recomputed per call; provider
// failures degrade to the local catalog instead of erroring.
type CatalogService interface {
	// ListProducts returns the merged catalog: provider products first,
	// then local products that aren't sold out. A provider outage yields
	// the local catalog alone, never an error.
	ListProducts(ctx context.Context) []domain.DisplayProduct

	// GetProductVariants returns the normalized variant view for one
	// provider product. The id is the catalog id; the provider prefix is
	// stripped before the lookup if present.
	GetProductVariants(ctx context.Context, productID string) (*domain.ProductVariantDetail, error)
}

type catalogService struct {
	provider printful.API
	local    []domain.DisplayProduct
	logger   *slog.Logger
}

// NewCatalogService creates a new CatalogService. Provider may be nil when
// credentials are absent; the catalog then contains local products only.
func NewCatalogService(provider printful.API, local []domain.DisplayProduct, logger *slog.Logger) CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogService{
		provider: provider,
		local:    local,
		logger:   logger,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) []domain.DisplayProduct {
	providerProducts := s.fetchProviderProducts(ctx)
	return catalog.Merge(s.local, providerProducts)
}

// fetchProviderProducts fetches and reshapes the provider catalog.
// Any failure is logged and reported as an empty list so the local catalog
// still renders.
func (s *catalogService) fetchProviderProducts(ctx context.Context) []domain.DisplayProduct {
	if s.provider == nil {
		s.logger.Error("fulfillment provider not configured, serving local catalog only")
		return nil
	}

	start := time.Now()
	items, err := s.provider.ListStoreProducts(ctx)
	if telemetry.Business != nil {
		telemetry.Business.ProviderFetchLatency.WithLabelValues("list_products").Observe(time.Since(start).Seconds())
	}
	if err != nil {
		s.logger.Error("failed to fetch provider catalog", "error", err)
		if telemetry.Business != nil {
			telemetry.Business.ProviderFetches.WithLabelValues("list_products", "error").Inc()
		}
		return nil
	}
	if telemetry.Business != nil {
		telemetry.Business.ProviderFetches.WithLabelValues("list_products", "ok").Inc()
	}

	products := make([]domain.DisplayProduct, 0, len(items))
	for _, item := range items {
		products = append(products, toDisplayProduct(item))
	}

	s.logger.Debug("provider catalog transformed", "count", len(products))
	return products
}

// toDisplayProduct reshapes one provider store product into a catalog card.
func toDisplayProduct(item printful.StoreProduct) domain.DisplayProduct {
	image := catalog.PlaceholderImage
	if len(item.Images) > 0 && item.Images[0].URL != "" {
		image = item.Images[0].URL
	} else if item.ThumbnailURL != "" {
		image = item.ThumbnailURL
	}

	description := item.Description
	if description == "" {
		description = defaultProviderDescription
	}

	return domain.DisplayProduct{
		ID:          fmt.Sprintf("%s%d", domain.ProviderIDPrefix, item.ID),
		Name:        item.Name,
		Description: description,
		Price:       cardPrice(item.Variants),
		Image:       image,
		Category:    domain.CategoryTShirts,
	}
}

// cardPrice picks the lowest-priced in-stock variant's retail price for the
// "from" price on the product card. Variant prices arrive as decimal
// strings; unparseable or absent prices fall back to a default.
func cardPrice(variants []domain.Variant) float64 {
	var lowest decimal.Decimal
	found := false

	for _, v := range variants {
		if !v.InStock() {
			continue
		}
		price, ok := variantPrice(v)
		if !ok {
			continue
		}
		if !found || price.LessThan(lowest) {
			lowest = price
			found = true
		}
	}

	if !found {
		// Fall back to the first variant's price regardless of stock.
		for _, v := range variants {
			if price, ok := variantPrice(v); ok {
				lowest = price
				found = true
				break
			}
		}
	}

	if !found {
		lowest = fallbackPrice
	}
	result, _ := lowest.Float64()
	return result
}

// variantPrice parses a variant's retail price, preferring retail_price
// over the wholesale price field.
func variantPrice(v domain.Variant) (decimal.Decimal, bool) {
	for _, raw := range []string{v.RetailPrice, v.Price} {
		if raw == "" {
			continue
		}
		if price, err := decimal.NewFromString(raw); err == nil {
			return price, true
		}
	}
	return decimal.Decimal{}, false
}

func (s *catalogService) GetProductVariants(ctx context.Context, productID string) (*domain.ProductVariantDetail, error) {
	if s.provider == nil {
		return nil, domain.Errorf(domain.EINTERNAL, "catalog.variants", "fulfillment provider not configured")
	}

	// Catalog ids carry the provider prefix; the provider API wants the raw id.
	providerID := strings.TrimPrefix(productID, domain.ProviderIDPrefix)

	start := time.Now()
	product, err := s.provider.GetProduct(ctx, providerID)
	if telemetry.Business != nil {
		telemetry.Business.ProviderFetchLatency.WithLabelValues("get_product").Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if telemetry.Business != nil {
			telemetry.Business.ProviderFetches.WithLabelValues("get_product", "error").Inc()
		}
		if errors.Is(err, printful.ErrProductNotFound) {
			return nil, domain.NotFound("catalog.variants", "product", productID)
		}
		return nil, domain.Unavailable(err, "catalog.variants", "fulfillment provider unavailable")
	}
	if telemetry.Business != nil {
		telemetry.Business.ProviderFetches.WithLabelValues("get_product", "ok").Inc()
	}

	return &domain.ProductVariantDetail{
		Variants:     catalog.GroupVariants(product.AllVariants()),
		Images:       product.ProductImages(),
		ThumbnailURL: product.Thumbnail(),
	}, nil
}
