package printful

import (
	"encoding/json"

	"github.com/tessvale/embla/internal/domain"
)

// ProductImage is a product-level image. Some endpoint versions return bare
// URL strings instead of objects, so decoding accepts both.
type ProductImage struct {
	ID       int64  `json:"id,omitempty"`
	FileName string `json:"file_name,omitempty"`
	URL      string `json:"url"`
}

// UnmarshalJSON accepts either an image object or a bare URL string.
func (p *ProductImage) UnmarshalJSON(data []byte) error {
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		p.URL = url
		return nil
	}

	type plain ProductImage
	var img plain
	if err := json.Unmarshal(data, &img); err != nil {
		return err
	}
	*p = ProductImage(img)
	return nil
}

// StoreProduct is one "store product" from the catalog listing. Depending on
// the endpoint version, Variants may be a full array or absent entirely.
type StoreProduct struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	ThumbnailURL string           `json:"thumbnail_url,omitempty"`
	Images       []ProductImage   `json:"images,omitempty"`
	Variants     []domain.Variant `json:"variants,omitempty"`
}

// SyncProduct is the nested product summary on a detail response.
type SyncProduct struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Product is a full per-product detail record. The variant array appears as
// sync_variants on current endpoints and variants on older ones.
type Product struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	ThumbnailURL string           `json:"thumbnail_url,omitempty"`
	SyncProduct  *SyncProduct     `json:"sync_product,omitempty"`
	Images       []ProductImage   `json:"images,omitempty"`
	SyncVariants []domain.Variant `json:"sync_variants,omitempty"`
	Variants     []domain.Variant `json:"variants,omitempty"`
}

// AllVariants returns the product's variant list regardless of which field
// the endpoint version populated. Missing lists degrade to empty.
func (p *Product) AllVariants() []domain.Variant {
	if len(p.SyncVariants) > 0 {
		return p.SyncVariants
	}
	if len(p.Variants) > 0 {
		return p.Variants
	}
	return []domain.Variant{}
}

// Thumbnail returns the preferred product-level thumbnail: the sync
// product's, then the top-level field.
func (p *Product) Thumbnail() string {
	if p.SyncProduct != nil && p.SyncProduct.ThumbnailURL != "" {
		return p.SyncProduct.ThumbnailURL
	}
	return p.ThumbnailURL
}

// ProductImages returns product-level image URLs, thumbnail first.
func (p *Product) ProductImages() []string {
	var urls []string
	if thumb := p.Thumbnail(); thumb != "" {
		urls = append(urls, thumb)
	}
	for _, img := range p.Images {
		if img.URL != "" {
			urls = append(urls, img.URL)
		}
	}
	return urls
}

// Recipient is the shipping destination for a fulfillment order.
type Recipient struct {
	Name        string `json:"name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	StateCode   string `json:"state_code,omitempty"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// OrderItem is one fulfillment order line, addressed by sync variant id.
type OrderItem struct {
	SyncVariantID int64 `json:"sync_variant_id"`
	Quantity      int   `json:"quantity"`
}

// RetailCosts carries the retail totals shown on the packing slip.
type RetailCosts struct {
	Currency string `json:"currency"`
	Subtotal string `json:"subtotal"`
}

// OrderParams is the order-creation payload.
type OrderParams struct {
	Recipient   Recipient    `json:"recipient"`
	Items       []OrderItem  `json:"items"`
	ExternalID  string       `json:"external_id,omitempty"`
	RetailCosts *RetailCosts `json:"retail_costs,omitempty"`
}

// Order is the provider's record of a created fulfillment order.
type Order struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id,omitempty"`
	Status     string `json:"status"`
}
