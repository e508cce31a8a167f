package domain

// =============================================================================
// CATALOG DOMAIN TYPES
// =============================================================================

// Sentinel defaults substituted when the fulfillment provider omits a field.
const (
	DefaultSize  = "One Size"
	DefaultColor = "Default"
)

// ProviderIDPrefix distinguishes provider-sourced products from locally
// authored ones. It is the only collision guard between the two catalogs.
const ProviderIDPrefix = "printful-"

// ProductCategory tags a DisplayProduct for storefront filtering.
type ProductCategory string

const (
	CategoryPillowSprays ProductCategory = "pillow-sprays"
	CategoryWaxMelts     ProductCategory = "wax-melts"
	CategoryPrints       ProductCategory = "prints"
	CategoryTShirts      ProductCategory = "tshirts"
)

// DisplayProduct is the UI-facing product card, produced by the catalog merge.
// Local and provider-sourced products share this shape.
type DisplayProduct struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Image       string           `json:"image"`
	Category    ProductCategory  `json:"category"`
	IsSoldOut   bool             `json:"isSoldOut,omitempty"`
	Variant     *SelectedVariant `json:"variant,omitempty"`
}

// IsProviderSourced reports whether the product came from the fulfillment
// provider rather than the local catalog.
func (p DisplayProduct) IsProviderSourced() bool {
	return len(p.ID) > len(ProviderIDPrefix) && p.ID[:len(ProviderIDPrefix)] == ProviderIDPrefix
}

// SelectedVariant records the size/color choice a shopper made on a
// provider-sourced product. VariantID is the provider's sync variant id.
type SelectedVariant struct {
	VariantID int64   `json:"variantId"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Price     float64 `json:"price"`
}

// =============================================================================
// PROVIDER VARIANT TYPES (external, read-only)
// =============================================================================

// VariantFile is one print file attached to a variant. Either URL may be empty.
type VariantFile struct {
	PreviewURL string `json:"preview_url"`
	URL        string `json:"url"`
}

// VariantProduct is the nested base-product record some provider endpoint
// versions attach to a variant. Only the color fallback is consulted.
type VariantProduct struct {
	Color string `json:"color"`
}

// Variant is one purchasable size/color/price combination as returned by the
// fulfillment provider. Fields are free text and may be absent; readers use
// SizeLabel/ColorLabel to apply the sentinel defaults.
type Variant struct {
	ID                 int64           `json:"id"`
	ProductID          int64           `json:"product_id,omitempty"`
	Name               string          `json:"name,omitempty"`
	Size               string          `json:"size,omitempty"`
	Color              string          `json:"color,omitempty"`
	Price              string          `json:"price,omitempty"`
	RetailPrice        string          `json:"retail_price,omitempty"`
	AvailabilityStatus string          `json:"availability_status,omitempty"`
	ThumbnailURL       string          `json:"thumbnail_url,omitempty"`
	Image              string          `json:"image,omitempty"`
	Files              []VariantFile   `json:"files,omitempty"`
	Product            *VariantProduct `json:"product,omitempty"`
}

// SizeLabel returns the variant's size, defaulting to "One Size".
func (v Variant) SizeLabel() string {
	if v.Size == "" {
		return DefaultSize
	}
	return v.Size
}

// ColorLabel returns the variant's color, falling back to the nested base
// product's color and then to "Default". Case is preserved as provided;
// grouping keys are never normalized.
func (v Variant) ColorLabel() string {
	if v.Color != "" {
		return v.Color
	}
	if v.Product != nil && v.Product.Color != "" {
		return v.Product.Color
	}
	return DefaultColor
}

// InStock reports the provider's stock flag. The availability matrix does
// not consult this; it only drives variant selection.
func (v Variant) InStock() bool {
	return v.AvailabilityStatus == "in_stock"
}

// =============================================================================
// DERIVED TYPES (rebuilt on every request, never persisted)
// =============================================================================

// ColorGroup is the set of variants sharing a color, plus the resolved
// image list (deduplicated, thumbnail-first) and the preview URL heuristic.
type ColorGroup struct {
	Name       string    `json:"name"`
	Variants   []Variant `json:"variants"`
	Images     []string  `json:"images"`
	PreviewURL string    `json:"previewUrl,omitempty"`

	// SizesAvailable marks, per catalog size, whether this color can be
	// ordered in it. Drives the size picker's disabled states.
	SizesAvailable map[string]bool `json:"sizesAvailable,omitempty"`
}

// VariantGroups is the normalized view of one product's flat variant list:
// distinct sizes in garment order, variants partitioned by color, and the
// original list for callers needing raw access.
type VariantGroups struct {
	Sizes       []string     `json:"sizes"`
	Colors      []ColorGroup `json:"colors"`
	AllVariants []Variant    `json:"allVariants"`
}

// ProductVariantDetail is the full per-product detail payload: the grouped
// variants plus product-level images and thumbnail.
type ProductVariantDetail struct {
	Variants     VariantGroups `json:"variants"`
	Images       []string      `json:"images"`
	ThumbnailURL string        `json:"thumbnailUrl,omitempty"`
}
