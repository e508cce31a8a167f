package catalog

import "github.com/tessvale/embla/internal/domain"

// PlaceholderImage is served when a product or color group resolves to no
// images at all.
const PlaceholderImage = "/images/print-placeholder.svg"

// LocalProducts is the hand-entered catalog. These items are always
// available for display (subject to the sold-out flag) regardless of the
// fulfillment provider's health.
func LocalProducts() []domain.DisplayProduct {
	return []domain.DisplayProduct{
		{
			ID:          "pillow-spray-lavender",
			Name:        "Lavender Pillow Spray",
			Description: "Calming lavender mist for restful nights.",
			Price:       12.00,
			Image:       "/images/pillow-spray-lavender.jpg",
			Category:    domain.CategoryPillowSprays,
		},
		{
			ID:          "pillow-spray-chamomile",
			Name:        "Chamomile Pillow Spray",
			Description: "Soft chamomile blend to wind down the day.",
			Price:       12.00,
			Image:       "/images/pillow-spray-chamomile.jpg",
			Category:    domain.CategoryPillowSprays,
		},
		{
			ID:          "wax-melt-winter",
			Name:        "Winter Hearth Wax Melts",
			Description: "Cedar and clove wax melts, poured in small batches.",
			Price:       8.50,
			Image:       "/images/wax-melt-winter.jpg",
			Category:    domain.CategoryWaxMelts,
		},
		{
			ID:          "wax-melt-rose",
			Name:        "February Rose Wax Melts",
			Description: "Rose and amber wax melts.",
			Price:       8.50,
			Image:       "/images/wax-melt-rose.jpg",
			Category:    domain.CategoryWaxMelts,
			IsSoldOut:   true,
		},
		{
			ID:          "print-moon-phases",
			Name:        "Moon Phases Print",
			Description: "A3 giclee print on textured stock.",
			Price:       18.00,
			Image:       "/images/print-moon-phases.jpg",
			Category:    domain.CategoryPrints,
		},
	}
}
