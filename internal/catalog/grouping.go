package catalog

import (
	"sort"
	"strings"

	"github.com/tessvale/embla/internal/domain"
)

// GroupVariants partitions a product's flat variant list into the normalized
// view the storefront renders: distinct sizes in garment order, variants
// grouped by color with resolved images, and the untouched original list.
//
// Grouping keys are the color labels exactly as provided (case-sensitive).
// A nil or empty variant list yields empty groups, never an error.
func GroupVariants(variants []domain.Variant) domain.VariantGroups {
	groups := domain.VariantGroups{
		Sizes:       []string{},
		Colors:      []domain.ColorGroup{},
		AllVariants: variants,
	}
	if groups.AllVariants == nil {
		groups.AllVariants = []domain.Variant{}
	}

	sizeSeen := make(map[string]bool)
	var sizes []string

	// Color groups keep first-seen order.
	groupIndex := make(map[string]int)
	var colorOrder []string
	members := make(map[string][]domain.Variant)
	images := make(map[string]*imageSet)

	for _, v := range variants {
		size := v.SizeLabel()
		if !sizeSeen[size] {
			sizeSeen[size] = true
			sizes = append(sizes, size)
		}

		color := v.ColorLabel()
		if _, ok := groupIndex[color]; !ok {
			groupIndex[color] = len(colorOrder)
			colorOrder = append(colorOrder, color)
			images[color] = newImageSet()
		}
		members[color] = append(members[color], v)
		images[color].collect(v)
	}

	sort.Slice(sizes, func(i, j int) bool {
		ri, rj := SizeRank(sizes[i]), SizeRank(sizes[j])
		if ri != rj {
			return ri < rj
		}
		return strings.Compare(sizes[i], sizes[j]) < 0
	})
	groups.Sizes = append(groups.Sizes, sizes...)

	for _, color := range colorOrder {
		urls := images[color].urls
		if urls == nil {
			urls = []string{}
		}
		group := domain.ColorGroup{
			Name:       color,
			Variants:   members[color],
			Images:     urls,
			PreviewURL: groupPreviewURL(members[color]),
		}
		group.SizesAvailable = SizeAvailability(group, groups.Sizes)
		groups.Colors = append(groups.Colors, group)
	}

	return groups
}

// groupPreviewURL picks the group's preview image: the first variant (in
// list order) with a non-empty file list whose last file carries a preview
// URL wins, and that last file's preview URL is used. Variants whose last
// file has no preview URL are passed over.
func groupPreviewURL(variants []domain.Variant) string {
	for _, v := range variants {
		if len(v.Files) == 0 {
			continue
		}
		if url := v.Files[len(v.Files)-1].PreviewURL; url != "" {
			return url
		}
	}
	return ""
}

// SizeAvailability reports, for each size in sizes, whether any variant in
// the given color group has that size. This drives the size picker's
// disabled states only; the stock flag is deliberately not consulted here.
// A group with no variants reports every size unavailable.
func SizeAvailability(group domain.ColorGroup, sizes []string) map[string]bool {
	available := make(map[string]bool, len(sizes))
	for _, size := range sizes {
		available[size] = false
	}
	for _, v := range group.Variants {
		if _, ok := available[v.SizeLabel()]; ok {
			available[v.SizeLabel()] = true
		}
	}
	return available
}
