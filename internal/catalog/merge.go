package catalog

import "github.com/tessvale/embla/internal/domain"

// Merge combines the always-available local catalog with the dynamically
// fetched provider catalog into one displayable list. Provider items come
// first so the print-on-demand range features prominently; local items
// flagged sold out are dropped. No deduplication is performed across the
// two lists: the provider id prefix is the only collision guard, and it is
// the caller's responsibility.
//
// Callers must pass an empty provider slice when the upstream fetch fails
// so the local catalog still renders.
func Merge(local, provider []domain.DisplayProduct) []domain.DisplayProduct {
	merged := make([]domain.DisplayProduct, 0, len(provider)+len(local))
	merged = append(merged, provider...)
	for _, p := range local {
		if p.IsSoldOut {
			continue
		}
		merged = append(merged, p)
	}
	return merged
}
