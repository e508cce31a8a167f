// Package catalog implements the storefront's variant reconciliation core:
// garment size ordering, per-color image resolution, variant grouping, the
// size availability matrix, and the local/provider catalog merge.
//
// Everything here is a pure function over its input. Derived structures are
// rebuilt on every request; nothing is cached between calls.
package catalog

import "strings"

// sizeRanks maps upper-cased garment size labels to sort ranks.
// Aliases (2XL/XXL, 3XL/XXXL) share a rank.
var sizeRanks = map[string]int{
	"XS":       1,
	"S":        2,
	"M":        3,
	"L":        4,
	"XL":       5,
	"2XL":      6,
	"XXL":      6,
	"3XL":      7,
	"XXXL":     7,
	"4XL":      8,
	"5XL":      9,
	"ONE SIZE": 99,
}

// UnknownSizeRank is returned for labels outside the garment taxonomy,
// sorting them after every known size.
const UnknownSizeRank = 999

// SizeRank returns the sort rank for a size label. Lookup is
// case-insensitive and total: unknown labels rank last, never error.
func SizeRank(label string) int {
	if rank, ok := sizeRanks[strings.ToUpper(label)]; ok {
		return rank
	}
	return UnknownSizeRank
}
