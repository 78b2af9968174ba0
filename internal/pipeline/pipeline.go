// Package pipeline applies the declarative filter-then-sort configuration to
// a catalog snapshot. Every function is pure: inputs are never mutated and
// equal inputs produce equal outputs, which the reconciler's diffing relies
// on.
package pipeline

import (
	"sort"

	"github.com/samber/lo"
	"github.com/twxfilter/twx-catalog/internal/domain"
)

// Apply runs the filter and then the sort, returning a new sequence.
func Apply(items []domain.MediaItem, controls domain.ControlState) []domain.MediaItem {
	return Sort(Filter(items, controls.Filters), controls.Sort)
}

func Filter(items []domain.MediaItem, opts domain.FilterOptions) []domain.MediaItem {
	filtered := items

	if opts.MinSize > 0 {
		// Items without a recorded content length fail any positive size
		// filter.
		filtered = lo.Filter(filtered, func(item domain.MediaItem, _ int) bool {
			return item.ContentLength >= opts.MinSize
		})
	}

	switch opts.Type {
	case domain.FilterTypePhoto:
		filtered = lo.Filter(filtered, func(item domain.MediaItem, _ int) bool {
			return item.IsPhoto()
		})
	case domain.FilterTypeVideo:
		filtered = lo.Filter(filtered, func(item domain.MediaItem, _ int) bool {
			return !item.IsPhoto()
		})
	}

	if len(filtered) == len(items) {
		// lo.Filter already copied when anything was dropped; copy here so
		// callers can never alias the input slice.
		filtered = make([]domain.MediaItem, len(items))
		copy(filtered, items)
	}

	return filtered
}

func Sort(items []domain.MediaItem, opts domain.SortOptions) []domain.MediaItem {
	sorted := make([]domain.MediaItem, len(items))
	copy(sorted, items)

	value := func(item domain.MediaItem) int64 {
		// Absent fields compare as zero, not "sorts last".
		if opts.By == domain.SortByContentLength {
			return item.ContentLength
		}
		return item.Timestamp
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := value(sorted[i]), value(sorted[j])
		if opts.Order == domain.OrderAsc {
			return a < b
		}
		return a > b
	})

	return sorted
}
