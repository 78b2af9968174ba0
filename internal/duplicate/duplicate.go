package duplicate

import (
	"context"
	"errors"
	"sort"

	"github.com/twxfilter/twx-catalog/internal/domain"
)

var ErrMemberNotFound = errors.New("duplicate member not found")

// Grouper maintains the duplicate-set view: groups of two or more items the
// backend judged to be the same underlying asset. Groups shrink locally as
// members are deleted; there is no server re-query on single-item deletion.
type Grouper interface {
	// LoadFromBackend replaces the in-memory groups with the backend's
	// duplicate listing.
	LoadFromBackend(ctx context.Context) ([]domain.DuplicateSet, error)
	// LoadFromItems cross-checks a caller-supplied list (e.g. an imported
	// export file) against the backend's duplicate detection.
	LoadFromItems(ctx context.Context, items []domain.MediaItem) ([]domain.DuplicateSet, error)
	// DeleteMember deletes one member's cache file on the backend, and only
	// after that succeeds removes the member locally. A group left with
	// fewer than two members is dropped whole. Returns the surviving sets.
	DeleteMember(ctx context.Context, id string) ([]domain.DuplicateSet, error)
	// DeleteMembers runs DeleteMember for each id concurrently.
	DeleteMembers(ctx context.Context, ids []string) ([]domain.DuplicateSet, error)
	Sets() []domain.DuplicateSet
	SetCount() int
}

// SortMembers orders a group for display: longest capture first, and among
// equal runtimes the earliest scrape first.
func SortMembers(set domain.DuplicateSet) domain.DuplicateSet {
	sorted := make(domain.DuplicateSet, len(set))
	copy(sorted, set)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DurationMillis != sorted[j].DurationMillis {
			return sorted[i].DurationMillis > sorted[j].DurationMillis
		}
		return sorted[i].Timestamp < sorted[j].Timestamp
	})
	return sorted
}

// Normalize drops groups that are not real duplicate sets (fewer than two
// members) and sorts the members of the rest.
func Normalize(sets []domain.DuplicateSet) []domain.DuplicateSet {
	out := make([]domain.DuplicateSet, 0, len(sets))
	for _, set := range sets {
		if len(set) < 2 {
			continue
		}
		out = append(out, SortMembers(set))
	}
	return out
}
