package duplicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twxfilter/twx-catalog/internal/domain"
)

func member(id string, durationMillis, timestamp int64) domain.MediaItem {
	return domain.MediaItem{ID: id, Type: domain.MediaTypeVideo, DurationMillis: durationMillis, Timestamp: timestamp}
}

func memberIDs(set domain.DuplicateSet) []string {
	out := make([]string, len(set))
	for i, m := range set {
		out[i] = m.ID
	}
	return out
}

func TestSortMembersLongestFirst(t *testing.T) {
	set := domain.DuplicateSet{
		member("short", 1000, 10),
		member("long", 5000, 20),
		member("mid", 3000, 5),
	}

	sorted := SortMembers(set)
	assert.Equal(t, []string{"long", "mid", "short"}, memberIDs(sorted))
	// The input set is left alone.
	assert.Equal(t, []string{"short", "long", "mid"}, memberIDs(set))
}

func TestSortMembersTieBreaksOnEarliestTimestamp(t *testing.T) {
	set := domain.DuplicateSet{
		member("later", 5000, 300),
		member("earlier", 5000, 100),
	}

	sorted := SortMembers(set)
	assert.Equal(t, []string{"earlier", "later"}, memberIDs(sorted))
}

func TestNormalizeDropsSingletonsAndEmptyGroups(t *testing.T) {
	sets := []domain.DuplicateSet{
		{member("a1", 100, 1), member("a2", 200, 2)},
		{member("lonely", 100, 1)},
		{},
		{member("b1", 0, 2), member("b2", 0, 1), member("b3", 0, 3)},
	}

	got := Normalize(sets)
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"a2", "a1"}, memberIDs(got[0]))
	assert.Equal(t, []string{"b2", "b1", "b3"}, memberIDs(got[1]))
}
