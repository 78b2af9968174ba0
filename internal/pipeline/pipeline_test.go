package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twxfilter/twx-catalog/internal/domain"
)

func TestFilterBySizeAndType(t *testing.T) {
	items := []domain.MediaItem{
		{ID: "a", Type: domain.MediaTypePhoto, ContentLength: 500},
		{ID: "b", Type: domain.MediaTypePhoto, ContentLength: 2000},
		{ID: "c", Type: domain.MediaTypeVideo, ContentLength: 5000},
	}

	got := Filter(items, domain.FilterOptions{MinSize: 1000, Type: domain.FilterTypePhoto})
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestFilterMissingContentLengthFailsMinSize(t *testing.T) {
	items := []domain.MediaItem{
		{ID: "a", Type: domain.MediaTypePhoto},
		{ID: "b", Type: domain.MediaTypePhoto, ContentLength: 10},
	}

	got := Filter(items, domain.FilterOptions{MinSize: 1, Type: domain.FilterTypeAll})
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestFilterVideoKeepsNonPhotos(t *testing.T) {
	items := []domain.MediaItem{
		{ID: "a", Type: domain.MediaTypePhoto},
		{ID: "b", Type: domain.MediaTypeVideo},
		{ID: "c", Type: domain.MediaTypeAnimatedGif},
	}

	got := Filter(items, domain.FilterOptions{Type: domain.FilterTypeVideo})
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestSortByTimestampAsc(t *testing.T) {
	items := []domain.MediaItem{
		{ID: "a", Timestamp: 300},
		{ID: "b", Timestamp: 100},
		{ID: "c", Timestamp: 200},
	}

	got := Sort(items, domain.SortOptions{By: domain.SortByTimestamp, Order: domain.OrderAsc})
	timestamps := []int64{got[0].Timestamp, got[1].Timestamp, got[2].Timestamp}
	assert.Equal(t, []int64{100, 200, 300}, timestamps)
}

func TestSortByContentLengthDescAbsentAsZero(t *testing.T) {
	items := []domain.MediaItem{
		{ID: "a"},
		{ID: "b", ContentLength: 50},
		{ID: "c", ContentLength: 10},
	}

	got := Sort(items, domain.SortOptions{By: domain.SortByContentLength, Order: domain.OrderDesc})
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "a", got[2].ID)
}

func TestPipelineNeverMutatesInput(t *testing.T) {
	items := []domain.MediaItem{
		{ID: "a", Type: domain.MediaTypePhoto, Timestamp: 1},
		{ID: "b", Type: domain.MediaTypeVideo, Timestamp: 2},
	}

	got := Apply(items, domain.ControlState{
		Sort:    domain.SortOptions{By: domain.SortByTimestamp, Order: domain.OrderDesc},
		Filters: domain.FilterOptions{Type: domain.FilterTypeAll},
	})

	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)

	got[0].ID = "mutated"
	assert.Equal(t, "b", items[1].ID)
}

func TestPipelineReferentiallyStable(t *testing.T) {
	items := []domain.MediaItem{
		{ID: "a", Type: domain.MediaTypePhoto, Timestamp: 1, ContentLength: 10},
		{ID: "b", Type: domain.MediaTypeVideo, Timestamp: 2, ContentLength: 20},
	}
	controls := domain.ControlState{
		Sort:    domain.SortOptions{By: domain.SortByContentLength, Order: domain.OrderAsc},
		Filters: domain.FilterOptions{MinSize: 5, Type: domain.FilterTypeAll},
	}

	assert.Equal(t, Apply(items, controls), Apply(items, controls))
}
