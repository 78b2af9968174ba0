package domain

type SortField string

const (
	SortByTimestamp     SortField = "timestamp"
	SortByContentLength SortField = "content-length"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

type TypeFilter string

const (
	FilterTypeAll   TypeFilter = "all"
	FilterTypePhoto TypeFilter = "photo"
	FilterTypeVideo TypeFilter = "video"
)

type SortOptions struct {
	By    SortField `json:"by"`
	Order SortOrder `json:"order"`
}

type FilterOptions struct {
	MinSize int64      `json:"minSize"`
	Type    TypeFilter `json:"type"`
}

// ControlState is the user-configured sort/filter pipeline configuration.
// It is persisted so the grid comes back up the way the user left it.
type ControlState struct {
	Sort    SortOptions   `json:"sort"`
	Filters FilterOptions `json:"filters"`
}

func DefaultControls() ControlState {
	return ControlState{
		Sort:    SortOptions{By: SortByTimestamp, Order: OrderDesc},
		Filters: FilterOptions{MinSize: 0, Type: FilterTypeAll},
	}
}
