package discovery

import (
	"github.com/grochain/listing-finder/pkg/types"
)

const DefaultPageSize = 12

type View[T types.Listing] struct {
	Items       []T  `json:"items"`
	Shown       int  `json:"shown"`
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	Pages       int  `json:"pages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// Controller holds the state of one browse screen. Any change to the
// source, the filters or the sort recomputes the result and goes back to
// the first page. It is not safe for concurrent use.
type Controller[T types.Listing] struct {
	source   []T
	filters  types.FilterState
	sort     types.SortKey
	page     int
	pageSize int
	result   Result[T]
}

func NewController[T types.Listing](source []T, pageSize int) *Controller[T] {
	return NewControllerWith(source, types.DefaultFilterState(), types.DefaultSort, pageSize)
}

// NewControllerWith starts on page 1 of source already filtered and sorted.
func NewControllerWith[T types.Listing](source []T, filters types.FilterState, key types.SortKey, pageSize int) *Controller[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	c := &Controller[T]{
		source:   source,
		filters:  filters,
		sort:     key,
		pageSize: pageSize,
	}
	c.recompute()
	return c
}

func (c *Controller[T]) recompute() {
	c.result = Discover(c.source, c.filters, c.sort)
	c.page = 1
}

func (c *Controller[T]) Filters() types.FilterState { return c.filters }

func (c *Controller[T]) Sort() types.SortKey { return c.sort }

func (c *Controller[T]) Page() int { return c.page }

func (c *Controller[T]) Result() Result[T] { return c.result }

func (c *Controller[T]) SetSource(source []T) {
	c.source = source
	c.recompute()
}

func (c *Controller[T]) SetFilters(filters types.FilterState) {
	c.filters = filters
	c.recompute()
}

func (c *Controller[T]) update(fn func(f *types.FilterState)) {
	fn(&c.filters)
	c.recompute()
}

func (c *Controller[T]) SetQuery(q string) {
	c.update(func(f *types.FilterState) { f.Query = q })
}

func (c *Controller[T]) SetCategory(v types.Choice) {
	c.update(func(f *types.FilterState) { f.Category = v })
}

func (c *Controller[T]) SetLocation(v types.Choice) {
	c.update(func(f *types.FilterState) { f.Location = v })
}

func (c *Controller[T]) SetPriceRange(v types.Choice) {
	c.update(func(f *types.FilterState) { f.PriceRange = v })
}

func (c *Controller[T]) SetDateRange(v types.Choice) {
	c.update(func(f *types.FilterState) { f.DateRange = v })
}

func (c *Controller[T]) SetQuality(v types.Choice) {
	c.update(func(f *types.FilterState) { f.Quality = v })
}

func (c *Controller[T]) SetStatus(v types.Choice) {
	c.update(func(f *types.FilterState) { f.Status = v })
}

func (c *Controller[T]) SetOrganic(v bool) {
	c.update(func(f *types.FilterState) { f.Organic = v })
}

func (c *Controller[T]) SetVerified(v bool) {
	c.update(func(f *types.FilterState) { f.Verified = v })
}

func (c *Controller[T]) ClearFilters() {
	c.SetFilters(types.DefaultFilterState())
}

func (c *Controller[T]) SetSort(key types.SortKey) {
	c.sort = key
	c.recompute()
}

func (c *Controller[T]) SetPageSize(size int) {
	if size < 1 {
		size = DefaultPageSize
	}
	c.pageSize = size
	c.page = 1
}

// GoToPage moves to page n. A page past the end shows an empty window.
func (c *Controller[T]) GoToPage(n int) {
	c.page = max(n, 1)
}

func (c *Controller[T]) NextPage() bool {
	if !c.View().HasNext {
		return false
	}
	c.page++
	return true
}

func (c *Controller[T]) PreviousPage() bool {
	if c.page <= 1 {
		return false
	}
	c.page--
	return true
}

func (c *Controller[T]) View() View[T] {
	p := Paginate(c.result.Items, c.page, c.pageSize)
	return View[T]{
		Items:       p.Items,
		Shown:       c.result.Shown,
		Total:       c.result.Total,
		Page:        c.page,
		PageSize:    c.pageSize,
		Pages:       PageCount(c.result.Shown, c.pageSize),
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}
