package tabular

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/jinzhu/copier"
	"github.com/soffa-projects/go-tabular/bus"
)

// DataSource answers one page request. Local mode wraps a View over
// in-memory rows; remote mode wraps the HTTP client.
type DataSource[T any] interface {
	FetchPage(ctx context.Context, params PageParams) (Page[T], error)
}

// Table owns the query state of one tabular view: filters, sorts, paging and
// search over a DataSource. Mutations are single-threaded (UI event loop),
// but refreshes may overlap: each fetch runs without holding any lock, and a
// monotonic sequence number checked under mu makes the latest request win.
type Table[T any] struct {
	Filters *FilterSet
	Sorts   *SortSet

	name      string
	registry  Registry
	source    DataSource[T]
	pageIndex int
	pageSize  int
	search    string
	columns   []string
	seq       atomic.Int64

	mu      sync.Mutex
	current Page[T]
}

func NewTable[T any](name string, registry Registry, source DataSource[T], pageSize int) *Table[T] {
	return &Table[T]{
		Filters:  NewFilterSet(registry),
		Sorts:    NewSortSet(registry),
		name:     name,
		registry: registry,
		source:   source,
		pageSize: pageSize,
	}
}

func (t *Table[T]) Registry() Registry {
	return t.registry
}

// SetRegistry swaps the column registry on a view-configuration change and
// prunes filters and sorts referencing removed columns.
func (t *Table[T]) SetRegistry(registry Registry) {
	t.registry = registry
	t.Filters.SetRegistry(registry)
	t.Sorts.SetRegistry(registry)
}

func (t *Table[T]) SetPage(pageIndex int) {
	if pageIndex < 0 {
		pageIndex = 0
	}
	t.pageIndex = pageIndex
}

func (t *Table[T]) SetPageSize(pageSize int) {
	if pageSize > 0 {
		t.pageSize = pageSize
	}
}

func (t *Table[T]) SetSearch(search string, columns ...string) {
	t.search = search
	t.columns = columns
	t.pageIndex = 0
}

// Params snapshots the current query state. Filter and sort lists are deep
// copied so an in-flight request is not affected by later edits.
func (t *Table[T]) Params() PageParams {
	var filters []ColumnFilter
	var sorts []ColumnSort
	_ = copier.Copy(&filters, t.Filters.Items())
	_ = copier.Copy(&sorts, t.Sorts.Items())
	return PageParams{
		PageIndex:     t.pageIndex,
		PageSize:      t.pageSize,
		Search:        t.search,
		SearchColumns: t.columns,
		Sort:          sorts,
		Filters:       filters,
	}
}

// Refresh evaluates the current state against the data source and replaces
// the displayed page. A response that was superseded by a newer refresh is
// discarded, never applied over fresher data.
func (t *Table[T]) Refresh(ctx context.Context) (Page[T], error) {
	seq := t.seq.Add(1)
	page, err := t.source.FetchPage(ctx, t.Params())

	t.mu.Lock()
	if t.seq.Load() != seq {
		// a newer refresh was issued while this one was in flight
		current := t.current
		t.mu.Unlock()
		return current, nil
	}
	if err != nil {
		current := t.current
		t.mu.Unlock()
		bus.Publish(bus.TopicTableRefreshFailed, bus.Event{
			Subject: t.name,
			Event:   "refresh",
			Error:   err.Error(),
		})
		return current, err
	}
	t.current = page
	t.mu.Unlock()
	bus.Publish(bus.TopicTableRefreshed, bus.Event{
		Subject: t.name,
		Event:   "refresh",
		Total:   page.Total,
	})
	return page, nil
}

// Page returns the last applied page.
func (t *Table[T]) Page() Page[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// LocalSource serves pages from rows held in memory.
type LocalSource[T any] struct {
	view *View[T]
	rows []T
}

func NewLocalSource[T any](registry Registry, get Getter[T], rows []T) *LocalSource[T] {
	return &LocalSource[T]{view: NewView(registry, get), rows: rows}
}

func (s *LocalSource[T]) Replace(rows []T) {
	s.rows = rows
}

func (s *LocalSource[T]) FetchPage(_ context.Context, params PageParams) (Page[T], error) {
	return s.view.Apply(s.rows, params), nil
}
