package adapters

import (
	"context"
	"sync"

	"github.com/soffa-projects/go-tabular/tabular"
)

// MemoryDataset serves the list-endpoint wire contract from rows held in
// memory. It evaluates requests through the same view the local mode uses,
// so a filter serialized by the client selects exactly the rows the client
// would have selected itself.
type MemoryDataset struct {
	name     string
	registry tabular.Registry
	view     *tabular.View[map[string]any]

	mu   sync.RWMutex
	rows []map[string]any
}

func NewMemoryDataset(name string, registry tabular.Registry, rows []map[string]any) *MemoryDataset {
	return &MemoryDataset{
		name:     name,
		registry: registry,
		view:     tabular.NewView(registry, tabular.MapGetter),
		rows:     rows,
	}
}

func (d *MemoryDataset) Name() string {
	return d.name
}

func (d *MemoryDataset) Registry() tabular.Registry {
	return d.registry
}

func (d *MemoryDataset) Replace(rows []map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows = rows
}

func (d *MemoryDataset) Append(rows ...map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows = append(d.rows, rows...)
}

func (d *MemoryDataset) FetchPage(_ context.Context, params tabular.PageParams) (tabular.Page[map[string]any], error) {
	d.mu.RLock()
	rows := d.rows
	d.mu.RUnlock()
	return d.view.Apply(rows, params), nil
}
