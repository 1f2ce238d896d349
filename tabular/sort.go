package tabular

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ColumnSort is one entry of a table's sort list. List order is sort
// precedence: the first entry is the primary key.
type ColumnSort struct {
	ColumnId  string        `json:"columnId"`
	Direction SortDirection `json:"direction"`
}

// SortSet is the caller-owned sort list of one table. Column ids are unique
// within the set. Like FilterSet, it is meant to be mutated from a single
// event loop.
type SortSet struct {
	registry Registry
	items    []ColumnSort
}

func NewSortSet(registry Registry) *SortSet {
	return &SortSet{registry: registry}
}

func (s *SortSet) Items() []ColumnSort {
	return s.items
}

func (s *SortSet) Len() int {
	return len(s.items)
}

func (s *SortSet) contains(columnId string) bool {
	for _, item := range s.items {
		if item.ColumnId == columnId {
			return true
		}
	}
	return false
}

// Add appends an ascending sort on columnId. Adding a column already in the
// set is a no-op, never a duplicate entry.
func (s *SortSet) Add(columnId string) {
	if s.contains(columnId) {
		return
	}
	s.items = append(s.items, ColumnSort{ColumnId: columnId, Direction: SortAsc})
}

func (s *SortSet) Remove(columnId string) {
	for i, item := range s.items {
		if item.ColumnId == columnId {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *SortSet) SetDirection(columnId string, direction SortDirection) {
	for i := range s.items {
		if s.items[i].ColumnId == columnId {
			s.items[i].Direction = direction
			return
		}
	}
}

// MoveUp swaps the entry at index with its predecessor; index 0 stays put.
func (s *SortSet) MoveUp(index int) {
	if index <= 0 || index >= len(s.items) {
		return
	}
	s.items[index-1], s.items[index] = s.items[index], s.items[index-1]
}

// MoveDown swaps the entry at index with its successor; the last index stays put.
func (s *SortSet) MoveDown(index int) {
	if index < 0 || index >= len(s.items)-1 {
		return
	}
	s.items[index], s.items[index+1] = s.items[index+1], s.items[index]
}

// AvailableColumns lists registry columns not yet part of the sort list, in
// registry order. This drives the "add sort" affordance and must be read
// again after every mutation.
func (s *SortSet) AvailableColumns() []Column {
	var out []Column
	for _, col := range s.registry {
		if !s.contains(col.Id) {
			out = append(out, col)
		}
	}
	return out
}

// Prune drops sorts whose column left the registry, mirroring FilterSet.
func (s *SortSet) Prune() {
	kept := s.items[:0]
	for _, item := range s.items {
		if s.registry.Contains(item.ColumnId) {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

func (s *SortSet) SetRegistry(registry Registry) {
	s.registry = registry
	s.Prune()
}
