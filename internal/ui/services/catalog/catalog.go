package catalog

import (
	"listselect/internal/domain"
)

// Catalog is the ordered sequence of items currently considered active.
// A Catalog is immutable once built.
type Catalog struct {
	items []domain.Item
}

// New validates items and builds a catalog from a copy of them.
// A malformed item is rejected with a *domain.ValidationError.
func New(items []domain.Item) (Catalog, error) {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return Catalog{}, &domain.ValidationError{Index: i, Err: err}
		}
	}
	return Catalog{items: append([]domain.Item(nil), items...)}, nil
}

// Len returns the number of items
func (c Catalog) Len() int {
	return len(c.items)
}

// Contains reports whether index addresses an item of the catalog
func (c Catalog) Contains(index int) bool {
	return index >= 0 && index < len(c.items)
}

// At returns the item at index
func (c Catalog) At(index int) (domain.Item, bool) {
	if !c.Contains(index) {
		return domain.Item{}, false
	}
	return c.items[index], true
}

// DisplayText returns the display text of the item at index, "" when out of range
func (c Catalog) DisplayText(index int) string {
	item, ok := c.At(index)
	if !ok {
		return ""
	}
	return item.DisplayText()
}

// LastIndex returns the last valid index, or domain.None when empty
func (c Catalog) LastIndex() int {
	if len(c.items) == 0 {
		return domain.None
	}
	return len(c.items) - 1
}

// Items returns a copy of the items
func (c Catalog) Items() []domain.Item {
	return append([]domain.Item(nil), c.items...)
}

// Filter returns the sub-catalog of items accepted by keep, in order.
// The result is already validated since its items come from c.
func (c Catalog) Filter(keep func(domain.Item) bool) Catalog {
	out := make([]domain.Item, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return Catalog{items: out}
}
