package store

import (
	"fmt"

	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/intset"
)

// intSetForValue is the fast-path surface an indexed field exposes; a
// type assertion against it lets ColumnStore/FilteredView skip a per-row
// scan when the underlying field happens to be a field.IndexedField
// (spec §4.F: "For an IndexedField filter: fetch intSetForValue(value)
// and intersect ... no per-row scan").
type intSetForValue interface {
	IntSetForValue(value any) intset.IntSet
}

// valueEnumerator is the additional surface field.IndexedField exposes
// that lets ColumnStore.Partition walk its value->IntSet map directly
// instead of scanning rows.
type valueEnumerator interface {
	AllValues() []any
	IntSetForValue(value any) intset.IntSet
}

// ColumnStore is an immutable aggregate of fields plus a row count. Its
// row-id set is logically [0, size) (spec §3).
type ColumnStore struct {
	size   int
	order  []string
	fields map[string]field.Column
}

// NewColumnStore builds a sealed ColumnStore. order fixes Fields()'s
// iteration order; fields must be keyed by the same identifiers as order.
func NewColumnStore(size int, order []string, fields map[string]field.Column) *ColumnStore {
	return &ColumnStore{
		size:   size,
		order:  append([]string(nil), order...),
		fields: fields,
	}
}

// Size returns the row count.
func (c *ColumnStore) Size() int { return c.size }

// IntSet returns the store-wide row-id set [0, size).
func (c *ColumnStore) IntSet() intset.IntSet {
	return intset.NewRangeIntSet(0, c.size)
}

// Field returns the field for id, or (nil, false) if unknown.
func (c *ColumnStore) Field(id string) (field.Column, bool) {
	f, ok := c.fields[id]
	return f, ok
}

// Fields returns every field, in store order.
func (c *ColumnStore) Fields() []field.Column {
	out := make([]field.Column, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.fields[id])
	}
	return out
}

// Filters returns the empty list: a raw ColumnStore has no applied
// filters (spec §4.F).
func (c *ColumnStore) Filters() []Filter { return nil }

// Filter applies f against the full row range and returns a FilteredView.
func (c *ColumnStore) Filter(f Filter) *FilteredView {
	matching := evaluateFilter(c, f, c.IntSet())
	return &FilteredView{
		source:      c,
		filterArray: []Filter{f},
		filterBits:  matching,
	}
}

// FilterByValue constructs a ValueFilter{fieldID, value} and applies it
// (one of the three overloaded filter entry points from spec §4.F,
// exposed under its own name per spec §9's redesign note).
func (c *ColumnStore) FilterByValue(fieldID string, value any) *FilteredView {
	return c.Filter(NewValueFilter(fieldID, value))
}

// Partition returns a mapping from each distinct value's string form to a
// FilteredView holding exactly the rows with that value. Values with
// empty row-id sets are omitted.
func (c *ColumnStore) Partition(fieldID string) (map[string]*FilteredView, error) {
	f, ok := c.fields[fieldID]
	if !ok {
		return nil, fmt.Errorf("store: unknown field %q", fieldID)
	}
	entries := partitionField(f, c.IntSet())
	out := make(map[string]*FilteredView, len(entries))
	for key, e := range entries {
		if e.set.Size() == 0 {
			continue
		}
		out[key] = &FilteredView{
			source:      c,
			filterArray: []Filter{NewValueFilter(fieldID, e.value)},
			filterBits:  e.set,
		}
	}
	return out, nil
}

// EachRow invokes action for every row-id in [0, size), ascending.
func (c *ColumnStore) EachRow(action func(row int)) {
	c.IntSet().Each(action)
}

// evaluateFilter matches f against field values within current, following
// the two strategies spec §4.F describes.
func evaluateFilter(c *ColumnStore, f Filter, current intset.IntSet) intset.IntSet {
	vf, ok := f.(ValueFilter)
	if !ok {
		return intset.Empty()
	}
	col, ok := c.fields[vf.FieldID()]
	if !ok {
		return intset.Empty()
	}
	if ix, ok := col.(intSetForValue); ok {
		return current.Intersection(ix.IntSetForValue(vf.Value()))
	}
	return scanForValue(col, current, vf.Value())
}

// scanForValue is the UnIndexedField fallback: iterate current and keep
// rows whose value equals target, feeding a new IntSet builder.
func scanForValue(col field.Column, current intset.IntSet, target any) intset.IntSet {
	b := intset.SortedArrayBuilder(intset.NoHint, intset.NoHint)
	current.Each(func(row int) {
		if col.RowHasValue(row, target) {
			b.OnItem(row)
		}
	})
	return b.OnEnd()
}

// partitionEntry pairs the partitioning IntSet with the original value it
// was keyed on, so a FilteredView built from it can carry a faithful
// ValueFilter rather than a stringified stand-in.
type partitionEntry struct {
	value any
	set   intset.IntSet
}

// partitionField groups current by col's distinct values, as IndexedField
// does via a direct walk of its map, or as the UnIndexedField fallback
// does via a row scan (spec §4.F).
func partitionField(col field.Column, current intset.IntSet) map[string]partitionEntry {
	if ve, ok := col.(valueEnumerator); ok {
		out := make(map[string]partitionEntry)
		for _, v := range ve.AllValues() {
			out[fmt.Sprint(v)] = partitionEntry{value: v, set: current.Intersection(ve.IntSetForValue(v))}
		}
		return out
	}

	builders := map[string]intset.Builder{}
	values := map[string]any{}
	order := []string{}
	current.Each(func(row int) {
		for _, v := range col.Values(row) {
			key := fmt.Sprint(v)
			b, ok := builders[key]
			if !ok {
				b = intset.SortedArrayBuilder(intset.NoHint, intset.NoHint)
				builders[key] = b
				values[key] = v
				order = append(order, key)
			}
			b.OnItem(row)
		}
	})
	out := make(map[string]partitionEntry, len(order))
	for _, key := range order {
		out[key] = partitionEntry{value: values[key], set: builders[key].OnEnd()}
	}
	return out
}
