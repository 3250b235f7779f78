package store

import (
	"fmt"

	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/intset"
)

// FilteredView is a logical sub-store sharing the base ColumnStore's
// columns, narrowed by the intersection of every applied filter's
// matching row-id set (spec §3, §4.G).
type FilteredView struct {
	source      *ColumnStore
	filterArray []Filter
	filterBits  intset.IntSet
}

// Size is filterBits.Size().
func (v *FilteredView) Size() int { return v.filterBits.Size() }

// IntSet returns the view's row-id set.
func (v *FilteredView) IntSet() intset.IntSet { return v.filterBits }

// EachRow invokes action for every row-id in the view, ascending.
func (v *FilteredView) EachRow(action func(row int)) { v.filterBits.Each(action) }

// Field delegates to the base store: fields are shared and interpret
// row-ids correctly as long as the id is a member of the base store's
// full range.
func (v *FilteredView) Field(id string) (field.Column, bool) { return v.source.Field(id) }

// Fields delegates to the base store.
func (v *FilteredView) Fields() []field.Column { return v.source.Fields() }

// Filters returns a defensive copy of the applied filters, in application
// order.
func (v *FilteredView) Filters() []Filter {
	return append([]Filter(nil), v.filterArray...)
}

// SimplifiedFilters returns Filters() with structurally redundant
// entries removed. The default policy removes exact duplicates only; it
// is advisory, for display (spec §4.G).
func (v *FilteredView) SimplifiedFilters() []Filter {
	var out []Filter
	for _, f := range v.filterArray {
		dup := false
		for _, existing := range out {
			if existing.Equal(f) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	return out
}

// Filter applies newFilter on top of the view. If newFilter structurally
// equals one already applied, the receiver is returned unchanged
// (idempotence). Otherwise the result's filterBits is the intersection of
// the current filterBits with newFilter's matching set, evaluated against
// the current filterBits (spec §4.G).
func (v *FilteredView) Filter(newFilter Filter) *FilteredView {
	for _, existing := range v.filterArray {
		if existing.Equal(newFilter) {
			return v
		}
	}
	added := evaluateFilter(v.source, newFilter, v.filterBits)
	return &FilteredView{
		source:      v.source,
		filterArray: append(append([]Filter(nil), v.filterArray...), newFilter),
		filterBits:  v.filterBits.Intersection(added),
	}
}

// FilterByValue constructs a ValueFilter{fieldID, value} and applies it.
func (v *FilteredView) FilterByValue(fieldID string, value any) *FilteredView {
	return v.Filter(NewValueFilter(fieldID, value))
}

// RemoveFilter rebuilds the view from the base store by re-applying every
// remaining filter in order, if f is present; otherwise it returns the
// receiver unchanged. Rebuilding from base (rather than subtracting f's
// matching set) is required because intersection is not easily invertible
// (spec §4.G, §9).
func (v *FilteredView) RemoveFilter(f Filter) *FilteredView {
	idx := -1
	for i, existing := range v.filterArray {
		if existing.Equal(f) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return v
	}
	cur := v.source.IntSet()
	var remaining []Filter
	for i, existing := range v.filterArray {
		if i == idx {
			continue
		}
		cur = cur.Intersection(evaluateFilter(v.source, existing, cur))
		remaining = append(remaining, existing)
	}
	return &FilteredView{source: v.source, filterArray: remaining, filterBits: cur}
}

// Partition groups the view by field's distinct values, pre-intersecting
// each value's IntSet with filterBits and omitting empties.
func (v *FilteredView) Partition(fieldID string) (map[string]*FilteredView, error) {
	f, ok := v.source.fields[fieldID]
	if !ok {
		return nil, fmt.Errorf("store: unknown field %q", fieldID)
	}
	entries := partitionField(f, v.filterBits)
	out := make(map[string]*FilteredView, len(entries))
	for key, e := range entries {
		if e.set.Size() == 0 {
			continue
		}
		out[key] = &FilteredView{
			source:      v.source,
			filterArray: append(append([]Filter(nil), v.filterArray...), NewValueFilter(fieldID, e.value)),
			filterBits:  e.set,
		}
	}
	return out, nil
}
