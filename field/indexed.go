package field

import (
	"fmt"

	"github.com/killzin666/ozone/intset"
)

// IndexedField stores a column as an ordered list of distinct values plus a
// map from each value's string form to the IntSet of rows holding it. A
// row may appear under zero, one, or multiple values (spec §3: the field
// may be multi-valued per row).
type IndexedField struct {
	descriptor Descriptor
	order      []string                 // insertion (or builder-supplied) order, keyed by string form
	display    map[string]any           // string form -> original value, for AllValues()
	sets       map[string]intset.IntSet // string form -> IntSet of rows holding that value
}

// NewIndexedField assembles an IndexedField from a value order and the
// IntSet already computed per value. Values present in order but absent
// from sets are treated as declared-but-empty (spec §4.D: "empty IntSets
// for known values are legal and must be preserved").
func NewIndexedField(d Descriptor, order []string, display map[string]any, sets map[string]intset.IntSet) IndexedField {
	f := IndexedField{
		descriptor: d,
		order:      append([]string(nil), order...),
		display:    display,
		sets:       sets,
	}
	f.descriptor.distinctValues = len(f.order)
	f.descriptor.unlimited = false
	return f
}

// Descriptor returns the column's metadata, with DistinctValueEstimate
// kept in sync with len(AllValues()).
func (f IndexedField) Descriptor() Descriptor { return f.descriptor }

// AllValues returns the distinct values this field holds, in insertion (or
// builder-specified) order.
func (f IndexedField) AllValues() []any {
	out := make([]any, len(f.order))
	for i, key := range f.order {
		out[i] = f.display[key]
	}
	return out
}

// DistinctValueEstimate is exactly len(AllValues()) for an IndexedField.
func (f IndexedField) DistinctValueEstimate() int { return len(f.order) }

// IntSetForValue returns the IntSet of rows holding value, or the
// canonical empty IntSet if the value is unknown to this field.
func (f IndexedField) IntSetForValue(value any) intset.IntSet {
	key := stringKey(value)
	if s, ok := f.sets[key]; ok {
		return s
	}
	return intset.Empty()
}

// RowHasValue is a constant-time lookup via the value's IntSet.
func (f IndexedField) RowHasValue(row int, value any) bool {
	return f.IntSetForValue(value).Has(row)
}

// Values returns every value the given row has for this field. Expected
// O(distinctValues) per spec §4.D.
func (f IndexedField) Values(row int) []any {
	var out []any
	for _, key := range f.order {
		if f.sets[key].Has(row) {
			out = append(out, f.display[key])
		}
	}
	return out
}

// StringKey exposes stringKey for callers outside this package (the
// serialize package) that need to reconstruct the same per-value key an
// IndexedFieldBuilder would have used.
func StringKey(value any) string { return stringKey(value) }

// stringKey is the canonical string form values are keyed by internally
// (spec §4.C / §9: "rely on stable toString of values").
func stringKey(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
