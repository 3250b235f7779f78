package field

import "github.com/killzin666/ozone/intset"

// RowValueSource is the minimal surface an IndexedFieldBuilder needs from
// a source field: one pass over rows, asking each for its values. A
// row-store field (ingest package) and a column-store IndexedField both
// satisfy it.
type RowValueSource interface {
	Values(row int) []any
}

// IndexedFieldParams configures IndexedFieldBuilder. Values, when
// non-nil, is a whitelist: values outside it are ignored during the
// build and the output preserves the supplied order (spec §4.D); when
// nil, the output order is first-seen. IntSetBuilder, when nil, defaults
// to intset.SortedArrayBuilder(intset.NoHint, intset.NoHint).
type IndexedFieldParams struct {
	Values        []any
	IntSetBuilder func() intset.Builder
}

// IndexedFieldBuilder performs the one-pass reduction described in spec
// §4.D: for each row's values (from source.Values(row)), obtain or create
// the per-value IntSet builder and feed it the row-id. Each per-value
// IntSet is sealed via OnEnd at the end and passed through whatever
// representation mostEfficientIntSet picks.
type IndexedFieldBuilder struct {
	descriptor    Descriptor
	whitelist     map[string]bool
	order         []string
	display       map[string]any
	builders      map[string]intset.Builder
	newIntBuilder func() intset.Builder
}

// NewIndexedFieldBuilder constructs a builder for descriptor d with the
// given params.
func NewIndexedFieldBuilder(d Descriptor, params IndexedFieldParams) *IndexedFieldBuilder {
	b := &IndexedFieldBuilder{
		descriptor: d,
		display:    map[string]any{},
		builders:   map[string]intset.Builder{},
		newIntBuilder: params.IntSetBuilder,
	}
	if b.newIntBuilder == nil {
		b.newIntBuilder = func() intset.Builder {
			return intset.SortedArrayBuilder(intset.NoHint, intset.NoHint)
		}
	}
	if params.Values != nil {
		b.whitelist = map[string]bool{}
		for _, v := range params.Values {
			key := stringKey(v)
			b.whitelist[key] = true
			b.order = append(b.order, key)
			b.display[key] = v
			b.builders[key] = b.newIntBuilder()
		}
	}
	return b
}

// OnRow feeds one source row, identified by its row-id, to the builder.
// Rows must be fed in strictly ascending row-id order (spec §5).
func (b *IndexedFieldBuilder) OnRow(row int, source RowValueSource) {
	for _, v := range source.Values(row) {
		key := stringKey(v)
		if b.whitelist != nil && !b.whitelist[key] {
			continue
		}
		ib, ok := b.builders[key]
		if !ok {
			ib = b.newIntBuilder()
			b.builders[key] = ib
			b.order = append(b.order, key)
			b.display[key] = v
		}
		ib.OnItem(row)
	}
}

// OnEnd seals every per-value builder and returns the finished
// IndexedField.
func (b *IndexedFieldBuilder) OnEnd() IndexedField {
	sets := make(map[string]intset.IntSet, len(b.builders))
	for key, ib := range b.builders {
		sets[key] = ib.OnEnd()
	}
	return NewIndexedField(b.descriptor, b.order, b.display, sets)
}
