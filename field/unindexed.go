package field

// UnIndexedField stores a column as a dense array indexed by row-id, for
// wide-cardinality columns where an index would waste memory (spec §4.E).
// It is always unary: at most one value per row.
type UnIndexedField struct {
	descriptor Descriptor
	data       []any
	offset     int // row r maps to data[r-offset]
	nullProxy  any
}

// NewUnIndexedField wraps a dense array. offset trims leading nulls: row
// r's value is data[r-offset], and rows below offset are implicitly null.
func NewUnIndexedField(d Descriptor, data []any, offset int, nullProxy any) UnIndexedField {
	return UnIndexedField{descriptor: d, data: data, offset: offset, nullProxy: nullProxy}
}

// Descriptor returns the column's metadata.
func (f UnIndexedField) Descriptor() Descriptor { return f.descriptor }

// Value returns the single value for row, or the field's nullProxy if the
// row has none (before offset, past the end, or explicitly stored null).
func (f UnIndexedField) Value(row int) any {
	idx := row - f.offset
	if idx < 0 || idx >= len(f.data) {
		return f.nullProxy
	}
	return f.data[idx]
}

// Values returns a zero- or one-element list: empty if the row's value is
// the nullProxy, otherwise a single element.
func (f UnIndexedField) Values(row int) []any {
	v := f.Value(row)
	if isNullProxy(v, f.nullProxy) {
		return nil
	}
	return []any{v}
}

// RowHasValue compares row's single value to value by equality.
func (f UnIndexedField) RowHasValue(row int, value any) bool {
	v := f.Value(row)
	if isNullProxy(v, f.nullProxy) {
		return false
	}
	return v == value
}

// FirstRowToken returns the row-id of data[0], for serialization only.
func (f UnIndexedField) FirstRowToken() int { return f.offset }

// DataArray returns the backing dense array, for serialization only.
func (f UnIndexedField) DataArray() []any { return f.data }

func isNullProxy(v, nullProxy any) bool {
	if v == nil && nullProxy == nil {
		return true
	}
	return v == nullProxy
}
