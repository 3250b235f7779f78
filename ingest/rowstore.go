package ingest

import (
	"strconv"

	"github.com/killzin666/ozone/field"
)

// ClassOverride forces buildFromStore's IndexedField/UnIndexedField choice
// for one column, bypassing the distinct-value-estimate heuristic (spec
// §4.H: "a configured class override").
type ClassOverride int

const (
	AutoClass ClassOverride = iota
	ForceIndexed
	ForceUnindexed
)

// FieldSpec declares how one input column should be ingested.
type FieldSpec struct {
	Identifier  string
	DisplayName string
	TypeOfValue field.ValueType
	Class       ClassOverride
	NullValues  []any
	// Convert parses a raw cell string into a typed value. If nil, a
	// default conversion is chosen from TypeOfValue (float64 for
	// TypeNumber, bool for TypeBoolean, the string itself otherwise).
	Convert func(raw string) (any, error)
}

func defaultFieldSpec(column string) FieldSpec {
	return FieldSpec{Identifier: column, DisplayName: column, TypeOfValue: field.TypeString}
}

func (s FieldSpec) convert(raw string) (any, error) {
	if s.Convert != nil {
		return s.Convert(raw)
	}
	switch s.TypeOfValue {
	case field.TypeNumber:
		return strconv.ParseFloat(raw, 64)
	case field.TypeBoolean:
		return strconv.ParseBool(raw)
	default:
		return raw, nil
	}
}

// RowStoreField is the row-oriented (pre-column) accumulation of one
// field's values, keyed by row-id. It satisfies field.RowValueSource so
// field.IndexedFieldBuilder can run its one pass directly over it (spec
// §4.D: "one pass over the source's rows").
type RowStoreField struct {
	spec      FieldSpec
	values    []any
	freq      *ValueFrequencyCalculator
	rangeCalc *RangeCalculator
}

func newRowStoreField(spec FieldSpec) *RowStoreField {
	f := &RowStoreField{spec: spec, freq: NewValueFrequencyCalculator()}
	if spec.TypeOfValue == field.TypeNumber {
		f.rangeCalc = NewRangeCalculator()
	}
	return f
}

// Values satisfies field.RowValueSource: a single-element (or empty) list,
// since row-oriented ingestion sources only ever produce one value per
// cell.
func (f *RowStoreField) Values(row int) []any {
	v := f.Value(row)
	if v == nil {
		return nil
	}
	return []any{v}
}

// Value returns row's single raw value, or nil if out of range.
func (f *RowStoreField) Value(row int) any {
	if row < 0 || row >= len(f.values) {
		return nil
	}
	return f.values[row]
}

// firstValueRow returns the row-id of the first non-nil value recorded
// for this field, so a caller can skip leading nulls (spec §4.E's
// offset trim) instead of always starting from row 0.
func (f *RowStoreField) firstValueRow() (int, bool) {
	for row, v := range f.values {
		if v != nil {
			return row, true
		}
	}
	return 0, false
}

func (f *RowStoreField) record(row int, v any) {
	for len(f.values) <= row {
		f.values = append(f.values, nil)
	}
	f.values[row] = v
	if v != nil {
		f.freq.OnItem(v)
		if f.rangeCalc != nil {
			f.rangeCalc.OnItem(v)
		}
	}
}

// RowStore is the intermediate, row-oriented accumulation all of a row
// source's rows are reduced into during the first ingestion pass, before
// buildFromStore (spec §4.H) converts each field into its final columnar
// representation.
type RowStore struct {
	Size   int
	Order  []string
	Fields map[string]*RowStoreField
}
