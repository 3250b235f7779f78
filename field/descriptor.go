// Package field implements the column descriptor model (spec §4.C) and the
// two storage shapes a column can take: IndexedField (value -> row-id set)
// and UnIndexedField (dense per-row array).
package field

import "math"

// ValueType is one of the primitive type tags a column's values carry.
type ValueType string

const (
	TypeString  ValueType = "string"
	TypeNumber  ValueType = "number"
	TypeBoolean ValueType = "boolean"
	TypeObject  ValueType = "object"
)

// Range describes the numeric span of a number-typed column.
type Range struct {
	Min         float64
	Max         float64
	IntegerOnly bool
}

// unlimitedEstimate stands in for the "∞-equivalent" distinct-value
// estimate spec §3 allows for wide-cardinality columns.
const unlimitedEstimate = math.MaxInt32

// UnlimitedEstimate is unlimitedEstimate's exported form, for callers
// (e.g. the serialize package) that need to recognize the sentinel
// in a round-tripped distinctValueEstimate without re-deriving it.
const UnlimitedEstimate = unlimitedEstimate

// Descriptor captures the metadata shared between a row-store field and a
// column-store field: identity, display name, value type, optional numeric
// range, and a distinct-value estimate.
type Descriptor struct {
	Identifier           string
	DisplayName          string
	TypeOfValue          ValueType
	TypeConstructorName  string // experimental (spec §9 Open Question); preserved for round-trip only
	PrecomputedRange     *Range
	MultipleValuesPerRow bool
	distinctValues       int
	unlimited            bool
}

// Option configures a Descriptor built by NewDescriptor.
type Option func(*Descriptor)

// WithDisplayName sets the column's advisory display name.
func WithDisplayName(name string) Option {
	return func(d *Descriptor) { d.DisplayName = name }
}

// WithIdentifier sets the column's unique identifier.
func WithIdentifier(id string) Option {
	return func(d *Descriptor) { d.Identifier = id }
}

// WithRange attaches a precomputed numeric range.
func WithRange(r Range) Option {
	return func(d *Descriptor) { d.PrecomputedRange = &r }
}

// WithDistinctValues sets an exact distinct-value count (used when it is
// already known, e.g. from an IndexedField's allValues()).
func WithDistinctValues(n int) Option {
	return func(d *Descriptor) { d.distinctValues = n; d.unlimited = false }
}

// WithMultipleValuesPerRow marks the column as potentially multi-valued.
func WithMultipleValuesPerRow() Option {
	return func(d *Descriptor) { d.MultipleValuesPerRow = true }
}

// WithUnlimitedValues forces DistinctValueEstimate to report the
// ∞-equivalent (spec §3/§4.C). The flag only affects the descriptor;
// ingestion does not read it and counts distinct values regardless.
func WithUnlimitedValues() Option {
	return func(d *Descriptor) { d.unlimited = true }
}

// WithTypeConstructorName records the (experimental, spec §9) constructor
// name for an object-typed column, kept only so serialization round-trips.
func WithTypeConstructorName(name string) Option {
	return func(d *Descriptor) { d.TypeConstructorName = name }
}

// NewDescriptor builds a Descriptor for the given value type plus any
// number of options, mirroring the property-bag factory of spec §4.C in a
// strongly typed form (spec §9's suggested FieldDescriptorBuilder).
func NewDescriptor(typeOfValue ValueType, opts ...Option) Descriptor {
	d := Descriptor{TypeOfValue: typeOfValue}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// DistinctValueEstimate returns the ∞-equivalent sentinel when the column
// is marked unlimited, otherwise the count set via WithDistinctValues (0
// if none was set).
func (d Descriptor) DistinctValueEstimate() int {
	if d.unlimited {
		return unlimitedEstimate
	}
	return d.distinctValues
}

// Unlimited reports whether the column was marked unlimited (see
// WithUnlimitedValues).
func (d Descriptor) Unlimited() bool { return d.unlimited }

// Merge composes partials left-to-right, later entries overwriting
// earlier ones field-by-field (empty/zero fields on the override do not
// clobber the base), mirroring mergeFieldDescriptors from spec §4.C.
func Merge(descriptors ...Descriptor) Descriptor {
	var out Descriptor
	for i, d := range descriptors {
		if i == 0 {
			out = d
			continue
		}
		if d.Identifier != "" {
			out.Identifier = d.Identifier
		}
		if d.DisplayName != "" {
			out.DisplayName = d.DisplayName
		}
		if d.TypeOfValue != "" {
			out.TypeOfValue = d.TypeOfValue
		}
		if d.TypeConstructorName != "" {
			out.TypeConstructorName = d.TypeConstructorName
		}
		if d.PrecomputedRange != nil {
			out.PrecomputedRange = d.PrecomputedRange
		}
		if d.MultipleValuesPerRow {
			out.MultipleValuesPerRow = true
		}
		if d.unlimited {
			out.unlimited = true
		}
		if d.distinctValues != 0 {
			out.distinctValues = d.distinctValues
		}
	}
	return out
}
