// Package store implements the column store engine (spec §4.F, §4.G): an
// immutable container of indexed/unindexed fields plus the store-wide
// row-id set, filter composition, partitioning, and the filtered-view
// abstraction.
package store

import "fmt"

// Filter is a value-level predicate over one field. The core (and
// currently only) variant is ValueFilter.
type Filter interface {
	// FieldID names the field this filter applies to.
	FieldID() string
	// Equal reports structural equality: same concrete type, same field
	// identifier, same value. Display name is advisory and never part of
	// equality (spec §3).
	Equal(other Filter) bool
	// String is an advisory, human-readable rendering — not part of
	// equality.
	String() string
}

// ValueFilter matches rows where the named field contains value.
type ValueFilter struct {
	fieldID     string
	value       any
	displayName string
}

// NewValueFilter builds a ValueFilter for fieldID == value.
func NewValueFilter(fieldID string, value any) ValueFilter {
	return ValueFilter{fieldID: fieldID, value: value}
}

// NewValueFilterWithDisplayName attaches an advisory display name used
// only by String(), never by Equal.
func NewValueFilterWithDisplayName(fieldID string, value any, displayName string) ValueFilter {
	return ValueFilter{fieldID: fieldID, value: value, displayName: displayName}
}

func (f ValueFilter) FieldID() string { return f.fieldID }

// Value returns the value this filter matches against.
func (f ValueFilter) Value() any { return f.value }

func (f ValueFilter) Equal(other Filter) bool {
	o, ok := other.(ValueFilter)
	return ok && o.fieldID == f.fieldID && o.value == f.value
}

func (f ValueFilter) String() string {
	if f.displayName != "" {
		return fmt.Sprintf("%s = %v", f.displayName, f.value)
	}
	return fmt.Sprintf("%s = %v", f.fieldID, f.value)
}
