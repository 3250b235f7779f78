package ingest

import "github.com/killzin666/ozone/field"

// RangeCalculator walks a numeric field's values and computes
// {min, max, integerOnly} (spec §4.H). Non-numeric values are skipped
// (spec §7: "letting downstream range() skip non-numeric"), never
// aborting the calculation.
type RangeCalculator struct {
	min, max    float64
	integerOnly bool
	seen        bool
}

// NewRangeCalculator returns a fresh RangeCalculator.
func NewRangeCalculator() *RangeCalculator {
	return &RangeCalculator{integerOnly: true}
}

func (r *RangeCalculator) OnItem(v any) {
	f, ok := asFloat64(v)
	if !ok {
		return
	}
	if !r.seen {
		r.min, r.max = f, f
		r.seen = true
	} else {
		if f < r.min {
			r.min = f
		}
		if f > r.max {
			r.max = f
		}
	}
	if f != float64(int64(f)) {
		r.integerOnly = false
	}
}

// OnEnd returns the computed range, or (Range{}, false) if no numeric
// value was ever seen.
func (r *RangeCalculator) OnEnd() (field.Range, bool) {
	if !r.seen {
		return field.Range{}, false
	}
	return field.Range{Min: r.min, Max: r.max, IntegerOnly: r.integerOnly}, true
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}
