package intset

// RangeIntSet is the contiguous set [minValue, minValue+length). It is
// empty when length is 0.
type RangeIntSet struct {
	minValue int
	length   int
}

// NewRangeIntSet constructs the contiguous set [min, min+length). A
// non-positive length yields the empty range.
func NewRangeIntSet(min, length int) RangeIntSet {
	if length <= 0 {
		return RangeIntSet{}
	}
	return RangeIntSet{minValue: min, length: length}
}

func (r RangeIntSet) Has(i int) bool {
	return r.length > 0 && i >= r.minValue && i < r.minValue+r.length
}

func (r RangeIntSet) Min() int {
	if r.length == 0 {
		return -1
	}
	return r.minValue
}

func (r RangeIntSet) Max() int {
	if r.length == 0 {
		return -1
	}
	return r.minValue + r.length - 1
}

func (r RangeIntSet) Size() int { return r.length }

func (r RangeIntSet) Each(fn func(i int)) {
	for i := r.minValue; i < r.minValue+r.length; i++ {
		fn(i)
	}
}

func (r RangeIntSet) Iterator() OrderedIterator {
	return &rangeIterator{next: r.minValue, end: r.minValue + r.length}
}

// Union returns the union of r and other, exploiting the range shortcut
// from spec §4.B: if other lies entirely inside r, the union is just r.
func (r RangeIntSet) Union(other IntSet) IntSet {
	if r.length == 0 {
		return other
	}
	if or, ok := other.(RangeIntSet); ok {
		if u, ok := unionOfRanges(r, or); ok {
			return u
		}
	}
	if other.Size() > 0 && other.Min() >= r.minValue && other.Max() <= r.Max() {
		return r
	}
	return unionOfOrderedIterators(r.Iterator(), other.Iterator())
}

// Intersection returns the subset of other within [r.min, r.max], per the
// range shortcut from spec §4.B.
func (r RangeIntSet) Intersection(other IntSet) IntSet {
	if r.length == 0 || other.Size() == 0 {
		return Empty()
	}
	if or, ok := other.(RangeIntSet); ok {
		lo := max(r.minValue, or.minValue)
		hi := min(r.Max(), or.Max())
		if hi < lo {
			return Empty()
		}
		return NewRangeIntSet(lo, hi-lo+1)
	}
	return intersectionOfOrderedIterators(r.Iterator(), other.Iterator())
}

func (r RangeIntSet) Equals(other IntSet) bool { return equalIntSets(r, other) }

// unionOfRanges returns the union of two ranges when that union is itself
// contiguous (overlapping or adjacent), and false otherwise.
func unionOfRanges(a, b RangeIntSet) (RangeIntSet, bool) {
	if a.length == 0 {
		return b, true
	}
	if b.length == 0 {
		return a, true
	}
	if a.minValue > b.Max()+1 || b.minValue > a.Max()+1 {
		return RangeIntSet{}, false
	}
	lo := min(a.minValue, b.minValue)
	hi := max(a.Max(), b.Max())
	return NewRangeIntSet(lo, hi-lo+1), true
}

type rangeIterator struct {
	next int
	end  int
}

func (it *rangeIterator) HasNext() bool { return it.next < it.end }

func (it *rangeIterator) Next() int {
	if it.next >= it.end {
		return 0
	}
	v := it.next
	it.next++
	return v
}

func (it *rangeIterator) SkipTo(target int) {
	if target > it.next {
		it.next = target
	}
}
