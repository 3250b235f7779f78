package intset

// IntSet is an immutable set of non-negative row-ids with ascending
// iteration and cross-variant set algebra. All three concrete variants
// (RangeIntSet, SortedArrayIntSet, BitmapIntSet) satisfy it.
type IntSet interface {
	// Has reports whether i is a member of the set.
	Has(i int) bool
	// Min returns the smallest element, or -1 if the set is empty.
	Min() int
	// Max returns the largest element, or -1 if the set is empty.
	Max() int
	// Size returns the number of elements.
	Size() int
	// Each invokes fn for every element in strictly ascending order.
	Each(fn func(i int))
	// Iterator returns a fresh ascending OrderedIterator over the set.
	Iterator() OrderedIterator
	// Union returns the set-theoretic union of the receiver and other.
	Union(other IntSet) IntSet
	// Intersection returns the set-theoretic intersection of the receiver
	// and other.
	Intersection(other IntSet) IntSet
	// Equals reports whether the receiver and other enumerate the same
	// ascending sequence of elements, regardless of concrete variant.
	Equals(other IntSet) bool
}

// OrderedIterator walks an IntSet's elements in strictly ascending order.
type OrderedIterator interface {
	// HasNext reports whether Next would return another element.
	HasNext() bool
	// Next returns the next element and advances the iterator. Calling
	// Next when HasNext is false returns 0 — callers must check HasNext
	// first; it does not panic.
	Next() int
	// SkipTo advances the iterator so the next Next call returns the
	// first element >= target. SkipTo to a value <= the current position
	// is a no-op.
	SkipTo(target int)
}

// emptySet is the shared canonical empty IntSet, returned whenever a
// field's IntSetForValue is asked about a value it has never seen.
var emptySet IntSet = SortedArrayIntSet{}

// Empty returns the canonical empty IntSet.
func Empty() IntSet { return emptySet }

// equalIntSets reports whether a and b enumerate identical ascending
// sequences. It is variant-agnostic: a fast min/max/size check short
// circuits the common mismatch case before falling back to a linear
// iterator walk.
func equalIntSets(a, b IntSet) bool {
	if a.Size() != b.Size() || a.Min() != b.Min() || a.Max() != b.Max() {
		return false
	}
	ai, bi := a.Iterator(), b.Iterator()
	for ai.HasNext() {
		if !bi.HasNext() || ai.Next() != bi.Next() {
			return false
		}
	}
	return !bi.HasNext()
}

// EqualIntSets is the exported convenience wrapper over equalIntSets, for
// callers outside this package that want to compare two IntSets without
// depending on either's concrete type.
func EqualIntSets(a, b IntSet) bool { return equalIntSets(a, b) }

// binarySearch searches the ascending slice data for target. If found, it
// returns the index >= 0. If not found, it returns the bitwise complement
// of the insertion point (so index < 0, and ^index is where target would
// be inserted to keep data ascending).
func binarySearch(data []int, target int) int {
	lo, hi := 0, len(data)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if data[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(data) && data[lo] == target {
		return lo
	}
	return ^lo
}
