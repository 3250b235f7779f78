package intset

// mostEfficientIntSet picks, after a set is already materialized, the
// cheapest of the three concrete representations for the same membership.
//
//   - A contiguous run becomes a RangeIntSet (one word, no matter the size).
//   - Otherwise, compare the byte footprint of a sorted array (one int per
//     element) against a bitmap (one bit per possible value in its span):
//     a bitmap wins once density size/(max-min+1) reaches roughly 1/32, the
//     break-even point where the bitmap needs no more 32-bit words than the
//     array has elements.
func mostEfficientIntSet(s IntSet) IntSet {
	size := s.Size()
	if size == 0 {
		return Empty()
	}
	min, max := s.Min(), s.Max()
	span := max - min + 1
	if size == span {
		return NewRangeIntSet(min, span)
	}

	wordCount := (span + wordBits - 1) / wordBits
	bitmapPreferred := wordCount <= size // density >= 1/32

	if b, ok := s.(BitmapIntSet); ok {
		// Already a bitmap; only re-home to an array if that's cheaper.
		if !bitmapPreferred {
			return toSortedArray(s)
		}
		return b
	}
	if a, ok := s.(SortedArrayIntSet); ok {
		if bitmapPreferred {
			return buildBitmapFrom(s, min, max)
		}
		return a
	}
	// Unknown/derived variant (shouldn't occur for the three built-ins,
	// but stay correct rather than assume): materialize via a sorted
	// array and recurse once.
	return mostEfficientIntSet(toSortedArray(s))
}

func toSortedArray(s IntSet) SortedArrayIntSet {
	data := make([]int, 0, s.Size())
	s.Each(func(i int) { data = append(data, i) })
	return NewSortedArrayIntSet(data)
}

func buildBitmapFrom(s IntSet, min, max int) BitmapIntSet {
	b := BitmapBuilder(min, max)
	s.Each(b.OnItem)
	return b.OnEnd().(BitmapIntSet)
}
