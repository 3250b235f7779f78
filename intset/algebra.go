package intset

// unionOfOrderedIterators performs a classic k-way (here two-way) merge:
// at each step emit the smallest head, skipping duplicates, and advance
// every iterator whose head equals the emitted value.
func unionOfOrderedIterators(a, b OrderedIterator) IntSet {
	bld := newUnionBuilder()
	for a.HasNext() || b.HasNext() {
		switch {
		case !a.HasNext():
			bld.onItem(b.Next())
		case !b.HasNext():
			bld.onItem(a.Next())
		default:
			av, bv := peek(a), peek(b)
			switch {
			case av < bv:
				bld.onItem(a.Next())
			case bv < av:
				bld.onItem(b.Next())
			default:
				bld.onItem(a.Next())
				b.Next()
			}
		}
	}
	return bld.onEnd()
}

// intersectionOfOrderedIterators advances the iterator whose head is
// smallest until both heads agree, emits, advances both, and repeats.
func intersectionOfOrderedIterators(a, b OrderedIterator) IntSet {
	bld := newUnionBuilder()
	for a.HasNext() && b.HasNext() {
		av, bv := peek(a), peek(b)
		switch {
		case av < bv:
			a.SkipTo(bv)
		case bv < av:
			b.SkipTo(av)
		default:
			bld.onItem(av)
			a.Next()
			b.Next()
		}
	}
	return bld.onEnd()
}

// peek reads the next value of an iterator without consuming it. Ordered
// iterators in this package don't expose Peek directly, so this helper
// wraps the handful of cursor-based iterators that do via a type
// assertion, falling back to Next() (which consumes the element) otherwise.
func peek(it OrderedIterator) int {
	if p, ok := it.(peeker); ok {
		return p.peekNext()
	}
	// No concrete iterator in this package lacks peekNext, but keep a safe
	// fallback: Next() then SkipTo back is not possible for a forward-only
	// cursor, so this path is intentionally unreachable for the three
	// built-in variants.
	return it.Next()
}

type peeker interface {
	peekNext() int
}

func (it *rangeIterator) peekNext() int { return it.next }

func (it *sortedArrayIterator) peekNext() int { return it.data[it.pos] }

func (it *bitmapIterator) peekNext() int {
	it.prime()
	return it.curBase + minBit(it.cur)
}

// unionAccumulator collects ascending, duplicate-free ints into a builder
// chosen by mostEfficientIntSet once the merge completes. It is used by
// both union and intersection merges above (the name reflects that
// ordered-iterator merges always feed a strictly ascending stream,
// regardless of which algebraic operation produced it).
type unionAccumulator struct {
	items []int
}

func newUnionBuilder() *unionAccumulator { return &unionAccumulator{} }

func (u *unionAccumulator) onItem(i int) { u.items = append(u.items, i) }

func (u *unionAccumulator) onEnd() IntSet {
	return mostEfficientIntSet(NewSortedArrayIntSet(u.items))
}
