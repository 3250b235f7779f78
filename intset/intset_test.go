package intset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSortedArray(t *testing.T, vals ...int) IntSet {
	t.Helper()
	b := SortedArrayBuilder(NoHint, NoHint)
	for _, v := range vals {
		b.OnItem(v)
	}
	return b.OnEnd()
}

func buildBitmap(t *testing.T, vals ...int) IntSet {
	t.Helper()
	lo, hi := NoHint, NoHint
	if len(vals) > 0 {
		lo, hi = vals[0], vals[len(vals)-1]
	}
	b := BitmapBuilder(lo, hi)
	for _, v := range vals {
		b.OnItem(v)
	}
	return b.OnEnd()
}

func buildRange(t *testing.T, vals ...int) IntSet {
	t.Helper()
	b := RangeBuilder()
	for _, v := range vals {
		b.OnItem(v)
	}
	return b.OnEnd()
}

// sameAbstractSet materializes the same abstract set [5, 37, 38, 100]
// (from spec §8 S3) through the sorted-array and bitmap builders (the set
// is not contiguous, so the range builder does not apply), for
// cross-variant agreement testing.
func sameAbstractSet(t *testing.T) []IntSet {
	t.Helper()
	vals := []int{5, 37, 38, 100}
	return []IntSet{
		buildSortedArray(t, vals...),
		buildBitmap(t, vals...),
	}
}

func TestPropertyHasMembership(t *testing.T) {
	for _, s := range sameAbstractSet(t) {
		for _, x := range []int{5, 37, 38, 100} {
			assert.True(t, s.Has(x))
		}
		for _, x := range []int{0, 4, 6, 36, 39, 99, 101} {
			assert.False(t, s.Has(x))
		}
	}
}

func TestPropertyMinMaxEmptyIffSizeZero(t *testing.T) {
	empty := Empty()
	assert.Equal(t, -1, empty.Min())
	assert.Equal(t, -1, empty.Max())
	assert.Equal(t, 0, empty.Size())

	for _, s := range sameAbstractSet(t) {
		assert.NotEqual(t, -1, s.Min())
		assert.NotEqual(t, -1, s.Max())
		assert.Greater(t, s.Size(), 0)
	}
}

func TestPropertyUnionIntersectionSizeBounds(t *testing.T) {
	a := buildSortedArray(t, 1, 3, 5, 7)
	b := buildBitmap(t, 3, 5, 9)
	u := a.Union(b)
	i := a.Intersection(b)
	assert.GreaterOrEqual(t, u.Size(), max(a.Size(), b.Size()))
	assert.LessOrEqual(t, i.Size(), min(a.Size(), b.Size()))
}

func TestPropertyCommutativity(t *testing.T) {
	a := buildSortedArray(t, 1, 3, 5, 7)
	b := buildBitmap(t, 3, 5, 9)
	assert.True(t, a.Union(b).Equals(b.Union(a)))
	assert.True(t, a.Intersection(b).Equals(b.Intersection(a)))
}

func TestPropertyIdempotence(t *testing.T) {
	for _, s := range sameAbstractSet(t) {
		assert.True(t, s.Union(s).Equals(s))
		assert.True(t, s.Intersection(s).Equals(s))
	}
}

func TestPropertyCrossVariantAgreement(t *testing.T) {
	vals := []int{2, 4, 6, 8, 10}
	rng := buildRange(t, 2, 3, 4, 5, 6) // contiguous => RangeIntSet
	arr := buildSortedArray(t, vals...)
	bmp := buildBitmap(t, vals...)

	other := buildSortedArray(t, 4, 5, 9)
	require.True(t, arr.Union(other).Equals(bmp.Union(other)))
	require.True(t, arr.Intersection(other).Equals(bmp.Intersection(other)))
	require.True(t, rng.Intersection(other).Equals(
		buildSortedArray(t, 4, 5)))
}

func TestPropertyMostEfficientIntSetEquals(t *testing.T) {
	for _, s := range sameAbstractSet(t) {
		assert.True(t, mostEfficientIntSet(s).Equals(s))
	}
	assert.True(t, mostEfficientIntSet(Empty()).Equals(Empty()))
}

func TestBuilderOrderReproducesStream(t *testing.T) {
	stream := []int{0, 1, 2, 5, 9, 100}
	s := buildSortedArray(t, stream...)
	var got []int
	s.Each(func(i int) { got = append(got, i) })
	assert.Equal(t, stream, got)
}

func TestBinarySearchConvention(t *testing.T) {
	data := []int{1, 3, 5, 7, 9}
	idx := binarySearch(data, 5)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, 5, data[idx])

	idx = binarySearch(data, 4)
	assert.Less(t, idx, 0)
	assert.Equal(t, 2, ^idx) // insertion point between 3 and 5
}

func TestScenarioS3BitmapBuildAndUnion(t *testing.T) {
	b := buildBitmap(t, 5, 37, 38, 100)
	assert.Equal(t, 5, b.Min())
	assert.Equal(t, 100, b.Max())
	assert.Equal(t, 4, b.Size())

	other := buildSortedArray(t, 37, 200)
	u := b.Union(other)
	var got []int
	u.Each(func(i int) { got = append(got, i) })
	assert.Equal(t, []int{5, 37, 38, 100, 200}, got)
}

func TestScenarioS4RangeIntersectSortedArray(t *testing.T) {
	r := NewRangeIntSet(10, 11) // [10..20]
	other := buildSortedArray(t, 5, 12, 18, 25)
	i := r.Intersection(other)
	var got []int
	i.Each(func(v int) { got = append(got, v) })
	assert.Equal(t, []int{12, 18}, got)
}

func TestRangeIntSetBasics(t *testing.T) {
	r := NewRangeIntSet(10, 0)
	assert.Equal(t, 0, r.Size())
	assert.Equal(t, -1, r.Min())

	r2 := NewRangeIntSet(10, 5)
	assert.True(t, r2.Has(10))
	assert.True(t, r2.Has(14))
	assert.False(t, r2.Has(15))
	assert.Equal(t, 14, r2.Max())
}

func TestSkipToNoOpWhenBehindCurrent(t *testing.T) {
	s := buildSortedArray(t, 1, 2, 3, 10)
	it := s.Iterator()
	it.Next() // consumes 1
	it.SkipTo(0)
	assert.Equal(t, 2, it.Next())
}

func TestEqualsAcrossVariants(t *testing.T) {
	a := buildSortedArray(t, 1, 2, 3)
	b := buildRange(t, 1, 2, 3)
	c := buildBitmap(t, 1, 2, 3)
	assert.True(t, EqualIntSets(a, b))
	assert.True(t, EqualIntSets(b, c))
	assert.True(t, EqualIntSets(a, c))
}
