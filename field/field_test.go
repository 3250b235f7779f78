package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioS2IndexedFieldFromValues builds an IndexedField from
// ["a","b","a","c","a"] at row-ids 0..4 (spec §8 S2).
func TestScenarioS2IndexedFieldFromValues(t *testing.T) {
	values := []string{"a", "b", "a", "c", "a"}
	b := NewIndexedFieldBuilder(NewDescriptor(TypeString), IndexedFieldParams{})
	for row, v := range values {
		b.OnRow(row, rowOfOne{v: v})
	}
	f := b.OnEnd()

	var aRows []int
	f.IntSetForValue("a").Each(func(i int) { aRows = append(aRows, i) })
	assert.Equal(t, []int{0, 2, 4}, aRows)

	var bRows []int
	f.IntSetForValue("b").Each(func(i int) { bRows = append(bRows, i) })
	assert.Equal(t, []int{1}, bRows)

	assert.True(t, f.RowHasValue(3, "c"))
	assert.Len(t, f.AllValues(), 3)
}

// TestScenarioS6ExplicitValueOrder builds with an explicit whitelist/order
// that includes a value never observed in the source rows (spec §8 S6).
func TestScenarioS6ExplicitValueOrder(t *testing.T) {
	b := NewIndexedFieldBuilder(NewDescriptor(TypeString), IndexedFieldParams{
		Values: []any{"Jan", "Feb", "Mar"},
	})
	rows := []string{"Jan", "Mar", "Jan"}
	for row, v := range rows {
		b.OnRow(row, rowOfOne{v: v})
	}
	f := b.OnEnd()

	require.Equal(t, []any{"Jan", "Feb", "Mar"}, f.AllValues())
	assert.Equal(t, 0, f.IntSetForValue("Feb").Size())
}

func TestIndexedFieldUnknownValueReturnsEmptySet(t *testing.T) {
	b := NewIndexedFieldBuilder(NewDescriptor(TypeString), IndexedFieldParams{})
	b.OnRow(0, rowOfOne{v: "x"})
	f := b.OnEnd()
	assert.Equal(t, 0, f.IntSetForValue("never-seen").Size())
}

func TestUnIndexedFieldValueAndNullProxy(t *testing.T) {
	b := NewUnIndexedFieldBuilder(NewDescriptor(TypeNumber), UnIndexedFieldParams{
		NullValues: []any{"N/A"},
		NullProxy:  nil,
	})
	b.OnItem(5, 1.0)
	b.OnItem(6, "N/A")
	b.OnItem(7, 3.0)
	f := b.OnEnd()

	assert.Equal(t, 1.0, f.Value(5))
	assert.Nil(t, f.Value(6))
	assert.Equal(t, 3.0, f.Value(7))
	assert.Nil(t, f.Value(0)) // before offset
	assert.Nil(t, f.Value(100))
	assert.Empty(t, f.Values(6))
	assert.Equal(t, []any{3.0}, f.Values(7))
	assert.False(t, f.RowHasValue(6, "N/A"))
	assert.True(t, f.RowHasValue(5, 1.0))
	assert.Equal(t, 5, f.FirstRowToken())
}

func TestMergeFieldDescriptors(t *testing.T) {
	base := NewDescriptor(TypeString, WithIdentifier("color"), WithDisplayName("Color"))
	override := NewDescriptor(TypeString, WithDisplayName("Favorite Color"))
	merged := Merge(base, override)
	assert.Equal(t, "color", merged.Identifier)
	assert.Equal(t, "Favorite Color", merged.DisplayName)
}

func TestDescriptorUnlimitedDisablesDistinctScanning(t *testing.T) {
	d := NewDescriptor(TypeString, WithUnlimitedValues())
	assert.True(t, d.Unlimited())
	assert.Greater(t, d.DistinctValueEstimate(), 1000)
}

type rowOfOne struct{ v string }

func (r rowOfOne) Values(row int) []any { return []any{r.v} }
