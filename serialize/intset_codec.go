package serialize

import (
	"fmt"
	"strconv"

	"github.com/killzin666/ozone/intset"
)

// encodeIntSet picks the serialized shape matching s's concrete variant,
// falling back to the explicit "array" form for any variant this package
// doesn't recognize (still lossless — every IntSet can Each() its members).
func encodeIntSet(s intset.IntSet) IntSetMetaData {
	if s.Size() == 0 {
		return IntSetMetaData{Type: "empty"}
	}
	switch v := s.(type) {
	case intset.RangeIntSet:
		return IntSetMetaData{Type: "range", Min: v.Min(), Max: v.Max()}
	case intset.BitmapIntSet:
		words := v.Words()
		data := make([]int, len(words))
		for i, w := range words {
			data[i] = int(w)
		}
		tag := TypeTag{MainType: "bitmap", SubTypes: []string{"words"}, Hints: []string{fmt.Sprintf("offset=%d", v.WordOffset())}}
		return IntSetMetaData{Type: tag.String(), Data: data}
	default:
		var data []int
		s.Each(func(i int) { data = append(data, i) })
		return IntSetMetaData{Type: "array", Data: data}
	}
}

// decodeIntSet reverses encodeIntSet.
func decodeIntSet(m IntSetMetaData) (intset.IntSet, error) {
	switch m.Type {
	case "empty":
		return intset.Empty(), nil
	case "range":
		return intset.NewRangeIntSet(m.Min, m.Max-m.Min+1), nil
	case "array":
		return intset.NewSortedArrayIntSet(append([]int(nil), m.Data...)), nil
	default:
		tag := ParseTypeTag(m.Type)
		if tag.MainType != "bitmap" {
			return nil, fmt.Errorf("serialize: unknown IntSetMetaData type %q", m.Type)
		}
		offsetStr, ok := tag.Hint("offset")
		offset := 0
		if ok {
			n, err := strconv.Atoi(offsetStr)
			if err != nil {
				return nil, fmt.Errorf("serialize: bad bitmap offset hint in %q: %w", m.Type, err)
			}
			offset = n
		}
		words := make([]uint32, len(m.Data))
		for i, d := range m.Data {
			words[i] = uint32(d)
		}
		return intset.NewBitmapIntSet(words, offset), nil
	}
}
