package serialize

import (
	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/store"
)

// WriteStore converts s into its serialized shape.
func WriteStore(s *store.ColumnStore) (StoreData, error) {
	data := StoreData{Size: s.Size()}
	for _, col := range s.Fields() {
		d := col.Descriptor()
		fm := FieldMetaData{
			Identifier:            d.Identifier,
			DisplayName:           d.DisplayName,
			TypeOfValue:           string(d.TypeOfValue),
			DistinctValueEstimate: d.DistinctValueEstimate(),
			TypeConstructorName:   d.TypeConstructorName,
		}
		if d.PrecomputedRange != nil {
			fm.Range = &RangeData{
				Min:         d.PrecomputedRange.Min,
				Max:         d.PrecomputedRange.Max,
				IntegerOnly: d.PrecomputedRange.IntegerOnly,
			}
		}

		switch f := col.(type) {
		case field.IndexedField:
			fm.Type = "indexed"
			for _, v := range f.AllValues() {
				fm.Values = append(fm.Values, ValueEntry{Value: v, Data: encodeIntSet(f.IntSetForValue(v))})
			}
		case field.UnIndexedField:
			fm.Type = "unindexed"
			fm.Offset = f.FirstRowToken()
			fm.DataArray = f.DataArray()
		default:
			fm.Type = "unindexed"
		}

		data.Fields = append(data.Fields, fm)
	}
	return data, nil
}
