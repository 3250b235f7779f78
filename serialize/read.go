package serialize

import (
	"fmt"

	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/intset"
	"github.com/killzin666/ozone/store"
)

// ReadStore reconstructs a ColumnStore from its serialized shape. Malformed
// metadata is rejected immediately with a descriptive error; no store is
// partially constructed (spec §7: "reject malformed metadata immediately
// with a fatal, descriptive error; do not partially construct a store").
func ReadStore(data StoreData) (*store.ColumnStore, error) {
	order := make([]string, 0, len(data.Fields))
	fields := make(map[string]field.Column, len(data.Fields))

	for _, fm := range data.Fields {
		if fm.Identifier == "" {
			return nil, fmt.Errorf("serialize: field metadata missing identifier")
		}
		opts := []field.Option{
			field.WithIdentifier(fm.Identifier),
			field.WithDisplayName(fm.DisplayName),
		}
		if fm.Range != nil {
			opts = append(opts, field.WithRange(field.Range{
				Min:         fm.Range.Min,
				Max:         fm.Range.Max,
				IntegerOnly: fm.Range.IntegerOnly,
			}))
		}
		if fm.TypeConstructorName != "" {
			opts = append(opts, field.WithTypeConstructorName(fm.TypeConstructorName))
		}
		if fm.DistinctValueEstimate >= field.UnlimitedEstimate {
			opts = append(opts, field.WithUnlimitedValues())
		} else {
			opts = append(opts, field.WithDistinctValues(fm.DistinctValueEstimate))
		}
		descriptor := field.NewDescriptor(field.ValueType(fm.TypeOfValue), opts...)

		switch fm.Type {
		case "indexed":
			valueOrder := make([]string, 0, len(fm.Values))
			display := make(map[string]any, len(fm.Values))
			sets := make(map[string]intset.IntSet, len(fm.Values))
			for _, ve := range fm.Values {
				key := field.StringKey(ve.Value)
				s, err := decodeIntSet(ve.Data)
				if err != nil {
					return nil, fmt.Errorf("serialize: field %q value %v: %w", fm.Identifier, ve.Value, err)
				}
				valueOrder = append(valueOrder, key)
				display[key] = ve.Value
				sets[key] = s
			}
			fields[fm.Identifier] = field.NewIndexedField(descriptor, valueOrder, display, sets)
		case "unindexed":
			fields[fm.Identifier] = field.NewUnIndexedField(descriptor, append([]any(nil), fm.DataArray...), fm.Offset, nil)
		default:
			return nil, fmt.Errorf("serialize: field %q has unknown type %q", fm.Identifier, fm.Type)
		}
		order = append(order, fm.Identifier)
	}

	return store.NewColumnStore(data.Size, order, fields), nil
}
