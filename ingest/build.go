package ingest

import (
	"context"
	"fmt"

	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/store"
)

// defaultDistinctThreshold is the exact-counting ceiling spec §3 names:
// "distinct-value counts are exact when <=1000, otherwise reported as the
// unlimited sentinel" — also the default IndexedField/UnIndexedField
// cutoff when a column has no class override.
const defaultDistinctThreshold = 1000

// BuildParams configures both ingestion passes.
type BuildParams struct {
	// Fields declares one FieldSpec per column of interest. Columns
	// present in the source but absent here get a default string spec.
	Fields []FieldSpec
	// DistinctThreshold overrides defaultDistinctThreshold.
	DistinctThreshold int
	// Logger receives non-fatal per-row warnings. Defaults to NullLogger.
	Logger Logger
}

func (p BuildParams) threshold() int {
	if p.DistinctThreshold > 0 {
		return p.DistinctThreshold
	}
	return defaultDistinctThreshold
}

func (p BuildParams) logger() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NullLogger{}
}

// BuildRowStore runs the first ingestion pass: read every row from src,
// coerce each cell per its FieldSpec, and accumulate the row-oriented
// RowStore plus per-field range/frequency statistics (spec §4.H).
func BuildRowStore(ctx context.Context, src RowSource, params BuildParams) (*RowStore, error) {
	logger := params.logger()
	specsByID := map[string]FieldSpec{}
	for _, s := range params.Fields {
		specsByID[s.Identifier] = s
	}

	columns := src.Columns()
	order := append([]string(nil), columns...)
	fields := make(map[string]*RowStoreField, len(columns))
	for _, col := range columns {
		spec, ok := specsByID[col]
		if !ok {
			spec = defaultFieldSpec(col)
		}
		fields[col] = newRowStoreField(spec)
	}

	row := 0
	for {
		rawRow, ok, err := src.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("ingest: reading row %d: %w", row, err)
		}
		if !ok {
			break
		}
		for _, col := range columns {
			f := fields[col]
			raw, present := rawRow[col]
			if !present {
				continue
			}
			value, err := f.spec.convert(raw)
			if err != nil {
				logger.Printf("ingest: row %d column %q: %v, treating as null\n", row, col, err)
				value = nil
			}
			f.record(row, value)
		}
		row++
	}

	return &RowStore{Size: row, Order: order, Fields: fields}, nil
}

// BuildFromStore runs the second ingestion pass: for each field in rs,
// pick IndexedField or UnIndexedField based on its effective distinct-value
// estimate (or class override) and build the final column (spec §4.H:
// "buildFromStore(source, params) orchestrates the pipeline and, per
// field, picks IndexedField vs. UnIndexedField based on the effective
// distinctValueEstimate and the configured class override").
func BuildFromStore(rs *RowStore, params BuildParams) (*store.ColumnStore, error) {
	threshold := params.threshold()
	fields := make(map[string]field.Column, len(rs.Order))

	for _, id := range rs.Order {
		rsf := rs.Fields[id]
		spec := rsf.spec
		distinct := rsf.freq.DistinctCount()

		opts := []field.Option{field.WithIdentifier(id), field.WithDisplayName(spec.DisplayName)}
		if spec.TypeOfValue == field.TypeNumber {
			if r, ok := rsf.rangeCalc.OnEnd(); ok {
				opts = append(opts, field.WithRange(r))
			}
		}

		useIndexed := distinct <= threshold
		switch spec.Class {
		case ForceIndexed:
			useIndexed = true
		case ForceUnindexed:
			useIndexed = false
		}
		if !useIndexed {
			opts = append(opts, field.WithUnlimitedValues())
		} else {
			opts = append(opts, field.WithDistinctValues(distinct))
		}
		descriptor := field.NewDescriptor(spec.TypeOfValue, opts...)

		if useIndexed {
			b := field.NewIndexedFieldBuilder(descriptor, field.IndexedFieldParams{})
			for row := 0; row < rs.Size; row++ {
				b.OnRow(row, rsf)
			}
			fields[id] = b.OnEnd()
			continue
		}

		b := field.NewUnIndexedFieldBuilder(descriptor, field.UnIndexedFieldParams{NullValues: spec.NullValues})
		if start, ok := rsf.firstValueRow(); ok {
			for row := start; row < rs.Size; row++ {
				b.OnItem(row, rsf.Value(row))
			}
		}
		fields[id] = b.OnEnd()
	}

	return store.NewColumnStore(rs.Size, rs.Order, fields), nil
}

// Build drives src through both ingestion passes and returns the finished
// ColumnStore, the top-level entry point spec §4.H describes.
func Build(ctx context.Context, src RowSource, params BuildParams) (*store.ColumnStore, error) {
	rs, err := BuildRowStore(ctx, src, params)
	if err != nil {
		return nil, err
	}
	return BuildFromStore(rs, params)
}
