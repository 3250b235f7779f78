package ingest

import "context"

// RowSource is the row-oriented input boundary spec §6 describes: a
// one-shot, forward-only stream of rows keyed by column name, with row-id
// inferred from arrival order. CSVReader satisfies it directly; the
// rowsource package's SQL-backed adapters satisfy it too, so either can
// feed Build.
type RowSource interface {
	Columns() []string
	Next(ctx context.Context) (row map[string]string, ok bool, err error)
	Close() error
}
