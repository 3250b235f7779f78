package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// CSVReader tokenizes UTF-8 CSV text into rows (spec §6): the first row
// sets column names, subsequent rows parse into a mapping from column
// name to string. Delimiter and quote are configurable; a doubled quote
// inside a quoted field is an escaped literal quote, and newlines inside
// quoted fields are supported.
type CSVReader struct {
	delimiter byte
	quote     byte

	r        *bufio.Reader
	columns  []string
	rowIndex int
}

// CSVOption configures a CSVReader.
type CSVOption func(*CSVReader)

// WithDelimiter overrides the default ',' field delimiter.
func WithDelimiter(d byte) CSVOption { return func(c *CSVReader) { c.delimiter = d } }

// WithQuote overrides the default '"' quote character.
func WithQuote(q byte) CSVOption { return func(c *CSVReader) { c.quote = q } }

// NewCSVReader wraps r, reading the header row immediately so Columns()
// is available before the first Next() call.
func NewCSVReader(r io.Reader, opts ...CSVOption) (*CSVReader, error) {
	c := &CSVReader{delimiter: ',', quote: '"', r: bufio.NewReader(r)}
	for _, opt := range opts {
		opt(c)
	}
	header, err := c.readRecord()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading CSV header: %w", err)
	}
	c.columns = header
	return c, nil
}

// Columns returns the header row's column names.
func (c *CSVReader) Columns() []string { return c.columns }

// Next returns the next data row as a column-name -> string mapping, with
// row-id assigned by arrival order (spec §3: row-ids are inferred from
// arrival order, dense in [0, size)).
func (c *CSVReader) Next(_ context.Context) (map[string]string, bool, error) {
	record, err := c.readRecord()
	if err == io.EOF {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	row := make(map[string]string, len(c.columns))
	for i, col := range c.columns {
		if i < len(record) {
			row[col] = record[i]
		} else {
			row[col] = ""
		}
	}
	c.rowIndex++
	return row, true, nil
}

// Close is a no-op: CSVReader does not own r.
func (c *CSVReader) Close() error { return nil }

// readRecord reads one logical CSV record, honoring quoting and embedded
// newlines.
func (c *CSVReader) readRecord() ([]string, error) {
	var fields []string
	var field []byte
	inQuotes := false
	sawAny := false

	for {
		b, err := c.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				if !sawAny && len(fields) == 0 && len(field) == 0 {
					return nil, io.EOF
				}
				fields = append(fields, string(field))
				return fields, nil
			}
			return nil, err
		}
		sawAny = true

		switch {
		case inQuotes:
			if b == c.quote {
				next, err := c.r.ReadByte()
				if err == nil && next == c.quote {
					field = append(field, c.quote)
					continue
				}
				if err == nil {
					c.r.UnreadByte()
				}
				inQuotes = false
				continue
			}
			field = append(field, b)
		case b == c.quote && len(field) == 0:
			inQuotes = true
		case b == c.delimiter:
			fields = append(fields, string(field))
			field = nil
		case b == '\n':
			if len(field) > 0 && field[len(field)-1] == '\r' {
				field = field[:len(field)-1]
			}
			fields = append(fields, string(field))
			return fields, nil
		default:
			field = append(field, b)
		}
	}
}
