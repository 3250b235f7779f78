package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllRows(t *testing.T, r *CSVReader) []map[string]string {
	t.Helper()
	var rows []map[string]string
	for {
		row, ok, err := r.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	return rows
}

func TestCSVBasic(t *testing.T) {
	r, err := NewCSVReader(strings.NewReader("color,size\nred,1\nblue,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"color", "size"}, r.Columns())
	rows := readAllRows(t, r)
	require.Len(t, rows, 2)
	assert.Equal(t, "red", rows[0]["color"])
	assert.Equal(t, "2", rows[1]["size"])
}

func TestCSVQuotedFieldWithEmbeddedComma(t *testing.T) {
	r, err := NewCSVReader(strings.NewReader(`name,note` + "\n" + `alice,"hello, world"` + "\n"))
	require.NoError(t, err)
	rows := readAllRows(t, r)
	require.Len(t, rows, 1)
	assert.Equal(t, "hello, world", rows[0]["note"])
}

func TestCSVDoubledQuoteEscaping(t *testing.T) {
	r, err := NewCSVReader(strings.NewReader(`name` + "\n" + `"say ""hi"""` + "\n"))
	require.NoError(t, err)
	rows := readAllRows(t, r)
	require.Len(t, rows, 1)
	assert.Equal(t, `say "hi"`, rows[0]["name"])
}

func TestCSVEmbeddedNewlineInQuotedField(t *testing.T) {
	r, err := NewCSVReader(strings.NewReader("name\n\"line1\nline2\"\n"))
	require.NoError(t, err)
	rows := readAllRows(t, r)
	require.Len(t, rows, 1)
	assert.Equal(t, "line1\nline2", rows[0]["name"])
}

func TestCSVNoTrailingNewlineAtEOF(t *testing.T) {
	r, err := NewCSVReader(strings.NewReader("a,b\n1,2"))
	require.NoError(t, err)
	rows := readAllRows(t, r)
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0]["b"])
}

func TestCSVCRLFLineEndings(t *testing.T) {
	r, err := NewCSVReader(strings.NewReader("a,b\r\n1,2\r\n"))
	require.NoError(t, err)
	rows := readAllRows(t, r)
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0]["b"])
}

func TestCSVMissingTrailingColumnsFillEmpty(t *testing.T) {
	r, err := NewCSVReader(strings.NewReader("a,b,c\n1,2\n"))
	require.NoError(t, err)
	rows := readAllRows(t, r)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["c"])
}

func TestCSVCustomDelimiter(t *testing.T) {
	r, err := NewCSVReader(strings.NewReader("a;b\n1;2\n"), WithDelimiter(';'))
	require.NoError(t, err)
	rows := readAllRows(t, r)
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0]["b"])
}

func TestCSVEmptyInputErrorsOnHeader(t *testing.T) {
	_, err := NewCSVReader(strings.NewReader(""))
	assert.Error(t, err)
}
