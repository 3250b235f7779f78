package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/killzin666/ozone/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestOpenSourceCSV(t *testing.T) {
	path := writeTempCSV(t, "color,size\nred,1\nblue,2\n")
	src, err := openSource(context.Background(), &options{CSV: path})
	require.NoError(t, err)
	defer src.Close()
	assert.Equal(t, []string{"color", "size"}, src.Columns())
}

func TestOpenSourceUnknownDriverErrors(t *testing.T) {
	_, err := openSource(context.Background(), &options{Driver: "oracle"})
	assert.Error(t, err)
}

func TestPrintFilterRejectsMalformedExpression(t *testing.T) {
	path := writeTempCSV(t, "color\nred\n")
	src, err := openSource(context.Background(), &options{CSV: path})
	require.NoError(t, err)
	defer src.Close()
	s, err := ingest.Build(context.Background(), src, ingest.BuildParams{})
	require.NoError(t, err)

	err = printFilter(s, "color-red")
	assert.Error(t, err)
}

func TestPrintPartitionRejectsUnknownField(t *testing.T) {
	path := writeTempCSV(t, "color\nred\n")
	src, err := openSource(context.Background(), &options{CSV: path})
	require.NoError(t, err)
	defer src.Close()
	s, err := ingest.Build(context.Background(), src, ingest.BuildParams{})
	require.NoError(t, err)

	err = printPartition(s, "nope")
	assert.Error(t, err)
}
