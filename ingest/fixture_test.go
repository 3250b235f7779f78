package ingest

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

// csvFixtureCase is a golden-file ingestion scenario, in the same spirit
// as the teacher's testutil.TestCase: a map of named cases decoded from
// YAML and run table-driven.
type csvFixtureCase struct {
	CSV                string         `yaml:"csv"`
	ExpectedSize       int            `yaml:"expected_size"`
	PartitionField     string         `yaml:"partition_field"`
	ExpectedPartitions map[string]int `yaml:"expected_partitions"`
}

func readCSVFixtures(t *testing.T, path string) map[string]csvFixtureCase {
	t.Helper()
	buf, err := os.ReadFile(path)
	require.NoError(t, err)

	var cases map[string]csvFixtureCase
	require.NoError(t, yaml.Unmarshal(buf, &cases))
	return cases
}

func TestCSVFixtures(t *testing.T) {
	cases := readCSVFixtures(t, "testdata/csv_fixtures.yml")
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			reader, err := NewCSVReader(strings.NewReader(tc.CSV))
			require.NoError(t, err)

			s, err := Build(context.Background(), reader, BuildParams{})
			require.NoError(t, err)
			require.Equal(t, tc.ExpectedSize, s.Size())

			if tc.PartitionField == "" {
				return
			}
			parts, err := s.Partition(tc.PartitionField)
			require.NoError(t, err)
			require.Len(t, parts, len(tc.ExpectedPartitions))
			for value, count := range tc.ExpectedPartitions {
				require.Contains(t, parts, value)
				require.Equal(t, count, parts[value].Size())
			}
		})
	}
}
