package timeusage

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/require"

	"atuscli/internal/config"
)

// testFrame builds a Frame from inline CSV data using the default ATUS
// schema, bypassing the filesystem.
func testFrame(t *testing.T, csvData string) *Frame {
	t.Helper()

	schema := config.Default().Survey
	df := dataframe.ReadCSV(strings.NewReader(csvData),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.WithTypes(map[string]series.Type{
			schema.IDColumn: series.String,
		}),
	)
	require.NoError(t, df.Error())

	return &Frame{Columns: df.Names(), Data: df, Schema: schema}
}
