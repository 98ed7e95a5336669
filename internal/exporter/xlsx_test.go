package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, WriteXLSX(path, sampleGroups()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"working", "sex", "age", "primaryNeeds", "work", "other"}, rows[0])
	assert.Equal(t, "not working", rows[1][0])
	assert.Equal(t, "working", rows[2][0])

	work, err := f.GetCellValue(summarySheet, "E3")
	require.NoError(t, err)
	assert.Equal(t, "7.5", work)
}

func TestWriteXLSXCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.xlsx")
	require.NoError(t, WriteXLSX(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
