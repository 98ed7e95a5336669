package exporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, RenderTable(&buf, sampleGroups()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	header := strings.Fields(lines[0])
	assert.Equal(t, []string{"working", "sex", "age", "primaryNeeds", "work", "other"}, header)

	// rows come out in input order with formatted hour values
	assert.Contains(t, lines[1], "not working")
	assert.Contains(t, lines[1], "11.0")
	assert.Contains(t, lines[2], "7.5")
}

func TestRenderTableEmptyReport(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, RenderTable(&buf, nil))

	// header only
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
}
