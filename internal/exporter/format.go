package exporter

import (
	"fmt"

	"atuscli/internal/timeusage"
)

// reportHeaders is the fixed column order of the grouped report
var reportHeaders = []string{"working", "sex", "age", "primaryNeeds", "work", "other"}

// formatHours formats a group-average hour value with exactly 1 decimal
// place so values like 9 render as 9.0.
func formatHours(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

// reportRecord converts one group average into its string cells in
// report column order.
func reportRecord(g timeusage.GroupAverage) []string {
	return []string{
		g.Working,
		g.Sex,
		g.Age,
		formatHours(g.PrimaryNeeds),
		formatHours(g.Work),
		formatHours(g.Other),
	}
}
