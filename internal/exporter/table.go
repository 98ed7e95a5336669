package exporter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"atuscli/internal/timeusage"
)

// RenderTable writes the grouped report as an aligned text table. Only
// the row set, columns, and order are contractual; the rendering is for
// human eyes.
func RenderTable(w io.Writer, groups []timeusage.GroupAverage) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if err := writeRow(tw, reportHeaders); err != nil {
		return err
	}
	for _, g := range groups {
		if err := writeRow(tw, reportRecord(g)); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\t"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, cell); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
