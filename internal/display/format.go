package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/backmassage/solidname/internal/naming"
)

// FormatMM returns a length in millimetres (e.g. "1.60 mm").
func FormatMM(v float64) string {
	return fmt.Sprintf("%.2f mm", v)
}

// FormatArea returns an area in square millimetres, one decimal.
func FormatArea(v float64) string {
	return fmt.Sprintf("%.1f mm²", v)
}

// FormatVolume returns a volume in cubic millimetres, switching to cm³
// above 1000 mm³.
func FormatVolume(v float64) string {
	if v >= 1000 {
		return fmt.Sprintf("%.2f cm³", v/1000)
	}
	return fmt.Sprintf("%.1f mm³", v)
}

// WriteAssignments prints one row per assignment: current id, new name,
// source, rank, and the record's thickness and planform when known.
func WriteAssignments(w io.Writer, as []naming.Assignment) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSOURCE\tRANK\tTHICKNESS\tAREA")
	for _, a := range as {
		thick, area := "-", "-"
		if a.Record != nil && !a.Record.Degraded {
			thick = FormatMM(a.Record.Thickness())
			area = FormatArea(a.Record.PlanformArea())
		}
		name := a.Name
		if a.Unchanged() {
			name = "="
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", a.ID, name, a.Label(), a.Rank, thick, area)
	}
	return tw.Flush()
}
