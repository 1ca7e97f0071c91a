// Package report renders sweep results for the terminal and for export.
// It only ever reads the ScenarioResult contract and summaries derived
// from it; nothing here recomputes core numbers.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/epiforge/vectorsim/internal/analysis"
)

// Table writes the per-scenario summary as an aligned text table.
func Table(w io.Writer, summaries []analysis.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "P\tBITING\tR0\tPEAK_IH\tPEAK_DAY\tIH_DAYS\tIV_DAYS\tTOTAL_INF\tATTACK")

	for _, s := range summaries {
		fmt.Fprintf(tw, "%.2f\t%.4f\t%.2f\t%.1f\t%.0f\t%.1f\t%.1f\t%.1f\t%.4f\n",
			s.ScenarioValue,
			s.BitingRate,
			s.R0,
			s.PeakInfectedHumans,
			s.PeakDay,
			s.InfectedHumanDays,
			s.InfectedVectorDays,
			s.TotalInfected,
			s.AttackRate,
		)
	}

	return tw.Flush()
}
