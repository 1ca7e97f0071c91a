package report

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/epiforge/vectorsim/internal/sweep"
)

var compartmentNames = []string{
	"susceptible humans",
	"infected humans",
	"recovered humans",
	"susceptible vectors",
	"infected vectors",
}

// Plot renders one compartment's time series for every scenario as stacked
// ASCII charts.
func Plot(results []sweep.Result, component, width, height int) string {
	var b strings.Builder

	name := fmt.Sprintf("x%d", component)
	if component >= 0 && component < len(compartmentNames) {
		name = compartmentNames[component]
	}

	for _, r := range results {
		caption := fmt.Sprintf("%s, p=%.2f", name, r.Scenario.Value)
		graph := asciigraph.Plot(r.Trajectory.Series(component),
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}

	return b.String()
}
