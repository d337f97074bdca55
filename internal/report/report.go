// Package report renders clearance results into a fixed text layout.
// The template, including its trailing spaces, is load bearing:
// downstream tooling diffs these files.
package report

import (
	"fmt"
	"strings"

	"github.com/RMahshie/linkplan/pkg/models"
)

// Render produces the report body for a clearance result. All values
// are formatted to 4 decimal places; gap lines preserve obstruction
// input order.
func Render(res *models.ClearanceResult) string {
	var b strings.Builder

	b.WriteString("solution is feasible for LOS\n")
	fmt.Fprintf(&b, "Antenna A height for LOS = %.4f\n", res.LOSHeightA)
	fmt.Fprintf(&b, "Antenna B height for LOS = %.4f\n", res.LOSHeightB)
	writeGaps(&b, res.LOSGaps)

	b.WriteString("solution is feasible for nearLOS\n")
	fmt.Fprintf(&b, "Antenna A height for NLOS = %.4f\n", res.NLOSHeightA)
	fmt.Fprintf(&b, "Antenna B height for NLOS = %.4f\n", res.NLOSHeightB)
	writeGaps(&b, res.NLOSGaps)

	return b.String()
}

func writeGaps(b *strings.Builder, gaps []float64) {
	b.WriteString("GAP for each building \n")
	for _, g := range gaps {
		fmt.Fprintf(b, "%.4f ", g)
	}
	b.WriteString("\n")
}
