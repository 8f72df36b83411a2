// Package report renders the final schedule as fixed-width text for the
// notification step. The renderer does not filter: every recommendation it
// receives gets a section, so a vehicle whose oracle call degraded to an
// empty selection still shows up with a blank job table.
package report

import (
	"fmt"
	"strings"

	"github.com/jmertens/haulsched/core/model"
)

const tableHeader = "Job No. | Job’s Name                 | Material     | Address"

// Render produces the plain-text schedule, one section per recommendation
// in input order, rows numbered from 1.
func Render(recommendations []model.Recommendation) string {
	lines := []string{
		"=======================================",
		"Schedule:",
		"",
	}
	for _, rec := range recommendations {
		lines = append(lines,
			fmt.Sprintf("Truck: %s", rec.VehicleID),
			"Jobs for Tomorrow:",
			tableHeader,
		)
		for i, job := range rec.SelectedJobs {
			lines = append(lines, fmt.Sprintf("%-8d | %-25s | %-12s | %s",
				i+1, job.JobName, job.Material, job.Address))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
