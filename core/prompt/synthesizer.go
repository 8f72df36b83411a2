// Package prompt renders a vehicle and its candidate list into the textual
// instruction payload sent to the scheduling oracle. Output is pure
// templating: the same vehicle and candidates always produce byte-identical
// text, which is what makes the payload auditable and testable.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmertens/haulsched/core/model"
)

// Synthesizer holds the scheduling constants quoted in the instruction
// block. Values come from plan.Params.
type Synthesizer struct {
	CapacityYards    float64
	LowQuantityYards float64
	MinJobs          int
	MaxJobs          int
	RadiusMiles      float64
}

// Synthesize produces the oracle payload for one vehicle. The candidate
// list is rendered in ranked order; the instruction block asks for the
// reply in the fixed JSON schema the oracle client parses.
func (s Synthesizer) Synthesize(v model.Vehicle, candidates []model.Candidate) string {
	material := v.Material
	if material == "" {
		material = "None (empty)"
	}
	var lat, lon float64
	if v.Position != nil {
		lat, lon = v.Position.Latitude, v.Position.Longitude
	}

	var b strings.Builder
	b.WriteString("You are a scheduling assistant for mulch delivery trucks.\n\n")
	fmt.Fprintf(&b, "Truck ID: %s\n", v.ID)
	fmt.Fprintf(&b, "Location: %s (%s, %s)\n", v.Address, num(lat), num(lon))
	fmt.Fprintf(&b, "Material on board: %s\n", material)
	fmt.Fprintf(&b, "Quantity left on truck: %s yards\n", num(v.QuantityRemaining))
	fmt.Fprintf(&b, "Truck max capacity: %s yards\n\n", num(s.CapacityYards))

	fmt.Fprintf(&b, "Here are %d nearby jobs to choose from:\n", len(candidates))
	for i, c := range candidates {
		night := "No"
		if c.NightAccess {
			night = "Yes"
		}
		fmt.Fprintf(&b, "%d. %s — Material: %s, Bid Qty: %s yards, Distance: %s miles, Night Access: %s\n",
			i+1, c.Name, c.Material, num(c.BidQuantity), num(c.DistanceMiles), night)
	}

	b.WriteString("\nInstructions:\n")
	fmt.Fprintf(&b, "1. Select %d–%d jobs from the list for this truck to perform tomorrow.\n", s.MinJobs, s.MaxJobs)
	fmt.Fprintf(&b, "2. If truck is empty or has less than %s yards left, ask to fill up with %s yards of mulch.\n",
		num(s.LowQuantityYards), num(s.CapacityYards))
	b.WriteString("3. Prefer jobs with night access first (can start at 5 AM), otherwise default start is 7 AM.\n")
	fmt.Fprintf(&b, "4. Only pick jobs within %s miles.\n", num(s.RadiusMiles))
	b.WriteString("5. Return your recommendation in JSON format like this:\n\n")

	fmt.Fprintf(&b, `{
  "truck": %q,
  "recommended_jobs": [
    {
      "job_name": "Job Name",
      "material": "Material",
      "bid_qty": 20,
      "start_time": "5:00 AM",
      "address": "Full address"
    }
  ]
}`, v.ID)

	return b.String()
}

// num formats a float the shortest way that round-trips.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
