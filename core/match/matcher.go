// Package match filters the job table down to a ranked candidate list for a
// single vehicle: jobs within the search radius whose material is compatible
// with whatever the truck is carrying.
package match

import (
	"math"
	"sort"

	"github.com/jmertens/haulsched/core/model"
)

// Matcher holds the filter bounds. Values come from plan.Params; the zero
// value matches nothing.
type Matcher struct {
	RadiusMiles   float64
	MaxCandidates int
}

// Match returns the candidate list for one vehicle, ascending by distance,
// truncated to MaxCandidates. An empty truck is compatible with any
// material; a loaded truck only with jobs requiring the same material.
// Vehicles without a position never match. Distance ties keep the job
// table's original order.
func (m Matcher) Match(v model.Vehicle, jobs []model.Job) []model.Candidate {
	if v.Position == nil {
		return nil
	}
	var candidates []model.Candidate
	for _, j := range jobs {
		d := Distance(*v.Position, j.Position)
		if d > m.RadiusMiles {
			continue
		}
		if !v.Empty() && j.Material != v.Material {
			continue
		}
		candidates = append(candidates, model.Candidate{
			Job:           j,
			DistanceMiles: math.Round(d*100) / 100,
		})
	}
	sort.SliceStable(candidates, func(i, k int) bool {
		return candidates[i].DistanceMiles < candidates[k].DistanceMiles
	})
	if len(candidates) > m.MaxCandidates {
		candidates = candidates[:m.MaxCandidates]
	}
	return candidates
}
