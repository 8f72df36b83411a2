package fleet

import (
	"strconv"
	"strings"

	"github.com/jmertens/haulsched/core/model"
)

// load is a vehicle's current material state derived from its job history.
type load struct {
	material string
	quantity float64
}

// Vehicles builds the canonical vehicle table from the telemetry and
// job-history feeds. Telemetry entries whose status code is not the success
// code are dropped; surviving vehicles are merged with the material state
// derived from their most recent production-review rows.
func Vehicles(telemetry []TelemetrySnapshot, history []HistoryGroup) []model.Vehicle {
	loads := materialLoads(history)
	vehicles := make([]model.Vehicle, 0, len(telemetry))
	for _, t := range telemetry {
		if t.StatusCode != telemetryStatusOK {
			continue
		}
		val := t.ContentResource.Value
		v := model.Vehicle{
			ID:            t.VehicleNumber,
			Position:      &model.Coordinates{Latitude: val.Latitude, Longitude: val.Longitude},
			Address:       val.Address.AddressLine1,
			Locality:      val.Address.Locality,
			DisplayStatus: val.DisplayState,
		}
		if l, ok := loads[t.VehicleNumber]; ok {
			v.Material = l.material
			v.QuantityRemaining = l.quantity
		}
		vehicles = append(vehicles, v)
	}
	return vehicles
}

// materialLoads scans each vehicle's production-review history newest-first
// and keeps the first row whose "Quantity Left on Truck" is present and not
// a zero-valued string. The most recent nonzero remainder is the
// authoritative statement of what is still physically on the truck; once a
// row reports zero the truck is empty and the scan stops without looking at
// older rows.
func materialLoads(history []HistoryGroup) map[string]load {
	loads := make(map[string]load)
	for _, g := range history {
		if g.Group != productionReviewGroup {
			continue
		}
		for i := len(g.Data) - 1; i >= 0; i-- {
			entry := g.Data[i]
			qty := string(entry.QuantityLeft)
			if zeroQuantity(qty) {
				break
			}
			v, err := strconv.ParseFloat(qty, 64)
			if err != nil {
				// Unreadable remainder: treat the row as absent and keep
				// scanning older entries.
				continue
			}
			loads[g.Vehicle] = load{material: strings.TrimSpace(entry.Material), quantity: v}
			break
		}
	}
	return loads
}

// zeroQuantity matches the exact zero-valued strings the feed produces for
// an empty truck. "0.00" and friends intentionally do not match; the feed
// never writes them and the literal list is the documented contract.
func zeroQuantity(s string) bool {
	return s == "" || s == "0" || s == "0.0"
}

// Jobs builds the canonical job table from the board feed. String fields are
// trimmed, missing numerics default to zero, and any listing without both
// coordinates is dropped because it can never be matched.
func Jobs(board JobBoard) []model.Job {
	jobs := make([]model.Job, 0, len(board.Jobs))
	for _, l := range board.Jobs {
		if l.Latitude == nil || l.Longitude == nil {
			continue
		}
		jobs = append(jobs, model.Job{
			Name:        strings.TrimSpace(l.Name),
			Client:      strings.TrimSpace(l.Client),
			Status:      strings.TrimSpace(l.Status),
			Material:    strings.TrimSpace(l.Material),
			JobType:     strings.TrimSpace(l.JobType),
			Address:     strings.TrimSpace(l.Address),
			BidQuantity: float64(l.BidQty),
			Position:    model.Coordinates{Latitude: *l.Latitude, Longitude: *l.Longitude},
			NightAccess: strings.ToLower(string(l.Night)) == "yes",
		})
	}
	return jobs
}
