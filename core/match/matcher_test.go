package match

import (
	"fmt"
	"math"
	"testing"

	"github.com/jmertens/haulsched/core/model"
)

var base = model.Coordinates{Latitude: 34.00, Longitude: -84.40}

// jobAt places a job the given number of miles due north of base.
func jobAt(name, material string, miles float64) model.Job {
	degPerMile := 180 / (earthRadiusMiles * math.Pi)
	return model.Job{
		Name:     name,
		Material: material,
		Position: model.Coordinates{Latitude: base.Latitude + miles*degPerMile, Longitude: base.Longitude},
	}
}

func truck(material string, qty float64) model.Vehicle {
	pos := base
	return model.Vehicle{ID: "204", Position: &pos, Material: material, QuantityRemaining: qty}
}

func TestMatchLoadedTruckFiltersByMaterial(t *testing.T) {
	m := Matcher{RadiusMiles: 40, MaxCandidates: 10}
	jobs := []model.Job{
		jobAt("Job X", "Mulch-A", 10),
		jobAt("Job Y", "Mulch-B", 35),
	}
	got := m.Match(truck("Mulch-A", 5.0), jobs)
	if len(got) != 1 || got[0].Name != "Job X" {
		t.Fatalf("expected only Job X, got %#v", got)
	}
}

func TestMatchEmptyTruckFiltersByDistanceOnly(t *testing.T) {
	m := Matcher{RadiusMiles: 40, MaxCandidates: 10}
	jobs := []model.Job{
		jobAt("Near", "Pine", 5),
		jobAt("Far", "Cedar", 41),
		jobAt("Edge", "Hardwood", 39),
	}
	got := m.Match(truck("", 0), jobs)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Name != "Near" || got[1].Name != "Edge" {
		t.Fatalf("wrong order: %s, %s", got[0].Name, got[1].Name)
	}
	if got[0].DistanceMiles > got[1].DistanceMiles {
		t.Fatalf("not sorted ascending")
	}
}

func TestMatchSortedAndCapped(t *testing.T) {
	m := Matcher{RadiusMiles: 40, MaxCandidates: 10}
	var jobs []model.Job
	for i := 0; i < 15; i++ {
		jobs = append(jobs, jobAt(fmt.Sprintf("j%d", i), "Pine", float64(30-i)))
	}
	got := m.Match(truck("", 0), jobs)
	if len(got) != 10 {
		t.Fatalf("expected cap of 10, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].DistanceMiles > got[i].DistanceMiles {
			t.Fatalf("not sorted at %d", i)
		}
	}
}

func TestMatchTiesKeepJobOrder(t *testing.T) {
	m := Matcher{RadiusMiles: 40, MaxCandidates: 10}
	jobs := []model.Job{
		jobAt("first", "Pine", 12),
		jobAt("second", "Pine", 12),
	}
	got := m.Match(truck("", 0), jobs)
	if len(got) != 2 || got[0].Name != "first" || got[1].Name != "second" {
		t.Fatalf("tie order not stable: %#v", got)
	}
}

func TestMatchNoPosition(t *testing.T) {
	m := Matcher{RadiusMiles: 40, MaxCandidates: 10}
	v := model.Vehicle{ID: "219"}
	if got := m.Match(v, []model.Job{jobAt("any", "Pine", 1)}); got != nil {
		t.Fatalf("vehicle without position must not match, got %#v", got)
	}
}

func TestMatchDistanceRounded(t *testing.T) {
	m := Matcher{RadiusMiles: 40, MaxCandidates: 10}
	got := m.Match(truck("", 0), []model.Job{jobAt("j", "Pine", 10.123456)})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate")
	}
	d := got[0].DistanceMiles
	if d != math.Round(d*100)/100 {
		t.Fatalf("distance not rounded to 2 decimals: %v", d)
	}
}
