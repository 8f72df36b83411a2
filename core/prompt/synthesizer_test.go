package prompt

import (
	"regexp"
	"strings"
	"testing"

	"github.com/jmertens/haulsched/core/model"
)

func testSynthesizer() Synthesizer {
	return Synthesizer{
		CapacityYards:    40,
		LowQuantityYards: 10,
		MinJobs:          2,
		MaxJobs:          3,
		RadiusMiles:      40,
	}
}

func testVehicle() model.Vehicle {
	return model.Vehicle{
		ID:                "204",
		Position:          &model.Coordinates{Latitude: 34.0, Longitude: -84.4},
		Address:           "100 Depot Rd",
		Material:          "Mulch-A",
		QuantityRemaining: 5,
	}
}

func testCandidates() []model.Candidate {
	return []model.Candidate{
		{Job: model.Job{Name: "Northside Beds", Material: "Mulch-A", BidQuantity: 20, NightAccess: true}, DistanceMiles: 10.25},
		{Job: model.Job{Name: "Riverwalk", Material: "Mulch-A", BidQuantity: 35}, DistanceMiles: 22.4},
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	s := testSynthesizer()
	a := s.Synthesize(testVehicle(), testCandidates())
	b := s.Synthesize(testVehicle(), testCandidates())
	if a != b {
		t.Fatalf("payload not deterministic")
	}
}

func TestSynthesizeContent(t *testing.T) {
	s := testSynthesizer()
	got := s.Synthesize(testVehicle(), testCandidates())

	for _, want := range []string{
		"Truck ID: 204",
		"Location: 100 Depot Rd (34, -84.4)",
		"Material on board: Mulch-A",
		"Quantity left on truck: 5 yards",
		"Truck max capacity: 40 yards",
		"Here are 2 nearby jobs to choose from:",
		"1. Northside Beds — Material: Mulch-A, Bid Qty: 20 yards, Distance: 10.25 miles, Night Access: Yes",
		"2. Riverwalk — Material: Mulch-A, Bid Qty: 35 yards, Distance: 22.4 miles, Night Access: No",
		"1. Select 2–3 jobs from the list for this truck to perform tomorrow.",
		"2. If truck is empty or has less than 10 yards left, ask to fill up with 40 yards of mulch.",
		"4. Only pick jobs within 40 miles.",
		`"truck": "204"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("payload missing %q:\n%s", want, got)
		}
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("payload must not end with a newline")
	}
}

func TestSynthesizeEmptyTruckMarker(t *testing.T) {
	v := testVehicle()
	v.Material = ""
	v.QuantityRemaining = 0
	got := testSynthesizer().Synthesize(v, testCandidates())
	if !strings.Contains(got, "Material on board: None (empty)") {
		t.Fatalf("empty truck marker missing:\n%s", got)
	}
}

var jobLine = regexp.MustCompile(`(?m)^\d+\. (.+?) — Material:`)

func TestSynthesizeJobListRoundTrip(t *testing.T) {
	cands := testCandidates()
	got := testSynthesizer().Synthesize(testVehicle(), cands)

	matches := jobLine.FindAllStringSubmatch(got, -1)
	if len(matches) != len(cands) {
		t.Fatalf("expected %d job lines, found %d", len(cands), len(matches))
	}
	for i, m := range matches {
		if m[1] != cands[i].Name {
			t.Fatalf("job %d: got %q want %q", i, m[1], cands[i].Name)
		}
	}
}
