package plan

import (
	"fmt"
	"time"

	"github.com/jmertens/haulsched/core/match"
	"github.com/jmertens/haulsched/core/prompt"
)

// Params gathers every scheduling constant in one place: the matcher's
// search bounds, the capacity figures quoted to the oracle, and the pacing
// of the oracle calls. Components receive their slice of it explicitly
// instead of reaching for scattered literals.
type Params struct {
	RadiusMiles      float64 `json:"radius_miles"`
	MaxCandidates    int     `json:"max_candidates"`
	CapacityYards    float64 `json:"capacity_yards"`
	LowQuantityYards float64 `json:"low_quantity_yards"`
	MinJobs          int     `json:"min_jobs"`
	MaxJobs          int     `json:"max_jobs"`
	// CooldownSeconds is the fixed wait after every oracle call. The
	// service is rate limited and its contract is undocumented, so the
	// calls stay sequential with this fixed spacing.
	CooldownSeconds float64 `json:"cooldown_seconds"`
}

// SetDefaults applies the production constants.
func (p *Params) SetDefaults() {
	if p.RadiusMiles == 0 {
		p.RadiusMiles = 40
	}
	if p.MaxCandidates == 0 {
		p.MaxCandidates = 10
	}
	if p.CapacityYards == 0 {
		p.CapacityYards = 40
	}
	if p.LowQuantityYards == 0 {
		p.LowQuantityYards = 10
	}
	if p.MinJobs == 0 {
		p.MinJobs = 2
	}
	if p.MaxJobs == 0 {
		p.MaxJobs = 3
	}
	if p.CooldownSeconds == 0 {
		p.CooldownSeconds = 2
	}
}

// Validate checks the parameter set is usable.
func (p Params) Validate() error {
	if p.RadiusMiles <= 0 {
		return fmt.Errorf("radius_miles must be positive")
	}
	if p.MaxCandidates <= 0 {
		return fmt.Errorf("max_candidates must be positive")
	}
	if p.CapacityYards <= 0 {
		return fmt.Errorf("capacity_yards must be positive")
	}
	if p.LowQuantityYards < 0 {
		return fmt.Errorf("low_quantity_yards must not be negative")
	}
	if p.MinJobs <= 0 || p.MaxJobs < p.MinJobs {
		return fmt.Errorf("job selection range %d-%d is invalid", p.MinJobs, p.MaxJobs)
	}
	if p.CooldownSeconds < 0 {
		return fmt.Errorf("cooldown_seconds must not be negative")
	}
	return nil
}

// Matcher builds the compatibility matcher for these parameters.
func (p Params) Matcher() match.Matcher {
	return match.Matcher{RadiusMiles: p.RadiusMiles, MaxCandidates: p.MaxCandidates}
}

// Synthesizer builds the payload synthesizer for these parameters.
func (p Params) Synthesizer() prompt.Synthesizer {
	return prompt.Synthesizer{
		CapacityYards:    p.CapacityYards,
		LowQuantityYards: p.LowQuantityYards,
		MinJobs:          p.MinJobs,
		MaxJobs:          p.MaxJobs,
		RadiusMiles:      p.RadiusMiles,
	}
}

// Cooldown returns the post-call wait as a duration.
func (p Params) Cooldown() time.Duration {
	return time.Duration(p.CooldownSeconds * float64(time.Second))
}
