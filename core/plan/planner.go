// Package plan drives one scheduling pass: match every vehicle against the
// job table, synthesize a payload per vehicle, consult the oracle one
// vehicle at a time, and collect the resulting recommendations in table
// order.
package plan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jmertens/haulsched/core/logger"
	coremetrics "github.com/jmertens/haulsched/core/metrics"
	"github.com/jmertens/haulsched/core/match"
	"github.com/jmertens/haulsched/core/model"
	"github.com/jmertens/haulsched/core/prompt"
)

// Decider is the oracle step. The include flag is false when the reply was
// readable but carried no recommended_jobs list; those vehicles are left
// out of the schedule.
type Decider interface {
	Decide(ctx context.Context, vehicleID, payload string) (model.Recommendation, bool)
}

// AuditPublisher receives each recommendation that enters the schedule.
// Publishing is best effort; failures are logged and never affect the run.
type AuditPublisher interface {
	PublishRecommendation(rec model.Recommendation) error
}

// PromptRecord is the serialized payload kept for audit and replay.
type PromptRecord struct {
	VehicleID string `json:"truck_id"`
	Prompt    string `json:"prompt"`
}

// Result is the outcome of one scheduling pass.
type Result struct {
	RunID           string
	Recommendations []model.Recommendation
	Prompts         []PromptRecord
}

// Planner runs the pipeline strictly sequentially: one vehicle at a time in
// table order, with the configured cooldown after every oracle call. The
// recommendation list is append-only and single-writer by construction.
type Planner struct {
	params    Params
	matcher   match.Matcher
	synth     prompt.Synthesizer
	decider   Decider
	publisher AuditPublisher
	log       logger.Logger
	sink      coremetrics.MetricsSink

	wait func(ctx context.Context, d time.Duration) bool
}

// New validates the parameters and builds a Planner. publisher may be nil;
// log and sink default to no-ops.
func New(params Params, decider Decider, log logger.Logger, sink coremetrics.MetricsSink, publisher AuditPublisher) (*Planner, error) {
	params.SetDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &Planner{
		params:    params,
		matcher:   params.Matcher(),
		synth:     params.Synthesizer(),
		decider:   decider,
		publisher: publisher,
		log:       log,
		sink:      sink,
		wait:      waitCtx,
	}, nil
}

// Run executes one pass over the vehicle table. Vehicles with zero
// candidates are skipped entirely: no payload, no oracle call. A cancelled
// context aborts the pass and returns whatever was collected so far
// together with the context's error.
func (p *Planner) Run(ctx context.Context, vehicles []model.Vehicle, jobs []model.Job) (Result, error) {
	res := Result{RunID: uuid.NewString()}
	now := time.Now()
	p.log.Infof("run %s: %d vehicles, %d jobs on the board", res.RunID, len(vehicles), len(jobs))

	var distances []float64
	prompted := 0
	for _, v := range vehicles {
		candidates := p.matcher.Match(v, jobs)
		if rec, ok := p.sink.(coremetrics.MatchRecorder); ok {
			if err := rec.RecordMatch(coremetrics.MatchEvent{
				RunID:      res.RunID,
				VehicleID:  v.ID,
				Candidates: len(candidates),
				Time:       time.Now(),
			}); err != nil {
				p.log.Warnf("record match: %v", err)
			}
		}
		if len(candidates) == 0 {
			p.log.Debugf("vehicle %s: no compatible jobs, skipping", v.ID)
			continue
		}
		for _, c := range candidates {
			distances = append(distances, c.DistanceMiles)
		}

		payload := p.synth.Synthesize(v, candidates)
		res.Prompts = append(res.Prompts, PromptRecord{VehicleID: v.ID, Prompt: payload})
		prompted++

		p.log.Infof("vehicle %s: requesting recommendation for %d candidates", v.ID, len(candidates))
		start := time.Now()
		rec, include := p.decider.Decide(ctx, v.ID, payload)
		latency := time.Since(start)

		if err := p.sink.RecordOracleCall(coremetrics.OracleCallEvent{
			RunID:        res.RunID,
			VehicleID:    v.ID,
			Included:     include,
			SelectedJobs: len(rec.SelectedJobs),
			Latency:      latency,
			Time:         time.Now(),
		}); err != nil {
			p.log.Warnf("record oracle call: %v", err)
		}

		if include {
			res.Recommendations = append(res.Recommendations, rec)
			if p.publisher != nil {
				if err := p.publisher.PublishRecommendation(rec); err != nil {
					p.log.Errorf("publish recommendation for vehicle %s: %v", v.ID, err)
				}
			}
		}

		// Fixed spacing after every call; the wait is context-aware so a
		// shutdown does not hang on the residual cooldown.
		if !p.wait(ctx, p.params.Cooldown()) {
			return res, ctx.Err()
		}
	}

	p.recordSummary(res, vehicles, jobs, prompted, distances)
	p.log.Infof("run %s: finished in %s, %d/%d vehicles scheduled",
		res.RunID, time.Since(now).Round(time.Millisecond), len(res.Recommendations), prompted)
	return res, nil
}

func (p *Planner) recordSummary(res Result, vehicles []model.Vehicle, jobs []model.Job, prompted int, distances []float64) {
	rec, ok := p.sink.(coremetrics.RunSummaryRecorder)
	if !ok {
		return
	}
	ev := coremetrics.RunSummaryEvent{
		RunID:     res.RunID,
		Vehicles:  len(vehicles),
		Jobs:      len(jobs),
		Prompted:  prompted,
		Scheduled: len(res.Recommendations),
		Time:      time.Now(),
	}
	if len(distances) > 0 {
		ev.MeanDistanceMiles = stat.Mean(distances, nil)
		ev.MaxDistanceMiles = floats.Max(distances)
	}
	if err := rec.RecordRunSummary(ev); err != nil {
		p.log.Warnf("record run summary: %v", err)
	}
}

// waitCtx sleeps for d unless the context ends first.
func waitCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
