package metrics

import "time"

// OracleCallEvent is one consultation of the reasoning service.
type OracleCallEvent struct {
	RunID        string
	VehicleID    string
	Included     bool // whether the result entered the schedule
	SelectedJobs int
	Latency      time.Duration
	Time         time.Time
}

// MetricsSink records oracle calls for observability purposes.
type MetricsSink interface {
	RecordOracleCall(ev OracleCallEvent) error
}

// MatchEvent captures the candidate count for one vehicle in one pass.
type MatchEvent struct {
	RunID      string
	VehicleID  string
	Candidates int
	Time       time.Time
}

// MatchRecorder records per-vehicle match results.
type MatchRecorder interface {
	RecordMatch(ev MatchEvent) error
}

// RunSummaryEvent aggregates one full scheduling pass.
type RunSummaryEvent struct {
	RunID             string
	Vehicles          int
	Jobs              int
	Prompted          int
	Scheduled         int
	MeanDistanceMiles float64
	MaxDistanceMiles  float64
	Time              time.Time
}

// RunSummaryRecorder records run summaries.
type RunSummaryRecorder interface {
	RecordRunSummary(ev RunSummaryEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordOracleCall(OracleCallEvent) error { return nil }
func (NopSink) RecordMatch(MatchEvent) error           { return nil }
func (NopSink) RecordRunSummary(RunSummaryEvent) error { return nil }
