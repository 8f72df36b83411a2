package metrics

import coremetrics "github.com/jmertens/haulsched/core/metrics"

// MultiSink fans scheduling events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordOracleCall forwards the event to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordOracleCall(ev coremetrics.OracleCallEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordOracleCall(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordMatch forwards match events when supported by the sink.
func (m *MultiSink) RecordMatch(ev coremetrics.MatchEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.MatchRecorder); ok {
			if err := rec.RecordMatch(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordRunSummary forwards run summaries when supported by the sink.
func (m *MultiSink) RecordRunSummary(ev coremetrics.RunSummaryEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.RunSummaryRecorder); ok {
			if err := rec.RecordRunSummary(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
