package metrics

import (
	"testing"

	coremetrics "github.com/jmertens/haulsched/core/metrics"
)

type recordSink struct {
	count int
}

func (r *recordSink) RecordOracleCall(coremetrics.OracleCallEvent) error {
	r.count++
	return nil
}

func (r *recordSink) RecordRunSummary(coremetrics.RunSummaryEvent) error {
	r.count++
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordOracleCall(coremetrics.OracleCallEvent{}); err != nil {
		t.Fatalf("record call: %v", err)
	}
	if err := m.RecordRunSummary(coremetrics.RunSummaryEvent{}); err != nil {
		t.Fatalf("record summary: %v", err)
	}
	if s1.count != 2 || s2.count != 2 {
		t.Fatalf("events not forwarded")
	}
}

func TestMultiSinkSkipsUnsupportedRecorders(t *testing.T) {
	// recordSink does not implement MatchRecorder; forwarding must not fail.
	m := NewMultiSink(&recordSink{}, coremetrics.NopSink{})
	if err := m.RecordMatch(coremetrics.MatchEvent{}); err != nil {
		t.Fatalf("record match: %v", err)
	}
}
