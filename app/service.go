// Package app wires the configured components into one runnable service:
// feed ingest, normalization, the planner with its oracle client, metric
// sinks, the optional audit publisher, and the output artifacts.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmertens/haulsched/config"
	"github.com/jmertens/haulsched/core/fleet"
	coremetrics "github.com/jmertens/haulsched/core/metrics"
	"github.com/jmertens/haulsched/core/oracle"
	"github.com/jmertens/haulsched/core/plan"
	"github.com/jmertens/haulsched/core/report"
	"github.com/jmertens/haulsched/infra/logger"
	"github.com/jmertens/haulsched/infra/metrics"
	"github.com/jmertens/haulsched/infra/mqtt"
	"github.com/jmertens/haulsched/ingest"
)

// Service runs one scheduling pass end to end.
type Service struct {
	cfg       *config.Config
	planner   *plan.Planner
	publisher *mqtt.Publisher
	log       logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	var publisher *mqtt.Publisher
	if cfg.Audit.Enabled {
		p, err := mqtt.NewPublisher(cfg.Audit)
		if err != nil {
			return nil, fmt.Errorf("audit publisher: %w", err)
		}
		publisher = p
	}

	decider := oracle.New(cfg.Oracle, logger.New("oracle"))
	var auditor plan.AuditPublisher
	if publisher != nil {
		auditor = publisher
	}
	planner, err := plan.New(cfg.Planner, decider, logger.New("planner"), sink, auditor)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	return &Service{cfg: cfg, planner: planner, publisher: publisher, log: logg}, nil
}

// Run executes one pass: load feeds, normalize, plan, write artifacts.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	feeds, err := ingest.Load(s.cfg.Ingest)
	if err != nil {
		return err
	}
	vehicles := fleet.Vehicles(feeds.Telemetry, feeds.History)
	jobs := fleet.Jobs(feeds.Board)
	s.log.Infof("normalized %d vehicles and %d jobs", len(vehicles), len(jobs))

	res, err := s.planner.Run(ctx, vehicles, jobs)
	if err != nil {
		return err
	}

	schedule := report.Render(res.Recommendations)
	if err := os.WriteFile(s.cfg.Output.SchedulePath, []byte(schedule), 0o644); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	prompts, err := json.MarshalIndent(res.Prompts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prompts: %w", err)
	}
	if err := os.WriteFile(s.cfg.Output.PromptsPath, prompts, 0o644); err != nil {
		return fmt.Errorf("write prompts: %w", err)
	}
	s.log.Infof("run %s: schedule written to %s", res.RunID, s.cfg.Output.SchedulePath)
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.publisher != nil {
		s.publisher.Disconnect()
	}
	return nil
}
