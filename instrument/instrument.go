// Package instrument decorates a pathfinding.Pathfinder with Prometheus
// metrics and zap logging. Query results pass through unchanged.
package instrument

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/pathfinding"
)

// Operation label values.
const (
	OpBetween = "between"
	OpFrom    = "from"
)

// Outcome label values.
const (
	OutcomeOK               = "ok"
	OutcomeNonExistingStart = "non_existing_start"
	OutcomeNoSuchPath       = "no_such_path"
	OutcomeNegativeCycle    = "negative_cycle"
	OutcomeError            = "error"
)

// Metrics holds the collectors recorded by Wrap.
type Metrics struct {
	Queries      *prometheus.CounterVec   // by operation, outcome
	Duration     *prometheus.HistogramVec // seconds, by operation
	PathNodes    prometheus.Histogram     // nodes per Between result
	ReachedNodes prometheus.Histogram     // goals per From result
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathfinder_queries_total",
				Help: "Pathfinding queries by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathfinder_query_duration_seconds",
				Help:    "Pathfinding query latency.",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"operation"},
		),
		PathNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathfinder_path_nodes",
			Help:    "Nodes on each path returned by between.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
		ReachedNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathfinder_reached_nodes",
			Help:    "Goals reached by each from query.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	for _, c := range []prometheus.Collector{m.Queries, m.Duration, m.PathNodes, m.ReachedNodes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Outcome classifies a query error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, pathfinding.ErrNonExistingStart):
		return OutcomeNonExistingStart
	case errors.Is(err, pathfinding.ErrNegativeCycle):
		return OutcomeNegativeCycle
	case errors.Is(err, pathfinding.ErrNoSuchPath):
		return OutcomeNoSuchPath
	default:
		return OutcomeError
	}
}

// Pathfinder records every query of the wrapped pathfinder.
type Pathfinder struct {
	next    pathfinding.Pathfinder
	metrics *Metrics
	logger  *zap.Logger
}

var _ pathfinding.Pathfinder = (*Pathfinder)(nil)

// Wrap decorates p. A nil metrics records nothing; a nil logger logs nothing.
// Panics if p is nil.
func Wrap(p pathfinding.Pathfinder, metrics *Metrics, logger *zap.Logger) *Pathfinder {
	if p == nil {
		panic("instrument: nil pathfinder")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pathfinder{next: p, metrics: metrics, logger: logger}
}

// Between implements pathfinding.SinglePathfinder.
func (p *Pathfinder) Between(start, goal string) ([]string, error) {
	began := time.Now()
	path, err := p.next.Between(start, goal)
	p.record(OpBetween, began, err, zap.String("start", start), zap.String("goal", goal))
	if err == nil && p.metrics != nil {
		p.metrics.PathNodes.Observe(float64(len(path)))
	}

	return path, err
}

// From implements pathfinding.MultiPathfinder.
func (p *Pathfinder) From(start string) (map[string][]string, error) {
	began := time.Now()
	paths, err := p.next.From(start)
	p.record(OpFrom, began, err, zap.String("start", start))
	if err == nil && p.metrics != nil {
		p.metrics.ReachedNodes.Observe(float64(len(paths)))
	}

	return paths, err
}

func (p *Pathfinder) record(op string, began time.Time, err error, fields ...zap.Field) {
	took := time.Since(began)
	outcome := Outcome(err)
	if p.metrics != nil {
		p.metrics.Queries.WithLabelValues(op, outcome).Inc()
		p.metrics.Duration.WithLabelValues(op).Observe(took.Seconds())
	}
	if err == nil {
		return
	}

	fields = append(fields,
		zap.String("operation", op),
		zap.String("outcome", outcome),
		zap.Duration("took", took),
		zap.Error(err),
	)
	if errors.Is(err, pathfinding.ErrNoPathAvailable) {
		p.logger.Debug("query has no answer", fields...)
		return
	}
	p.logger.Error("query failed", fields...)
}
