package switrs

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// DefaultMetricsJob is the Pushgateway job name used when none is given
const DefaultMetricsJob = "switrs"

// Metrics counts load progress in a private Prometheus registry and can
// push it to a Pushgateway once the run is over. A nil *Metrics records nothing.
type Metrics struct {
	reg *prometheus.Registry

	rowsParsed   *prometheus.CounterVec // switrs_rows_parsed_total
	rowsInserted *prometheus.CounterVec // switrs_rows_inserted_total
	filesLoaded  *prometheus.CounterVec // switrs_files_loaded_total
	chunks       prometheus.Counter     // switrs_chunks_total

	gatewayURL string
	jobName    string
}

// NewMetrics registers the load counters in a new registry.
// gatewayURL may be empty, in which case Push does nothing.
func NewMetrics(gatewayURL, jobName string) (*Metrics, error) {
	if jobName == "" {
		jobName = DefaultMetricsJob
	}

	m := &Metrics{
		reg: prometheus.NewRegistry(),
		rowsParsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "switrs_rows_parsed_total",
				Help: "Rows parsed from record files, partitioned by table.",
			},
			[]string{"table"},
		),
		rowsInserted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "switrs_rows_inserted_total",
				Help: "Rows inserted into the SQLite database, partitioned by table.",
			},
			[]string{"table"},
		),
		filesLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "switrs_files_loaded_total",
				Help: "Record files loaded, partitioned by table.",
			},
			[]string{"table"},
		),
		chunks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "switrs_chunks_total",
				Help: "Insert batches written.",
			},
		),
		gatewayURL: gatewayURL,
		jobName:    jobName,
	}

	for name, c := range map[string]prometheus.Collector{
		"rows parsed":   m.rowsParsed,
		"rows inserted": m.rowsInserted,
		"files loaded":  m.filesLoaded,
		"chunks":        m.chunks,
	} {
		if err := m.reg.Register(c); err != nil {
			return nil, fmt.Errorf("switrs: register %s counter: %w", name, err)
		}
	}
	return m, nil
}

// Registry returns the registry holding the load counters
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

func (m *Metrics) addParsed(table string, n int) {
	if m == nil {
		return
	}
	m.rowsParsed.WithLabelValues(table).Add(float64(n))
}

func (m *Metrics) addInserted(table string, n int64) {
	if m == nil {
		return
	}
	m.rowsInserted.WithLabelValues(table).Add(float64(n))
	m.chunks.Inc()
}

func (m *Metrics) fileLoaded(table string) {
	if m == nil {
		return
	}
	m.filesLoaded.WithLabelValues(table).Inc()
}

// Push sends the registry to the Pushgateway. It is a no-op without a gateway URL.
func (m *Metrics) Push(ctx context.Context) error {
	if m == nil || m.gatewayURL == "" {
		return nil
	}
	if err := push.New(m.gatewayURL, m.jobName).Gatherer(m.reg).PushContext(ctx); err != nil {
		return fmt.Errorf("switrs: push metrics to %s: %w", m.gatewayURL, err)
	}
	return nil
}
