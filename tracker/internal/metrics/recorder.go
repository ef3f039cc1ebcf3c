package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "bloom"

// Recorder implements session.Recorder using Prometheus collectors.
type Recorder struct {
	registry *prometheus.Registry

	recorded prometheus.Counter
	rejected *prometheus.CounterVec
	alerts   *prometheus.CounterVec
	week     prometheus.Gauge
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		recorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_recorded_total",
			Help:      "Total number of vitals readings appended to the history",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_rejected_total",
			Help:      "Total number of rejected reading submissions by reason",
		}, []string{"kind"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_alerts_total",
			Help:      "Total number of risk alerts raised by category",
		}, []string{"alert"}),
		week: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gestational_week",
			Help:      "Gestational week shown on the most recent dashboard",
		}),
	}
	r.registry.MustRegister(r.recorded, r.rejected, r.alerts, r.week)
	return r
}

// ReadingRecorded counts one appended reading.
func (r *Recorder) ReadingRecorded() {
	r.recorded.Inc()
}

// SubmissionRejected counts one rejected submission.
func (r *Recorder) SubmissionRejected(kind string) {
	r.rejected.WithLabelValues(kind).Inc()
}

// AlertRaised counts one alert of the given category.
func (r *Recorder) AlertRaised(alert string) {
	r.alerts.WithLabelValues(alert).Inc()
}

// WeekObserved records the week last shown on the dashboard.
func (r *Recorder) WeekObserved(week int) {
	r.week.Set(float64(week))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText encodes all collected metrics to w in the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	mfs, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
