package resinaro

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/foomo/resinaro/vo"
)

const (
	prometheusLabelKind   = "kind"
	prometheusLabelStatus = "status"
	prometheusLabelType   = "type"
	prometheusLabelLevel  = "level"
)

type Metrics struct {
	requests          *prometheus.CounterVec
	renderDuration    *prometheus.SummaryVec
	notFound          prometheus.Counter
	localeFallback    prometheus.Counter
	droppedDocuments  *prometheus.CounterVec
	validationFinding *prometheus.CounterVec
}

// NewMetrics registers the directory metrics with registerer, tests pass a
// fresh prometheus.NewRegistry()
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resinaro_page_requests_total",
				Help: "directory page requests by page kind and status code",
			},
			[]string{prometheusLabelKind, prometheusLabelStatus},
		),
		renderDuration: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "resinaro_render_duration_seconds",
				Help:       "time to render a page into html",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{prometheusLabelKind},
		),
		notFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resinaro_not_found_total",
			Help: "lookups that ended in the not found page",
		}),
		localeFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resinaro_locale_fallback_total",
			Help: "unexpected locale tokens coerced to en",
		}),
		droppedDocuments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resinaro_structured_data_dropped_total",
				Help: "json-ld documents not emitted because they failed validation",
			},
			[]string{prometheusLabelType},
		),
		validationFinding: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resinaro_structured_data_validations_total",
				Help: "json-ld validation findings by level",
			},
			[]string{prometheusLabelLevel},
		),
	}
	registerer.MustRegister(
		m.requests,
		m.renderDuration,
		m.notFound,
		m.localeFallback,
		m.droppedDocuments,
		m.validationFinding,
	)
	return m
}

func (m *Metrics) trackValidations(validations vo.Validations) {
	for _, level := range []vo.ValidationLevel{vo.ValidationLevelError, vo.ValidationLevelWarning, vo.ValidationLevelInfo} {
		if n := validations.Count(level); n > 0 {
			m.validationFinding.WithLabelValues(string(level)).Add(float64(n))
		}
	}
}
