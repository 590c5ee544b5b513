package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/covid-dashboard/dashboard"
)

type metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	rows     prometheus.Histogram
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_chart_requests_total",
			Help: "Chart requests, partitioned by view, chart kind and response status.",
		},
		[]string{"view", "kind", "status"},
	)
	rows := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_query_rows",
		Help:    "Number of points in a chart answer.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	reg.MustRegister(requests, rows)

	return &metrics{
		registry: reg,
		requests: requests,
		rows:     rows,
	}
}

func (m *metrics) observe(view string, answer *dashboard.Chart, status int) {
	kind := "none"
	if answer != nil && answer.Spec != nil {
		kind = string(answer.Spec.Kind)

		n := 0
		for _, series := range answer.Spec.Series {
			n += len(series.Points)
		}
		m.rows.Observe(float64(n))
	}

	m.requests.WithLabelValues(view, kind, strconv.Itoa(status)).Inc()
}

func (m *metrics) handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
