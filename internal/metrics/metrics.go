package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dogs_catalog"

// Registry agrupa los collectors del servicio. Todos los métodos son nil-safe
// para que los componentes funcionen sin métricas.
type Registry struct {
	reg *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	catalogRequests *prometheus.CounterVec
	catalogDuration prometheus.Histogram
	rateLimited     prometheus.Counter
}

func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		catalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_requests_total",
			Help:      "Calls to the external breed catalog, by outcome.",
		}, []string{"outcome"}),
		catalogDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_request_duration_seconds",
			Help:      "External breed catalog latency.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_rate_limited_total",
			Help:      "Requests rejected by the inbound rate limiter.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpDuration,
		r.catalogRequests,
		r.catalogDuration,
		r.rateLimited,
	)
	return r
}

func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

func (r *Registry) ObserveHTTP(method, route string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveCatalogRequest implementa thedogapi.Observer.
func (r *Registry) ObserveCatalogRequest(outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.catalogRequests.WithLabelValues(outcome).Inc()
	r.catalogDuration.Observe(d.Seconds())
}

func (r *Registry) ObserveRateLimited() {
	if r == nil {
		return
	}
	r.rateLimited.Inc()
}
