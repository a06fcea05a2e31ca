// Package metrics provides Prometheus instrumentation for the kiosk.
//
// Collectors live on a dedicated registry rather than the global default one:
//
//	m := metrics.New()
//	r.Use(m.Middleware())
//	r.Handle("/metrics", m.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/drinko/internal/models"
)

const namespace = "drinko"

// Metrics holds the kiosk's collectors and the registry they belong to.
type Metrics struct {
	Registry *prometheus.Registry

	// RequestDuration tracks how long each HTTP request takes.
	RequestDuration *prometheus.HistogramVec
	// RequestTotal counts all HTTP requests.
	RequestTotal *prometheus.CounterVec
	// RequestInFlight tracks how many requests are being served.
	RequestInFlight prometheus.Gauge

	OrdersCompleted *prometheus.CounterVec
	OrderValue      prometheus.Histogram
	Payments        *prometheus.CounterVec
	IdleTimeouts    prometheus.Counter
	Cancellations   prometheus.Counter
	WSClients       prometheus.Gauge
}

// New creates the collectors and registers them, plus the Go runtime and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		RequestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		RequestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		OrdersCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "kiosk",
				Name:      "orders_completed_total",
				Help:      "Orders that finished pouring, by payment method.",
			},
			[]string{"method"},
		),
		OrderValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "kiosk",
			Name:      "order_value",
			Help:      "Grand total of completed orders.",
			Buckets:   []float64{5, 10, 20, 30, 50, 75, 100, 150},
		}),
		Payments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "kiosk",
				Name:      "payments_total",
				Help:      "Settled simulated payments, by method and outcome.",
			},
			[]string{"method", "outcome"},
		),
		IdleTimeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kiosk",
			Name:      "idle_timeouts_total",
			Help:      "Sessions reset by the inactivity timer.",
		}),
		Cancellations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kiosk",
			Name:      "cancellations_total",
			Help:      "Orders cancelled by the customer.",
		}),
		WSClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ws",
			Name:      "clients",
			Help:      "Connected websocket clients.",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestTotal,
		m.RequestInFlight,
		m.OrdersCompleted,
		m.OrderValue,
		m.Payments,
		m.IdleTimeouts,
		m.Cancellations,
		m.WSClients,
	)
	return m
}

// ObserveOrder records a completed order.
func (m *Metrics) ObserveOrder(o models.Order) {
	m.OrdersCompleted.WithLabelValues(string(o.PaymentMethod)).Inc()
	m.OrderValue.Observe(o.Total.InexactFloat64())
}

// ObservePayment records a settled payment.
func (m *Metrics) ObservePayment(method models.PaymentMethod, approved bool) {
	outcome := "rejected"
	if approved {
		outcome = "approved"
	}
	m.Payments.WithLabelValues(string(method), outcome).Inc()
}

// Middleware records duration, count and in-flight gauge for every request.
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path

			m.RequestInFlight.Inc()
			defer m.RequestInFlight.Dec()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			code := strconv.Itoa(status)

			m.RequestDuration.WithLabelValues(r.Method, path, code).Observe(time.Since(start).Seconds())
			m.RequestTotal.WithLabelValues(r.Method, path, code).Inc()
		})
	}
}

// Handler exposes the registry on the /metrics page.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
