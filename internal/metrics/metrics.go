package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	salesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_sales_total",
			Help: "Completed sales by payment method.",
		},
		[]string{"payment_method"},
	)
	salesNetAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_sales_net_amount",
			Help: "Sum of sale net totals by payment method.",
		},
		[]string{"payment_method"},
	)
	cartActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_cart_actions_total",
			Help: "Cart actions applied to live sessions.",
		},
		[]string{"action"},
	)
	goodsReceivedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_goods_received_notes_total",
			Help: "Goods received notes recorded.",
		},
	)
	loginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_login_attempts_total",
			Help: "Login attempts by outcome.",
		},
		[]string{"result"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func RecordSale(paymentMethod string, netTotal float64) {
	salesTotal.WithLabelValues(paymentMethod).Inc()
	salesNetAmount.WithLabelValues(paymentMethod).Add(netTotal)
}

func RecordCartAction(action string) {
	cartActionsTotal.WithLabelValues(action).Inc()
}

func RecordGoodsReceived() {
	goodsReceivedTotal.Inc()
}

// RecordLogin counts login outcomes: success, invalid or limited.
func RecordLogin(result string) {
	loginAttemptsTotal.WithLabelValues(result).Inc()
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware must wrap the ServeMux directly: the mux records the matched
// pattern on the request, which keeps the path label bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {
			pathPattern := r.Pattern
			if pathPattern == "" {
				pathPattern = "unmatched"
			}

			httpRequestsTotal.WithLabelValues(strconv.Itoa(rw.statusCode), r.Method, pathPattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(time.Since(start).Seconds())
			httpRequestsInFlight.Dec()
		}()

		next.ServeHTTP(rw, r)
	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
