package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	timings = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "method_timing",
			Help:       "Per method timing",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"method"},
	)

	Ticks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "simulation_ticks_total",
			Help: "Simulation ticks processed",
		},
	)

	OrdersFilled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_filled_total",
			Help: "Orders filled, by side",
		},
		[]string{"side"},
	)

	OrdersRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_rejected_total",
			Help: "Order placements rejected",
		},
	)

	AlertsTriggered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alerts_triggered_total",
			Help: "Price alerts triggered",
		},
	)

	Balance = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_balance",
			Help: "Current cash balance",
		},
	)
)

func init() {
	prometheus.MustRegister(timings, Ticks, OrdersFilled, OrdersRejected, AlertsTriggered, Balance)
}

func TimeTrackingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)
		handlerName := r.URL.Path
		timings.
			WithLabelValues(handlerName).
			Observe(float64(time.Since(start).Seconds()))
	})
}
