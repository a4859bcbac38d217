package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel_desk/internal/domain"
)

var (
	ReservationOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "reservation_ops_total", Help: "Reservation lifecycle calls by outcome."},
		[]string{"op", "result"}, // result: ok|invalid_argument|not_found|unavailable|invalid_state|internal
	)
	Rooms = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: "hotel", Name: "rooms", Help: "Rooms by status."},
		[]string{"status"},
	)
	JournalWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "journal_writes_total", Help: "Lifecycle events written to journals."},
		[]string{"sink", "result"}, // result: ok|error
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "http_requests_total", Help: "Ops HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotel", Name: "http_request_duration_seconds",
			Help:    "Ops HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(ReservationOps, Rooms, JournalWrites, HTTPRequests, HTTPLatency)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveJournal(sink string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	JournalWrites.WithLabelValues(sink, result).Inc()
}

// Desk feeds the front desk's outcomes into the package collectors.
type Desk struct{}

func (Desk) ObserveOp(op, result string) {
	ReservationOps.WithLabelValues(op, result).Inc()
}

func (Desk) SetRooms(counts map[domain.RoomStatus]int) {
	for s, n := range counts {
		Rooms.WithLabelValues(string(s)).Set(float64(n))
	}
}
