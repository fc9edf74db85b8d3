package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор прометеус-метрик сервиса.
// Каждый экземпляр держит собственный registry, поэтому в тестах можно создавать несколько
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsConfirmed *prometheus.CounterVec
	bookingRevenue    *prometheus.CounterVec
	feedbackRatings   *prometheus.HistogramVec
	queueLength       *prometheus.GaugeVec
}

// New создает и регистрирует метрики с префиксом serviceName
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsConfirmed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "bookings_confirmed_total",
			Help:      "Confirmed bookings by branch and payment mode",
		}, []string{"branch", "payment_mode"}),
		bookingRevenue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "booking_revenue_total",
			Help:      "Sum of discounted booking totals by branch",
		}, []string{"branch"}),
		feedbackRatings: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "feedback_rating",
			Help:      "Customer ratings by branch",
			Buckets:   []float64{1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5},
		}, []string{"branch"}),
		queueLength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "queue_length",
			Help:      "Current length of the appointment queue and waiting list",
		}, []string{"queue"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsConfirmed,
		m.bookingRevenue,
		m.feedbackRatings,
		m.queueLength,
	)

	return m
}

// Handler HTTP-обработчик для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) BookingConfirmed(branch, paymentMode string, total int64) {
	m.bookingsConfirmed.WithLabelValues(branch, paymentMode).Inc()
	m.bookingRevenue.WithLabelValues(branch).Add(float64(total))
}

func (m *Metrics) FeedbackRecorded(branch string, rating float64) {
	m.feedbackRatings.WithLabelValues(branch).Observe(rating)
}

func (m *Metrics) SetQueueLength(queue string, length int) {
	m.queueLength.WithLabelValues(queue).Set(float64(length))
}
