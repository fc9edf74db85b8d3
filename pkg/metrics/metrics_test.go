package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_BookingConfirmed(t *testing.T) {
	m := New("salon")

	m.BookingConfirmed("Branch1", "UPI", 710)
	m.BookingConfirmed("Branch1", "UPI", 290)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsConfirmed.WithLabelValues("Branch1", "UPI")))
	assert.Equal(t, 1000.0, testutil.ToFloat64(m.bookingRevenue.WithLabelValues("Branch1")))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	// Два экземпляра не должны конфликтовать при регистрации
	a := New("salon")
	b := New("salon")

	a.SetQueueLength("appointments", 3)
	b.SetQueueLength("appointments", 1)

	assert.Equal(t, 3.0, testutil.ToFloat64(a.queueLength.WithLabelValues("appointments")))
	assert.Equal(t, 1.0, testutil.ToFloat64(b.queueLength.WithLabelValues("appointments")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("salon")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/branches", http.StatusOK, 5*time.Millisecond)
	m.FeedbackRecorded("Branch2", 4.5)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `salon_http_requests_total{method="GET",route="/api/v1/branches",status="200"} 1`)
	assert.Contains(t, body, "salon_feedback_rating_count")
}
