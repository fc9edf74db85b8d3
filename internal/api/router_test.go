package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/app"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	salon, err := app.New(app.Options{Catalog: config.DefaultCatalog(), Logger: logger.NewNop()})
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(salon, logger.NewNop(), RouterOptions{
		MetricsEnabled: true,
		MetricsPath:    "/metrics",
	}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}, out interface{}) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestRouter_BookingFlow(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1"

	var created map[string]interface{}
	code := doJSON(t, http.MethodPost, base+"/bookings", map[string]interface{}{
		"customerName": "Asha",
		"branchKey":    "Branch1",
		"slotKey":      "morning",
		"services":     []string{"Facial", "Manicure"},
		"paymentMode":  "UPI",
	}, &created)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(1001), created["id"])
	assert.Equal(t, float64(710), created["total"])
	assert.Equal(t, "Rs.710", created["totalLabel"])
	assert.Equal(t, "UPI", created["paymentMode"])
	assert.Equal(t, "paid", created["paymentMessage"])

	var booking map[string]interface{}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base+"/bookings/1001", nil, &booking))
	assert.Equal(t, "confirmed", booking["status"])
	assert.Nil(t, booking["feedback"])

	var history struct {
		History  []string                 `json:"history"`
		Bookings []map[string]interface{} `json:"bookings"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base+"/customers/Asha/history", nil, &history))
	assert.Equal(t, []string{"Facial at Branch1", "Manicure at Branch1"}, history.History)
	assert.Len(t, history.Bookings, 1)

	var q struct {
		NextAppointment *string  `json:"nextAppointment"`
		Appointments    []string `json:"appointments"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base+"/queue", nil, &q))
	require.NotNil(t, q.NextAppointment)
	assert.Equal(t, "Asha", *q.NextAppointment)

	var fb struct {
		Booking struct {
			Status   string `json:"status"`
			Feedback struct {
				Rating float64 `json:"rating"`
			} `json:"feedback"`
		} `json:"booking"`
		ReviewCount   int     `json:"reviewCount"`
		AverageRating float64 `json:"averageRating"`
	}
	require.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, base+"/bookings/1001/feedback",
		map[string]interface{}{"rating": 4.5, "review": "lovely"}, &fb))
	assert.Equal(t, "feedback_recorded", fb.Booking.Status)
	assert.Equal(t, 4.5, fb.Booking.Feedback.Rating)
	assert.Equal(t, 1, fb.ReviewCount)

	assert.Equal(t, http.StatusConflict, doJSON(t, http.MethodPost, base+"/bookings/1001/feedback",
		map[string]interface{}{"rating": 3}, nil))

	var branchFeedback struct {
		Entries     []map[string]interface{} `json:"entries"`
		ReviewCount int                      `json:"reviewCount"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base+"/branches/Branch1/feedback", nil, &branchFeedback))
	assert.Equal(t, 1, branchFeedback.ReviewCount)
	assert.Equal(t, "Asha", branchFeedback.Entries[0]["customerName"])
}

func TestRouter_Errors(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1"

	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, base+"/bookings/4242", nil, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, base+"/branches/Branch9/services", nil, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, base+"/branches/Branch9/feedback", nil, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodPost, base+"/queue/next", nil, nil))

	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodPost, base+"/bookings", map[string]interface{}{
		"customerName": "Asha", "branchKey": "Branch1", "slotKey": "morning", "services": []string{},
	}, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodPost, base+"/bookings", map[string]interface{}{
		"customerName": "Asha", "branchKey": "Branch1", "slotKey": "morning", "services": []string{"Tattoo"},
	}, nil))

	var created map[string]interface{}
	require.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, base+"/bookings", map[string]interface{}{
		"customerName": "Ravi", "branchKey": "Branch2", "slotKey": "evening", "services": []string{"Pedicure"}, "paymentMode": "7",
	}, &created))
	assert.Equal(t, "CashOnVisit", created["paymentMode"])
	assert.Equal(t, "pay at counter", created["paymentMessage"])

	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodPost, base+"/bookings/1001/feedback",
		map[string]interface{}{"rating": 0.5}, nil))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodPost, base+"/bookings/1001/feedback",
		map[string]interface{}{"review": "no rating"}, nil))
}

func TestRouter_CatalogAndWaitingList(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1"

	var branches []map[string]interface{}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base+"/branches", nil, &branches))
	assert.Len(t, branches, 4)

	var services []map[string]interface{}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base+"/services", nil, &services))
	assert.Len(t, services, 8)

	var slots struct {
		Slots []map[string]interface{} `json:"slots"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base+"/slots?branchKey=Branch3", nil, &slots))
	assert.Len(t, slots.Slots, 3)

	var quote struct {
		Services []struct {
			Name       string `json:"name"`
			FinalPrice int64  `json:"finalPrice"`
			PriceLabel string `json:"priceLabel"`
		} `json:"services"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base+"/branches/Branch1/services", nil, &quote))
	require.Len(t, quote.Services, 8)
	assert.Equal(t, "Haircut", quote.Services[0].Name)
	assert.Equal(t, int64(180), quote.Services[0].FinalPrice)
	assert.Equal(t, "Rs.180", quote.Services[0].PriceLabel)

	require.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, base+"/waiting-list",
		map[string]string{"customerName": "Walk-in"}, nil))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodPost, base+"/waiting-list",
		map[string]string{"customerName": " "}, nil))

	var wl struct {
		NextWaiting *string  `json:"nextWaiting"`
		WaitingList []string `json:"waitingList"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base+"/waiting-list", nil, &wl))
	require.NotNil(t, wl.NextWaiting)
	assert.Equal(t, "Walk-in", *wl.NextWaiting)

	var left map[string]string
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, base+"/waiting-list/next", nil, &left))
	assert.Equal(t, "Walk-in", left["customerName"])
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodPost, base+"/waiting-list/next", nil, nil))
}

func TestRouter_MetricsAndRequestID(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/branches")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="/api/v1/branches"`)
}
