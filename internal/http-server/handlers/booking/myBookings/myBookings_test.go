package myBookings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventPortal/internal/http-server/handlers/booking/myBookings/mocks"
	"eventPortal/internal/http-server/view"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/lib/timestamp"
	"eventPortal/internal/models"
	"eventPortal/internal/portal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMyBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	views := view.New(timestamp.NewFormatter(time.UTC))

	t.Run("Booking without event is kept", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewBookingsLister(t)
		lister.On("MyBookings", mock.Anything).Return([]models.EnrichedBooking{
			{Booking: models.Booking{ID: 1}, Event: &models.Event{ID: 10, Name: "A"}},
			{Booking: models.Booking{ID: 2}},
		}, nil)

		rr := httptest.NewRecorder()
		New(logger, lister, views).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bookings/mine", nil))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp BookingsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Bookings, 2)
		require.NotNil(t, resp.Bookings[0].Event)
		assert.Equal(t, "A", resp.Bookings[0].Event.Name)
		assert.Nil(t, resp.Bookings[1].Event)
		assert.Equal(t, timestamp.NotAvailable, resp.Bookings[1].DisplayCreatedAt)
	})

	t.Run("Logged out", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewBookingsLister(t)
		lister.On("MyBookings", mock.Anything).Return(nil, portal.ErrLoginRequired)

		rr := httptest.NewRecorder()
		New(logger, lister, views).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bookings/mine", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"You must be logged in."}`, rr.Body.String())
	})
}
