package getBooking

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventPortal/internal/http-server/handlers/booking/getBooking/mocks"
	"eventPortal/internal/http-server/view"
	"eventPortal/internal/lib/api/request"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/lib/timestamp"
	"eventPortal/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	views := view.New(timestamp.NewFormatter(time.UTC))

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(m *mocks.BookingGetter)
		expectedStatus int
		contains       string
	}{
		{
			name:      "Success",
			bookingID: "3",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("Booking", mock.Anything, int64(3)).Return(models.Booking{ID: 3, CreatedAt: timestamp.Iso("2024-08-09")}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       `"displayCreatedAt":"August 9, 2024"`,
		},
		{
			name:           "Invalid id",
			bookingID:      "-3",
			mockSetup:      func(m *mocks.BookingGetter) {},
			expectedStatus: http.StatusBadRequest,
			contains:       "booking id has invalid format",
		},
		{
			name:      "Not found",
			bookingID: "4",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("Booking", mock.Anything, int64(4)).Return(models.Booking{}, &request.HTTPError{StatusCode: 404, Message: "Booking not found"})
			},
			expectedStatus: http.StatusNotFound,
			contains:       "Booking not found",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewBookingGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/bookings/{id}", New(logger, getter, views))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bookings/"+tc.bookingID, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.contains)
		})
	}
}
