package reserveSeats

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPortal/internal/http-server/handlers/event/reserveSeats/mocks"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/portal"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReserveSeatsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		target         string
		mockSetup      func(m *mocks.SeatReserver)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Reserved",
			target: "/events/2/reserve?seats=4",
			mockSetup: func(m *mocks.SeatReserver) {
				m.On("ReserveSeats", mock.Anything, int64(2), 4).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","reserved":true}`,
		},
		{
			name:   "Refused",
			target: "/events/2/reserve?seats=400",
			mockSetup: func(m *mocks.SeatReserver) {
				m.On("ReserveSeats", mock.Anything, int64(2), 400).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","reserved":false}`,
		},
		{
			name:           "Missing seats",
			target:         "/events/2/reserve",
			mockSetup:      func(m *mocks.SeatReserver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"seats must be a number"}`,
		},
		{
			name:   "Zero seats",
			target: "/events/2/reserve?seats=0",
			mockSetup: func(m *mocks.SeatReserver) {
				m.On("ReserveSeats", mock.Anything, int64(2), 0).Return(false, portal.ErrInvalidSeats)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"seats must be at least 1"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reserver := mocks.NewSeatReserver(t)
			tc.mockSetup(reserver)

			router := chi.NewRouter()
			router.Post("/events/{id}/reserve", New(logger, reserver))

			req := httptest.NewRequest(http.MethodPost, tc.target, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
