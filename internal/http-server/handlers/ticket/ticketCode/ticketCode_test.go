package ticketCode

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPortal/internal/http-server/handlers/ticket/ticketCode/mocks"
	"eventPortal/internal/http-server/middleware/mwrawpath"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTicketCodeHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n'}
	ticket := models.Ticket{
		TicketNumber: "TKT-1",
		QRCode:       base64.StdEncoding.EncodeToString(png),
	}

	testCases := []struct {
		name           string
		target         string
		mockSetup      func(m *mocks.TicketGetter)
		expectedStatus int
		expectedBody   []byte
	}{
		{
			name:   "QR code",
			target: "/tickets/TKT-1/qr.png",
			mockSetup: func(m *mocks.TicketGetter) {
				m.On("Ticket", mock.Anything, "TKT-1").Return(ticket, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   png,
		},
		{
			name:   "Missing barcode",
			target: "/tickets/TKT-1/barcode.png",
			mockSetup: func(m *mocks.TicketGetter) {
				m.On("Ticket", mock.Anything, "TKT-1").Return(ticket, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Number with slash",
			target: "/tickets/TKT%2F1/qr.png",
			mockSetup: func(m *mocks.TicketGetter) {
				m.On("Ticket", mock.Anything, "TKT/1").Return(ticket, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   png,
		},
		{
			name:   "Number with percent sign",
			target: "/tickets/TKT%251/qr.png",
			mockSetup: func(m *mocks.TicketGetter) {
				m.On("Ticket", mock.Anything, "TKT%1").Return(ticket, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   png,
		},
		{
			name:   "Number with slash and percent sign",
			target: "/tickets/TKT%25%2F1/qr.png",
			mockSetup: func(m *mocks.TicketGetter) {
				m.On("Ticket", mock.Anything, "TKT%/1").Return(ticket, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   png,
		},
		{
			name:           "Unknown kind",
			target:         "/tickets/TKT-1/aztec.png",
			mockSetup:      func(m *mocks.TicketGetter) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Wrong format",
			target:         "/tickets/TKT-1/qr.gif",
			mockSetup:      func(m *mocks.TicketGetter) {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewTicketGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Use(mwrawpath.New)
			router.Use(middleware.URLFormat)
			router.Get("/tickets/{number}/{kind}", New(logger, getter))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.target, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != nil {
				assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
				assert.Equal(t, tc.expectedBody, rr.Body.Bytes())
			}
		})
	}
}
