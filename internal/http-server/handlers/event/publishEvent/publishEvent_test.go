package publishEvent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventPortal/internal/http-server/handlers/event/publishEvent/mocks"
	"eventPortal/internal/http-server/view"
	"eventPortal/internal/lib/api/request"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/lib/timestamp"
	"eventPortal/internal/models"
	"eventPortal/internal/portal"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPublishEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	views := view.New(timestamp.NewFormatter(time.UTC))

	testCases := []struct {
		name           string
		target         string
		mockSetup      func(m *mocks.EventPublisher)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:   "Returns refreshed list",
			target: "/events/3/publish?filter=published",
			mockSetup: func(m *mocks.EventPublisher) {
				m.On("Publish", mock.Anything, int64(3), portal.FilterPublished).Return([]models.Event{
					{ID: 3, Status: models.EventStatusPublished},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				require.Len(t, resp.Events, 1)
				assert.Equal(t, models.EventStatusPublished, resp.Events[0].Status)
			},
		},
		{
			name:   "Filter defaults to all",
			target: "/events/3/publish",
			mockSetup: func(m *mocks.EventPublisher) {
				m.On("Publish", mock.Anything, int64(3), portal.FilterAll).Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown filter",
			target:         "/events/3/publish?filter=archived",
			mockSetup:      func(m *mocks.EventPublisher) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Upstream rejects",
			target: "/events/3/publish",
			mockSetup: func(m *mocks.EventPublisher) {
				m.On("Publish", mock.Anything, int64(3), portal.FilterAll).Return(nil, &request.HTTPError{StatusCode: 409, Message: "already published"})
			},
			expectedStatus: http.StatusBadGateway,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "already published")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			publisher := mocks.NewEventPublisher(t)
			tc.mockSetup(publisher)

			router := chi.NewRouter()
			router.Post("/events/{id}/publish", New(logger, publisher, views))

			req := httptest.NewRequest(http.MethodPost, tc.target, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
