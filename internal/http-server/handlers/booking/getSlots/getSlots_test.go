package getSlots

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"turfbooker/internal/http-server/handlers/booking/getSlots/mocks"
	"turfbooker/internal/lib/logger/handlers/slogdiscard"
	"turfbooker/internal/models"
	"turfbooker/internal/slots"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSlotsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.BookedSlotsProvider)
		expectedStatus int
		expectedBody   string
		checkSlots     func(t *testing.T, resp SlotsResponse)
	}{
		{
			name: "No bookings",
			url:  "/slots?date=2024-06-01",
			mockSetup: func(m *mocks.BookedSlotsProvider) {
				m.On("BookedSlots", "2024-06-01").Return(map[slots.Interval]struct{}{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkSlots: func(t *testing.T, resp SlotsResponse) {
				require.Len(t, resp.Slots, 18)
				assert.Equal(t, "2024-06-01", resp.Date)
				assert.Equal(t, "06:00", resp.Slots[0].StartTime)
				assert.Equal(t, "07:00", resp.Slots[0].EndTime)
				assert.Equal(t, models.SlotAvailable, resp.Slots[0].Status)

				for _, slot := range resp.Slots {
					assert.Equal(t, models.SlotAvailable, slot.Status)
				}
			},
		},
		{
			name: "One slot booked",
			url:  "/slots?date=2024-06-01",
			mockSetup: func(m *mocks.BookedSlotsProvider) {
				m.On("BookedSlots", "2024-06-01").Return(map[slots.Interval]struct{}{
					{Start: "09:00", End: "10:00"}: {},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkSlots: func(t *testing.T, resp SlotsResponse) {
				require.Len(t, resp.Slots, 18)

				available := 0
				for _, slot := range resp.Slots {
					if slot.StartTime == "09:00" && slot.EndTime == "10:00" {
						assert.Equal(t, models.SlotBooked, slot.Status)
						continue
					}

					assert.Equal(t, models.SlotAvailable, slot.Status)
					available++
				}

				assert.Equal(t, 17, available)
			},
		},
		{
			name: "Default date is today",
			url:  "/slots",
			mockSetup: func(m *mocks.BookedSlotsProvider) {
				m.On("BookedSlots", mock.AnythingOfType("string")).Return(map[slots.Interval]struct{}{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkSlots: func(t *testing.T, resp SlotsResponse) {
				require.Len(t, resp.Slots, 18)
				assert.NotEmpty(t, resp.Date)
			},
		},
		{
			name:           "Invalid date format",
			url:            "/slots?date=06-01-2024",
			mockSetup:      func(m *mocks.BookedSlotsProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid date format"}`,
		},
		{
			name: "Store error",
			url:  "/slots?date=2024-06-01",
			mockSetup: func(m *mocks.BookedSlotsProvider) {
				m.On("BookedSlots", "2024-06-01").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get slots"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewBookedSlotsProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}

			if tc.checkSlots != nil {
				var resp SlotsResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				tc.checkSlots(t, resp)
			}
		})
	}
}

func TestGetSlotsIdempotent(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockProvider := mocks.NewBookedSlotsProvider(t)
	mockProvider.On("BookedSlots", "2024-06-01").Return(map[slots.Interval]struct{}{
		{Start: "12:00", End: "13:00"}: {},
	}, nil)

	handler := New(logger, mockProvider)

	var bodies []string
	for i := 0; i < 2; i++ {
		req, err := http.NewRequest("GET", "/slots?date=2024-06-01", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		bodies = append(bodies, rr.Body.String())
	}

	assert.JSONEq(t, bodies[0], bodies[1])
}
