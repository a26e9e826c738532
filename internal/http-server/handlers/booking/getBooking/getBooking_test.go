package getBooking

import (
	"encoding/json"
	"errors"
	"hotelBooking/internal/http-server/handlers/booking/getBooking/mocks"
	"hotelBooking/internal/http-server/middleware/auth"
	"hotelBooking/internal/lib/logger/handlers/slogdiscard"
	"hotelBooking/internal/models"
	"hotelBooking/internal/services/booking"
	"hotelBooking/internal/services/eligibility"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = 7

func TestGetBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)
	testBooking := &models.Booking{
		ID:        3,
		UserID:    testUserID,
		RoomID:    12,
		CreatedAt: testTime,
		UpdatedAt: testTime,
		Room: &models.Room{
			ID:        12,
			Name:      "101",
			Capacity:  2,
			HotelID:   1,
			CreatedAt: testTime,
			UpdatedAt: testTime,
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.BookingGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("Booking", mock.Anything, testUserID).Return(testBooking, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var got map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &got))

				assert.Equal(t, "OK", got["status"])
				assert.NotContains(t, got, "error")
				assert.EqualValues(t, 3, got["id"])
				assert.EqualValues(t, testUserID, got["userId"])
				assert.EqualValues(t, 12, got["roomId"])
				assert.Equal(t, "2024-12-25T18:00:00Z", got["createdAt"])

				room, ok := got["Room"].(map[string]any)
				require.True(t, ok, "Room must be an object")
				assert.EqualValues(t, 12, room["id"])
				assert.Equal(t, "101", room["name"])
				assert.EqualValues(t, 2, room["capacity"])
				assert.EqualValues(t, 1, room["hotelId"])
			},
		},
		{
			name: "No booking",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("Booking", mock.Anything, testUserID).Return(nil, booking.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name: "No enrollment",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("Booking", mock.Anything, testUserID).Return(nil, eligibility.ErrEnrollmentNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"enrollment not found"}`,
		},
		{
			name: "Ticket not paid",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("Booking", mock.Anything, testUserID).Return(nil, eligibility.ErrTicketNotPaid)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"ticket is not paid"}`,
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("Booking", mock.Anything, testUserID).Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewBookingGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/booking", New(logger, mockGetter))

			req, err := http.NewRequest(http.MethodGet, "/booking", nil)
			require.NoError(t, err)
			req = req.WithContext(auth.WithUserID(req.Context(), testUserID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
		})
	}
}

func TestHandlerWithoutUser(t *testing.T) {
	t.Parallel()

	mockGetter := mocks.NewBookingGetter(t)
	handler := New(slogdiscard.NewDiscardLogger(), mockGetter)

	req, err := http.NewRequest(http.MethodGet, "/booking", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"unauthorized"}`, rr.Body.String())
	mockGetter.AssertNotCalled(t, "Booking", mock.Anything, mock.Anything)
}
