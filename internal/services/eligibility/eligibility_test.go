package eligibility_test

import (
	"context"
	"errors"
	"hotelBooking/internal/lib/apperr"
	"hotelBooking/internal/models"
	"hotelBooking/internal/services/eligibility"
	"hotelBooking/internal/storage/storagetest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	store := storagetest.NewStore(t)
	checker := eligibility.New(store, store)

	noTicket := storagetest.CreateUser(t, store)
	storagetest.CreateEnrollment(t, store, noTicket, true)

	noAddress := storagetest.CreateUser(t, store)
	enrollmentID := storagetest.CreateEnrollment(t, store, noAddress, false)
	storagetest.CreateTicket(t, store, enrollmentID, storagetest.CreateTicketType(t, store, false, true), models.TicketStatusPaid)

	testCases := []struct {
		name        string
		userID      int
		expectedErr error
		kind        apperr.Kind
	}{
		{
			name:   "Paid in-person ticket with hotel",
			userID: storagetest.CreateEligibleUser(t, store),
		},
		{
			name:        "No enrollment",
			userID:      storagetest.CreateUser(t, store),
			expectedErr: eligibility.ErrEnrollmentNotFound,
			kind:        apperr.KindNotFound,
		},
		{
			name:        "Enrollment without address",
			userID:      noAddress,
			expectedErr: eligibility.ErrEnrollmentNotFound,
			kind:        apperr.KindNotFound,
		},
		{
			name:        "No ticket",
			userID:      noTicket,
			expectedErr: eligibility.ErrTicketNotFound,
			kind:        apperr.KindUnauthorized,
		},
		{
			name:        "Reserved ticket",
			userID:      storagetest.CreateUserWithTicket(t, store, models.TicketStatusReserved, false, true),
			expectedErr: eligibility.ErrTicketNotPaid,
			kind:        apperr.KindUnauthorized,
		},
		{
			name:        "Remote ticket",
			userID:      storagetest.CreateUserWithTicket(t, store, models.TicketStatusPaid, true, false),
			expectedErr: eligibility.ErrTicketRemote,
			kind:        apperr.KindUnauthorized,
		},
		{
			name:        "Ticket without hotel",
			userID:      storagetest.CreateUserWithTicket(t, store, models.TicketStatusPaid, false, false),
			expectedErr: eligibility.ErrTicketWithoutHotel,
			kind:        apperr.KindUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := checker.Check(context.Background(), tc.userID)
			if tc.expectedErr == nil {
				require.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Equal(t, tc.kind, apperr.KindOf(err))
		})
	}
}

type failingEnrollments struct{}

func (failingEnrollments) EnrollmentByUserID(context.Context, int) (models.Enrollment, error) {
	return models.Enrollment{}, errors.New("connection refused")
}

func TestCheckStorageFailure(t *testing.T) {
	t.Parallel()

	checker := eligibility.New(failingEnrollments{}, nil)

	err := checker.Check(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnknown, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}
