// Package storagetest seeds an in-memory SQLite store for tests.
package storagetest

import (
	"context"
	"fmt"
	"hotelBooking/internal/models"
	"hotelBooking/internal/storage/sqlite"
	"hotelBooking/internal/storage/sqlstore"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var seq atomic.Int64

// NewStore opens a fresh in-memory store closed when the test ends.
func NewStore(t testing.TB) *sqlstore.Store {
	t.Helper()

	store, err := sqlite.Open(context.Background(), sqlite.MemoryDSN)
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	return store
}

func insert(t testing.TB, store *sqlstore.Store, query string, args ...any) int {
	t.Helper()

	db := store.DB()

	var id int
	require.NoError(t, db.QueryRowx(db.Rebind(query+" RETURNING id"), args...).Scan(&id))

	return id
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func CreateUser(t testing.TB, store *sqlstore.Store) int {
	t.Helper()

	email := fmt.Sprintf("user%d@example.com", seq.Add(1))

	return insert(t, store,
		`INSERT INTO users (email, created_at, updated_at) VALUES (?, ?, ?)`,
		email, now(), now())
}

// CreateSession issues a random token for the user and returns it.
func CreateSession(t testing.TB, store *sqlstore.Store, userID int) string {
	t.Helper()

	token := uuid.NewString()
	insert(t, store,
		`INSERT INTO sessions (user_id, token, created_at) VALUES (?, ?, ?)`,
		userID, token, now())

	return token
}

func CreateEnrollment(t testing.TB, store *sqlstore.Store, userID int, withAddress bool) int {
	t.Helper()

	birthday := time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC)
	enrollmentID := insert(t, store,
		`INSERT INTO enrollments (user_id, name, cpf, birthday, phone, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, "Attendee", "12345678909", birthday, "(21) 98999-9999", now(), now())

	if withAddress {
		insert(t, store,
			`INSERT INTO addresses (enrollment_id, cep, street, city, state, number, neighborhood, address_detail)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			enrollmentID, "01310-100", "Avenida Paulista", "Sao Paulo", "SP", "1578", "Bela Vista", "")
	}

	return enrollmentID
}

func CreateTicketType(t testing.TB, store *sqlstore.Store, isRemote, includesHotel bool) int {
	t.Helper()

	return insert(t, store,
		`INSERT INTO ticket_types (name, price, is_remote, includes_hotel) VALUES (?, ?, ?, ?)`,
		fmt.Sprintf("ticket type %d", seq.Add(1)), 600, isRemote, includesHotel)
}

func CreateTicket(t testing.TB, store *sqlstore.Store, enrollmentID, ticketTypeID int, status models.TicketStatus) int {
	t.Helper()

	return insert(t, store,
		`INSERT INTO tickets (enrollment_id, ticket_type_id, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		enrollmentID, ticketTypeID, string(status), now(), now())
}

func CreateHotel(t testing.TB, store *sqlstore.Store) int {
	t.Helper()

	return insert(t, store,
		`INSERT INTO hotels (name, image, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		fmt.Sprintf("Hotel %d", seq.Add(1)), "https://example.com/hotel.png", now(), now())
}

func CreateRoom(t testing.TB, store *sqlstore.Store, hotelID, capacity int) int {
	t.Helper()

	return insert(t, store,
		`INSERT INTO rooms (name, capacity, hotel_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		fmt.Sprintf("%d", 100+seq.Add(1)), capacity, hotelID, now(), now())
}

func CreateBooking(t testing.TB, store *sqlstore.Store, userID, roomID int) int {
	t.Helper()

	return insert(t, store,
		`INSERT INTO bookings (user_id, room_id, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		userID, roomID, now(), now())
}

// CreateUserWithTicket creates a user with an addressed enrollment and a ticket.
func CreateUserWithTicket(t testing.TB, store *sqlstore.Store, status models.TicketStatus, isRemote, includesHotel bool) int {
	t.Helper()

	userID := CreateUser(t, store)
	enrollmentID := CreateEnrollment(t, store, userID, true)
	ticketTypeID := CreateTicketType(t, store, isRemote, includesHotel)
	CreateTicket(t, store, enrollmentID, ticketTypeID, status)

	return userID
}

// CreateEligibleUser creates a user holding a paid, in-person, hotel-inclusive ticket.
func CreateEligibleUser(t testing.TB, store *sqlstore.Store) int {
	t.Helper()

	return CreateUserWithTicket(t, store, models.TicketStatusPaid, false, true)
}
