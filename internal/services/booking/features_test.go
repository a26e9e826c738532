package booking_test

import (
	"context"
	"errors"
	"fmt"
	"hotelBooking/internal/lib/apperr"
	"hotelBooking/internal/lib/logger/handlers/slogdiscard"
	"hotelBooking/internal/models"
	"hotelBooking/internal/services/booking"
	"hotelBooking/internal/services/eligibility"
	"hotelBooking/internal/storage/sqlstore"
	"hotelBooking/internal/storage/storagetest"
	"testing"

	"github.com/cucumber/godog"
)

const unknownRoomID = 1_000_000

type bookingTestContext struct {
	t        *testing.T
	store    *sqlstore.Store
	svc      *booking.Service
	hotelID  int
	rooms    map[string]int
	users    map[string]int
	bookings map[string]int
	err      error
}

func (c *bookingTestContext) reset() {
	c.store = storagetest.NewStore(c.t)
	c.svc = booking.New(slogdiscard.NewDiscardLogger(), eligibility.New(c.store, c.store), c.store)
	c.hotelID = 0
	c.rooms = map[string]int{}
	c.users = map[string]int{}
	c.bookings = map[string]int{}
	c.err = nil
}

func (c *bookingTestContext) aHotelWithARoomOfCapacity(name string, capacity int) error {
	c.hotelID = storagetest.CreateHotel(c.t, c.store)
	c.rooms[name] = storagetest.CreateRoom(c.t, c.store, c.hotelID, capacity)
	return nil
}

func (c *bookingTestContext) aRoomOfCapacityInTheSameHotel(name string, capacity int) error {
	c.rooms[name] = storagetest.CreateRoom(c.t, c.store, c.hotelID, capacity)
	return nil
}

func (c *bookingTestContext) anAttendeeWithAnInPersonTicketWithHotel(name, status string) error {
	c.users[name] = storagetest.CreateUserWithTicket(c.t, c.store, models.TicketStatus(status), false, true)
	return nil
}

func (c *bookingTestContext) anAttendeeWithARemoteTicket(name, status string) error {
	c.users[name] = storagetest.CreateUserWithTicket(c.t, c.store, models.TicketStatus(status), true, false)
	return nil
}

func (c *bookingTestContext) roomID(name string) int {
	if id, ok := c.rooms[name]; ok {
		return id
	}
	return unknownRoomID
}

func (c *bookingTestContext) booksRoom(user, room string) error {
	id, err := c.svc.CreateBooking(context.Background(), c.users[user], c.roomID(room))
	c.err = err
	if err == nil {
		c.bookings[user] = id
	}
	return nil
}

func (c *bookingTestContext) movesTheBookingToRoom(user, room string) error {
	return c.movesTheBookingOfToRoom(user, user, room)
}

func (c *bookingTestContext) movesTheBookingOfToRoom(user, owner, room string) error {
	_, c.err = c.svc.UpdateBooking(context.Background(), c.users[user], c.roomID(room), c.bookings[owner])
	return nil
}

func (c *bookingTestContext) readsTheBooking(user string) error {
	_, c.err = c.svc.Booking(context.Background(), c.users[user])
	return nil
}

func (c *bookingTestContext) theBookingSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success but got error: %v", c.err)
	}
	return nil
}

func (c *bookingTestContext) theRequestFailsAs(kind string) error {
	if c.err == nil {
		return errors.New("expected an error but the request succeeded")
	}
	if got := apperr.KindOf(c.err).String(); got != kind {
		return fmt.Errorf("expected %q error, got %q (%v)", kind, got, c.err)
	}
	return nil
}

func (c *bookingTestContext) hasABookingInRoom(user, room string) error {
	b, err := c.svc.Booking(context.Background(), c.users[user])
	if err != nil {
		return err
	}
	if b.RoomID != c.rooms[room] || b.Room == nil || b.Room.ID != c.rooms[room] {
		return fmt.Errorf("expected booking in room %s, got room id %d", room, b.RoomID)
	}
	if id, ok := c.bookings[user]; ok && id != b.ID {
		return fmt.Errorf("expected booking id %d, got %d", id, b.ID)
	}
	return nil
}

func initializeScenario(t *testing.T) func(ctx *godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		tc := &bookingTestContext{t: t}

		ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		// Given steps
		ctx.Step(`^a hotel with a room "([^"]*)" of capacity (\d+)$`, tc.aHotelWithARoomOfCapacity)
		ctx.Step(`^a room "([^"]*)" of capacity (\d+) in the same hotel$`, tc.aRoomOfCapacityInTheSameHotel)
		ctx.Step(`^an attendee "([^"]*)" with a "([^"]*)" in-person ticket with hotel$`, tc.anAttendeeWithAnInPersonTicketWithHotel)
		ctx.Step(`^an attendee "([^"]*)" with a "([^"]*)" remote ticket$`, tc.anAttendeeWithARemoteTicket)

		// When steps
		ctx.Step(`^"([^"]*)" books room "([^"]*)"$`, tc.booksRoom)
		ctx.Step(`^"([^"]*)" moves the booking to room "([^"]*)"$`, tc.movesTheBookingToRoom)
		ctx.Step(`^"([^"]*)" moves the booking of "([^"]*)" to room "([^"]*)"$`, tc.movesTheBookingOfToRoom)
		ctx.Step(`^"([^"]*)" reads the booking$`, tc.readsTheBooking)

		// Then steps
		ctx.Step(`^the booking succeeds$`, tc.theBookingSucceeds)
		ctx.Step(`^the request fails as "([^"]*)"$`, tc.theRequestFailsAs)
		ctx.Step(`^"([^"]*)" has a booking in room "([^"]*)"$`, tc.hasABookingInRoom)
	}
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario(t),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
