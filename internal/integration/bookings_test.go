package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/metinatakli/movie-booking-api/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type BookingTestSuite struct {
	BaseSuite
}

func TestBookingSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(BookingTestSuite))
}

func bookingBody(userID, showtimeID, seats int) *strings.Reader {
	return strings.NewReader(fmt.Sprintf(`{"user_id": %d, "showtime_id": %d, "seats": %d}`, userID, showtimeID, seats))
}

// TestTwoSeatShowtime walks one showtime with two seats through the whole
// booking lifecycle. Scenarios share state and run in order.
func (s *BookingTestSuite) TestTwoSeatShowtime() {
	alice := s.authHeader(AliceUserId)
	bob := s.authHeader(BobUserId)

	seatsLeft := func(want int) func(t testing.TB, app *TestApp, res *http.Response) {
		return func(t testing.TB, app *TestApp, res *http.Response) {
			assert.Equal(t, want, availableSeats(t, app.DB, TwoSeatShowtimeId))
			assert.Equal(t, 2-want, heldSeats(t, app.DB, TwoSeatShowtimeId))
		}
	}

	scenarios := []Scenario{
		{
			Name:           "alice books one seat",
			Method:         http.MethodPost,
			URL:            "/api/booking",
			Body:           bookingBody(AliceUserId, TwoSeatShowtimeId, 1),
			Headers:        alice,
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"success": true,
				"message": "Booking created (pending)",
				"booking": {"id": 1, "user_id": 2, "showtime_id": 1, "seats": 1, "status": "pending"}
			}`,
			AfterTestFunc: seatsLeft(1),
		},
		{
			Name:             "bob cannot take two seats when one is left",
			Method:           http.MethodPost,
			URL:              "/api/booking",
			Body:             bookingBody(BobUserId, TwoSeatShowtimeId, 2),
			Headers:          bob,
			ExpectedStatus:   http.StatusConflict,
			ExpectedResponse: `{"success": false, "message": "Not enough seats"}`,
			AfterTestFunc:    seatsLeft(1),
		},
		{
			Name:             "bob takes the last seat",
			Method:           http.MethodPost,
			URL:              "/api/booking",
			Body:             bookingBody(BobUserId, TwoSeatShowtimeId, 1),
			Headers:          bob,
			ExpectedStatus:   http.StatusCreated,
			ExpectedResponse: `{"booking": {"id": 2, "status": "pending"}}`,
			AfterTestFunc:    seatsLeft(0),
		},
		{
			Name:             "alice confirms",
			Method:           http.MethodPost,
			URL:              "/api/booking/1/confirm",
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"success": true, "message": "Booking confirmed"}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, "confirmed", bookingStatus(t, app.DB, 1))
				assert.Equal(t, 0, availableSeats(t, app.DB, TwoSeatShowtimeId))

				emails := app.Mailer.GetSentEmails()
				require.Len(t, emails, 1)
				assert.Equal(t, "alice@example.com", emails[0].Recipient)
				assert.Equal(t, "Alien", app.Mailer.BookingConfirmations()[0].MovieTitle)
			},
		},
		{
			Name:             "confirming twice is a no-op",
			Method:           http.MethodPost,
			URL:              "/api/booking/1/confirm",
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"success": true, "message": "Already confirmed"}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Len(t, app.Mailer.GetSentEmails(), 1)
			},
		},
		{
			Name:             "alice cancels and the seat comes back",
			Method:           http.MethodPost,
			URL:              "/api/booking/1/cancel",
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"success": true, "message": "Booking cancelled and seats released"}`,
			AfterTestFunc:    seatsLeft(1),
		},
		{
			Name:             "cancelling twice releases nothing",
			Method:           http.MethodPost,
			URL:              "/api/booking/1/cancel",
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"success": true, "message": "Already cancelled"}`,
			AfterTestFunc:    seatsLeft(1),
		},
		{
			Name:             "a cancelled booking cannot be confirmed",
			Method:           http.MethodPost,
			URL:              "/api/booking/1/confirm",
			Headers:          alice,
			ExpectedStatus:   http.StatusConflict,
			ExpectedResponse: `{"success": false, "message": "Cannot confirm a cancelled booking"}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, "cancelled", bookingStatus(t, app.DB, 1))
			},
		},
		{
			Name:             "deleting a pending booking releases its seat",
			Method:           http.MethodDelete,
			URL:              "/api/booking/2",
			Headers:          bob,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"success": true, "message": "Booking deleted"}`,
			AfterTestFunc:    seatsLeft(2),
		},
		{
			Name:             "deleting a cancelled booking releases nothing",
			Method:           http.MethodDelete,
			URL:              "/api/booking/1",
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"success": true, "message": "Booking deleted"}`,
			AfterTestFunc:    seatsLeft(2),
		},
		{
			Name:             "deleted bookings are gone",
			Method:           http.MethodGet,
			URL:              "/api/booking/2",
			Headers:          bob,
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"success": false, "message": "Booking not found"}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}

	published := s.app.Publisher.Events()
	types := make([]events.EventType, len(published))
	for i, event := range published {
		types[i] = event.Type
	}

	s.ElementsMatch([]events.EventType{
		events.BookingCreated,
		events.BookingCreated,
		events.BookingConfirmed,
		events.BookingCancelled,
		events.BookingDeleted,
		events.BookingDeleted,
	}, types)
}

func (s *BookingTestSuite) TestCancelFreesSeatsForTheNextBooking() {
	alice := s.authHeader(AliceUserId)
	bob := s.authHeader(BobUserId)

	scenarios := []Scenario{
		{
			Name:             "alice takes the whole showtime",
			Method:           http.MethodPost,
			URL:              "/api/booking",
			Body:             bookingBody(AliceUserId, TwoSeatShowtimeId, 2),
			Headers:          alice,
			ExpectedStatus:   http.StatusCreated,
			ExpectedResponse: `{"booking": {"id": 1, "seats": 2, "status": "pending"}}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, 0, availableSeats(t, app.DB, TwoSeatShowtimeId))
			},
		},
		{
			Name:             "sold out",
			Method:           http.MethodPost,
			URL:              "/api/booking",
			Body:             bookingBody(BobUserId, TwoSeatShowtimeId, 1),
			Headers:          bob,
			ExpectedStatus:   http.StatusConflict,
			ExpectedResponse: `{"message": "Not enough seats"}`,
		},
		{
			Name:           "alice cancels",
			Method:         http.MethodPost,
			URL:            "/api/booking/1/cancel",
			Headers:        alice,
			ExpectedStatus: http.StatusOK,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, 2, availableSeats(t, app.DB, TwoSeatShowtimeId))
			},
		},
		{
			Name:             "bob gets a seat",
			Method:           http.MethodPost,
			URL:              "/api/booking",
			Body:             bookingBody(BobUserId, TwoSeatShowtimeId, 1),
			Headers:          bob,
			ExpectedStatus:   http.StatusCreated,
			ExpectedResponse: `{"booking": {"user_id": 3, "seats": 1, "status": "pending"}}`,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, 1, availableSeats(t, app.DB, TwoSeatShowtimeId))
				assert.Equal(t, 1, heldSeats(t, app.DB, TwoSeatShowtimeId))
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *BookingTestSuite) TestCreateBookingRejections() {
	alice := s.authHeader(AliceUserId)

	unchanged := func(t testing.TB, app *TestApp, res *http.Response) {
		assert.Equal(t, 2, availableSeats(t, app.DB, TwoSeatShowtimeId))
		assert.Empty(t, app.Publisher.Events())
	}

	scenarios := []Scenario{
		{
			Name:           "zero seats",
			Method:         http.MethodPost,
			URL:            "/api/booking",
			Body:           bookingBody(AliceUserId, TwoSeatShowtimeId, 0),
			Headers:        alice,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"success": false,
				"message": "One or more fields are invalid",
				"validationErrors": [{"field": "seats", "issue": "seats must be greater than 0"}]
			}`,
			AfterTestFunc: unchanged,
		},
		{
			Name:           "negative seats",
			Method:         http.MethodPost,
			URL:            "/api/booking",
			Body:           bookingBody(AliceUserId, TwoSeatShowtimeId, -1),
			Headers:        alice,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"validationErrors": [{"field": "seats", "issue": "seats must be greater than 0"}]
			}`,
			AfterTestFunc: unchanged,
		},
		{
			Name:             "unknown showtime",
			Method:           http.MethodPost,
			URL:              "/api/booking",
			Body:             bookingBody(AliceUserId, 999, 1),
			Headers:          alice,
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "Showtime not found"}`,
			AfterTestFunc:    unchanged,
		},
		{
			Name:             "unknown user rolls the seat debit back",
			Method:           http.MethodPost,
			URL:              "/api/booking",
			Body:             bookingBody(999, TwoSeatShowtimeId, 1),
			Headers:          alice,
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "User not found"}`,
			AfterTestFunc:    unchanged,
		},
		{
			Name:             "more seats than the showtime has",
			Method:           http.MethodPost,
			URL:              "/api/booking",
			Body:             bookingBody(AliceUserId, TwoSeatShowtimeId, 3),
			Headers:          alice,
			ExpectedStatus:   http.StatusConflict,
			ExpectedResponse: `{"message": "Not enough seats"}`,
			AfterTestFunc:    unchanged,
		},
		{
			Name:             "anonymous",
			Method:           http.MethodPost,
			URL:              "/api/booking",
			Body:             bookingBody(AliceUserId, TwoSeatShowtimeId, 1),
			ExpectedStatus:   http.StatusUnauthorized,
			ExpectedResponse: `{"message": "You must be authenticated to access this resource"}`,
			AfterTestFunc:    unchanged,
		},
		{
			Name:             "confirm unknown booking",
			Method:           http.MethodPost,
			URL:              "/api/booking/12345/confirm",
			Headers:          alice,
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "Booking not found"}`,
		},
		{
			Name:             "cancel unknown booking",
			Method:           http.MethodPost,
			URL:              "/api/booking/12345/cancel",
			Headers:          alice,
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "Booking not found"}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

// TestConcurrentBookingsNeverOversell fires more requests than a showtime can
// hold. Exactly floor(capacity/seats) of them may succeed.
func (s *BookingTestSuite) TestConcurrentBookingsNeverOversell() {
	const (
		capacity = 10
		seats    = 3
		requests = 25
	)

	token := s.tokenFor(AliceUserId)
	handler := s.app.App.Routes()

	var created, rejected atomic.Int32

	g, _ := errgroup.WithContext(context.Background())

	for range requests {
		g.Go(func() error {
			req := httptest.NewRequest(http.MethodPost, "/api/booking", bookingBody(AliceUserId, TenSeatShowtimeId, seats))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			switch rec.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				rejected.Add(1)
			default:
				return fmt.Errorf("unexpected status %d: %s", rec.Code, rec.Body.String())
			}

			return nil
		})
	}

	s.Require().NoError(g.Wait())
	s.app.App.Wait()

	s.Equal(int32(capacity/seats), created.Load())
	s.Equal(int32(requests-capacity/seats), rejected.Load())
	s.Equal(capacity%seats, availableSeats(s.T(), s.app.DB, TenSeatShowtimeId))
	s.Equal(capacity-capacity%seats, heldSeats(s.T(), s.app.DB, TenSeatShowtimeId))
}

// TestConcurrentCancelReleasesOnce races many cancels of the same booking.
func (s *BookingTestSuite) TestConcurrentCancelReleasesOnce() {
	bookingID := insertBooking(s.T(), s.app.DB, BobUserId, TenSeatShowtimeId, 4)
	s.Require().Equal(6, availableSeats(s.T(), s.app.DB, TenSeatShowtimeId))

	token := s.tokenFor(BobUserId)
	handler := s.app.App.Routes()

	var released, noop atomic.Int32

	var g errgroup.Group

	for range 10 {
		g.Go(func() error {
			req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/booking/%d/cancel", bookingID), nil)
			req.Header.Set("Authorization", "Bearer "+token)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				return fmt.Errorf("unexpected status %d: %s", rec.Code, rec.Body.String())
			}

			var resp struct {
				Message string `json:"message"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				return err
			}

			switch resp.Message {
			case "Booking cancelled and seats released":
				released.Add(1)
			case "Already cancelled":
				noop.Add(1)
			default:
				return fmt.Errorf("unexpected message %q", resp.Message)
			}

			return nil
		})
	}

	s.Require().NoError(g.Wait())
	s.app.App.Wait()

	s.Equal(int32(1), released.Load())
	s.Equal(int32(9), noop.Load())
	s.Equal(10, availableSeats(s.T(), s.app.DB, TenSeatShowtimeId))
}

func (s *BookingTestSuite) TestBookingQueries() {
	first := insertBooking(s.T(), s.app.DB, AliceUserId, FiftySeatShowtimeId, 2)
	insertBooking(s.T(), s.app.DB, BobUserId, FiftySeatShowtimeId, 1)
	third := insertBooking(s.T(), s.app.DB, AliceUserId, TenSeatShowtimeId, 1)

	_, err := s.app.DB.Exec(context.Background(), "UPDATE bookings SET status = 'confirmed' WHERE id = $1", third)
	s.Require().NoError(err)

	alice := s.authHeader(AliceUserId)
	admin := s.authHeader(AdminUserId)

	scenarios := []Scenario{
		{
			Name:           "booking details carry the showtime and the movie",
			Method:         http.MethodGet,
			URL:            fmt.Sprintf("/api/booking/%d", first),
			Headers:        alice,
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"booking": {
					"id": 1,
					"seats": 2,
					"status": "pending",
					"show_date": "2025-06-01",
					"show_time": "22:00:00",
					"movie_id": 1,
					"title": "Alien",
					"poster": "alien.jpg"
				}
			}`,
		},
		{
			Name:             "filter by user",
			Method:           http.MethodGet,
			URL:              fmt.Sprintf("/api/booking?user_id=%d", AliceUserId),
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"count": 2}`,
		},
		{
			Name:             "filter by showtime and status",
			Method:           http.MethodGet,
			URL:              fmt.Sprintf("/api/booking?showtime_id=%d&status=pending", FiftySeatShowtimeId),
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"count": 2}`,
		},
		{
			Name:             "invalid status filter",
			Method:           http.MethodGet,
			URL:              "/api/booking?status=refunded",
			Headers:          alice,
			ExpectedStatus:   http.StatusBadRequest,
			ExpectedResponse: `{
				"message": "One or more fields are invalid",
				"validationErrors": [{"field": "status", "issue": "status must be one of pending, confirmed, cancelled"}]
			}`,
		},
		{
			Name:             "booking id out of range",
			Method:           http.MethodGet,
			URL:              "/api/booking/9999999999",
			Headers:          alice,
			ExpectedStatus:   http.StatusBadRequest,
			ExpectedResponse: `{"message": "invalid id parameter"}`,
		},
		{
			Name:             "own history, newest first",
			Method:           http.MethodGet,
			URL:              "/api/me/booking",
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"page": 1, "limit": 20, "count": 2, "bookings": [{"id": 3}, {"id": 1}]}`,
		},
		{
			Name:             "own history filtered by status",
			Method:           http.MethodGet,
			URL:              "/api/me/booking?status=confirmed",
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"count": 1, "bookings": [{"id": 3, "status": "confirmed"}]}`,
		},
		{
			Name:             "history paging",
			Method:           http.MethodGet,
			URL:              "/api/me/booking?page=2&limit=1",
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"page": 2, "limit": 1, "count": 1, "bookings": [{"id": 1}]}`,
		},
		{
			Name:             "unparsable paging falls back to defaults",
			Method:           http.MethodGet,
			URL:              "/api/me/booking?page=abc&limit=0",
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"page": 1, "limit": 20, "count": 2}`,
		},
		{
			Name:             "history window in the past is empty",
			Method:           http.MethodGet,
			URL:              "/api/me/booking?from=2000-01-01&to=2000-12-31",
			Headers:          alice,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"count": 0, "bookings": []}`,
		},
		{
			Name:             "another user's history is forbidden",
			Method:           http.MethodGet,
			URL:              fmt.Sprintf("/api/users/%d/booking", BobUserId),
			Headers:          alice,
			ExpectedStatus:   http.StatusForbidden,
			ExpectedResponse: `{"message": "You do not have permission to access this resource"}`,
		},
		{
			Name:             "admins see anyone's history",
			Method:           http.MethodGet,
			URL:              fmt.Sprintf("/api/users/%d/booking", BobUserId),
			Headers:          admin,
			ExpectedStatus:   http.StatusOK,
			ExpectedResponse: `{"count": 1}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
