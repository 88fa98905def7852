package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-booking-api/internal/domain"
	"github.com/metinatakli/movie-booking-api/internal/repository"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":  {},
	"requestId":  {},
	"created_at": {},
	"booked_at":  {},
	"token":      {},
	"expires_at": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// compareResponse checks the keys named in expectedResponse. Keys the
// expectation leaves out are not compared.
func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	t.Helper()

	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	pruned := prune(expected, actual)

	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, pruned, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func prune(expected, actual any) any {
	switch want := expected.(type) {
	case map[string]any:
		got, ok := actual.(map[string]any)
		if !ok {
			return actual
		}

		out := make(map[string]any, len(want))
		for k, v := range want {
			if gv, ok := got[k]; ok {
				out[k] = prune(v, gv)
			}
		}
		return out
	case []any:
		got, ok := actual.([]any)
		if !ok || len(got) != len(want) {
			return actual
		}

		out := make([]any, len(got))
		for i := range got {
			out[i] = prune(want[i], got[i])
		}
		return out
	default:
		return actual
	}
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, path string) {
	t.Helper()

	query, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), string(query))
	require.NoError(t, err)
}

// resetState truncates every table and seeds the users and the catalog.
func resetState(t testing.TB, app *TestApp) {
	t.Helper()

	executeSQLFile(t, app.DB, "testdata/reset.sql")

	users := repository.NewPostgresUserRepository(app.DB)
	for _, seed := range seedUsers {
		user := domain.User{
			Nickname: seed.Nickname,
			Username: seed.Username,
			Email:    seed.Email,
			Role:     seed.Role,
		}
		require.NoError(t, user.Password.Set(TestUserPassword))
		require.NoError(t, users.Create(context.Background(), &user))
	}

	executeSQLFile(t, app.DB, "testdata/catalog.sql")

	require.NoError(t, app.Redis.FlushDB(context.Background()).Err())
	app.Mailer.Reset()
	app.Publisher.Reset()
}

func availableSeats(t testing.TB, db *pgxpool.Pool, showtimeID int) int {
	t.Helper()

	var seats int
	err := db.QueryRow(context.Background(),
		"SELECT available_seats FROM showtimes WHERE id = $1", showtimeID).Scan(&seats)
	require.NoError(t, err)

	return seats
}

func bookingStatus(t testing.TB, db *pgxpool.Pool, bookingID int) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)

	return status
}

// heldSeats sums the seats of the pending and confirmed bookings of a
// showtime.
func heldSeats(t testing.TB, db *pgxpool.Pool, showtimeID int) int {
	t.Helper()

	var seats int
	err := db.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(seats), 0) FROM bookings
		WHERE showtime_id = $1 AND status IN ('pending', 'confirmed')`, showtimeID).Scan(&seats)
	require.NoError(t, err)

	return seats
}

// insertBooking books seats straight through the repository, so the ledger
// is debited exactly as the handler would do it.
func insertBooking(t testing.TB, db *pgxpool.Pool, userID, showtimeID, seats int) int {
	t.Helper()

	repo := repository.NewPostgresBookingRepository(db, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	booking := domain.Booking{UserID: userID, ShowtimeID: showtimeID, Seats: seats}
	require.NoError(t, repo.Create(context.Background(), &booking))

	return booking.ID
}
