package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/movie-booking-api/api"
	"github.com/metinatakli/movie-booking-api/internal/auth"
	"github.com/metinatakli/movie-booking-api/internal/domain"
	"github.com/metinatakli/movie-booking-api/internal/mailer"
	"github.com/metinatakli/movie-booking-api/internal/mocks"
	"github.com/metinatakli/movie-booking-api/internal/validator"
)

const testJwtSecret = "test-secret-with-enough-entropy"

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator:    validator.NewValidator(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		issuer:       auth.NewIssuer(testJwtSecret, time.Hour),
		mailer:       mailer.NewMockMailer(),
		publisher:    &mocks.MockPublisher{},
		userRepo:     &mocks.MockUserRepo{},
		tokenRepo:    &mocks.MockTokenRepo{},
		movieRepo:    &mocks.MockMovieRepo{},
		showtimeRepo: &mocks.MockShowtimeRepo{},
		bookingRepo:  &mocks.MockBookingRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// serve runs the request through the full router so authentication and role
// checks apply.
func serve(app *Application, w *httptest.ResponseRecorder, r *http.Request) {
	app.Routes().ServeHTTP(w, r)
}

// authenticateAs signs a token for the given user and attaches it to r.
func authenticateAs(t *testing.T, app *Application, r *http.Request, userID int, role domain.Role) *http.Request {
	token, err := app.issuer.Issue(&domain.User{ID: userID, Nickname: "tester", Role: role})
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	r.Header.Set("Authorization", "Bearer "+token.Plaintext)
	return r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if resp.Success {
		t.Errorf("Error response has success = true")
	}

	if tt.wantErrMessage == "" {
		return
	}

	if len(resp.ValidationErrors) > 0 {
		issues := make(map[string]bool)
		for _, vErr := range resp.ValidationErrors {
			issues[vErr.Issue] = true
		}

		if !issues[tt.wantErrMessage] {
			t.Errorf("Expected validation issue '%s' not found in %+v", tt.wantErrMessage, resp.ValidationErrors)
		}

		return
	}

	if resp.Message != tt.wantErrMessage {
		t.Errorf("Error message = %v, want %v", resp.Message, tt.wantErrMessage)
	}
}

func ptr[T any](v T) *T {
	return &v
}

func httptestRecorder(status int, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	w.Code = status
	w.Body = bytes.NewBuffer(body)
	return w
}
