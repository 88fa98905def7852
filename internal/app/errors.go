package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-booking-api/api"
	appvalidator "github.com/metinatakli/movie-booking-api/internal/validator"
)

const (
	ErrInternalServer      = "The server encountered a problem and could not process your request"
	ErrNotFound            = "The requested resource not found"
	ErrMethodNotAllowed    = "The method is not supported for this resource"
	ErrUnauthorizedAccess  = "You must be authenticated to access this resource"
	ErrInvalidToken        = "Invalid or expired authentication token"
	ErrInvalidCredentials  = "Invalid username or password"
	ErrForbidden           = "You do not have permission to access this resource"
	ErrFailedValidation    = "One or more fields are invalid"
	ErrBookingNotFound     = "Booking not found"
	ErrShowtimeNotFound    = "Showtime not found"
	ErrMovieNotFound       = "Movie not found"
	ErrUserNotFound        = "User not found"
	ErrNotEnoughSeats      = "Not enough seats"
	ErrConfirmCancelled    = "Cannot confirm a cancelled booking"
	ErrUserExists          = "Email or username already exists"
	ErrDuplicateShowtime   = "Showtime already exists for this movie at that date/time"
	ErrShowtimeHasBookings = "Showtime still has bookings"
	ErrMovieHasShowtimes   = "Movie still has showtimes"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Success:   false,
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusConflict, message)
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorizedAccess)
}

func (app *Application) invalidAuthenticationTokenResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.errorResponse(w, r, http.StatusUnauthorized, ErrInvalidToken)
}

func (app *Application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrInvalidCredentials)
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, ErrForbidden)
}

// failedValidationResponse reports validator errors field by field. Anything
// else is treated as a plain bad request.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ErrorResponse{
		Success:          false,
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, 0, len(validationErrs)),
	}

	for _, fieldErr := range validationErrs {
		resp.ValidationErrors = append(resp.ValidationErrors, api.ValidationError{
			Field: fieldErr.Field(),
			Issue: fmt.Sprintf("%s %s", fieldErr.Field(), appvalidator.ValidationMessage(fieldErr)),
		})
	}

	err = app.writeJSON(w, http.StatusBadRequest, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// paramErrorResponse handles parameters the router could not bind to their
// declared types.
func (app *Application) paramErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *api.InvalidParamFormatError
	if errors.As(err, &formatErr) {
		app.badRequestResponse(w, r, fmt.Errorf("invalid %s parameter", formatErr.ParamName))
		return
	}

	app.badRequestResponse(w, r, err)
}
