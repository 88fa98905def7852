package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/metinatakli/movie-booking-api/api"
	"github.com/metinatakli/movie-booking-api/internal/domain"
	"github.com/metinatakli/movie-booking-api/internal/events"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	msgBookingCreated   = "Booking created (pending)"
	msgBookingConfirmed = "Booking confirmed"
	msgAlreadyConfirmed = "Already confirmed"
	msgBookingCancelled = "Booking cancelled and seats released"
	msgAlreadyCancelled = "Already cancelled"
	msgBookingDeleted   = "Booking deleted"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	booking := domain.Booking{
		UserID:     int(input.UserId),
		ShowtimeID: int(input.ShowtimeId),
		Seats:      int(input.Seats),
		SeatLabels: input.SeatLabels,
	}

	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientSeats) {
			logger.Info("booking rejected", "showtime_id", booking.ShowtimeID, "seats", booking.Seats)
			app.metrics.bookingRejected(r.Context(), booking.ShowtimeID)
		}

		app.bookingErrorResponse(w, r, err)
		return
	}

	logger.Info("booking created", "booking_id", booking.ID, "showtime_id", booking.ShowtimeID, "seats", booking.Seats)
	app.metrics.bookingCreated(r.Context(), booking.ShowtimeID)
	app.publishBookingEvent(r, events.BookingCreated, booking, 0)

	resp := api.BookingResponse{
		Success: true,
		Message: msgBookingCreated,
		Booking: toApiBooking(booking),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ConfirmBooking(w http.ResponseWriter, r *http.Request, id int32) {
	result, err := app.bookingRepo.Confirm(r.Context(), int(id))
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	message := msgAlreadyConfirmed

	if result.Changed {
		message = msgBookingConfirmed

		app.contextGetLogger(r).Info("booking confirmed", "booking_id", id)
		app.publishBookingEvent(r, events.BookingConfirmed, result.Booking, 0)
		app.sendBookingConfirmation(r, result.Booking)
	}

	app.writeMessage(w, r, http.StatusOK, message)
}

func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request, id int32) {
	result, err := app.bookingRepo.Cancel(r.Context(), int(id))
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	message := msgAlreadyCancelled

	if result.Changed {
		message = msgBookingCancelled

		app.contextGetLogger(r).Info("booking cancelled", "booking_id", id, "seats_released", result.SeatsReleased)
		app.metrics.bookingCancelled(r.Context(), result.Booking.ShowtimeID)
		app.publishBookingEvent(r, events.BookingCancelled, result.Booking, result.SeatsReleased)
	}

	app.writeMessage(w, r, http.StatusOK, message)
}

func (app *Application) DeleteBooking(w http.ResponseWriter, r *http.Request, id int32) {
	result, err := app.bookingRepo.Delete(r.Context(), int(id))
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("booking deleted", "booking_id", id, "seats_released", result.SeatsReleased)
	app.publishBookingEvent(r, events.BookingDeleted, result.Booking, result.SeatsReleased)

	app.writeMessage(w, r, http.StatusOK, msgBookingDeleted)
}

func (app *Application) GetBookingById(w http.ResponseWriter, r *http.Request, id int32) {
	booking, err := app.bookingRepo.GetById(r.Context(), int(id))
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	resp := api.BookingResponse{
		Success: true,
		Booking: toApiBookingDetail(*booking),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookings(w http.ResponseWriter, r *http.Request, params api.GetBookingsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.BookingFilters{
		UserID:     intPtr(params.UserId),
		ShowtimeID: intPtr(params.ShowtimeId),
		Status:     statusPtr(params.Status),
	}

	bookings, err := app.bookingRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Success:  true,
		Bookings: toApiBookingDetails(bookings),
		Count:    len(bookings),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMyBookingHistory(w http.ResponseWriter, r *http.Request, params api.GetMyBookingHistoryParams) {
	app.bookingHistory(w, r, contextGetClaims(r).UserID, params)
}

// GetUserBookingHistory is open to the user themselves and to admins.
func (app *Application) GetUserBookingHistory(w http.ResponseWriter, r *http.Request, id int32, params api.GetUserBookingHistoryParams) {
	claims := contextGetClaims(r)
	if claims.UserID != int(id) && claims.Role != domain.RoleAdmin {
		app.forbiddenResponse(w, r)
		return
	}

	app.bookingHistory(w, r, int(id), api.GetMyBookingHistoryParams(params))
}

func (app *Application) bookingHistory(w http.ResponseWriter, r *http.Request, userID int, params api.GetMyBookingHistoryParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.BookingHistoryFilters{
		UserID:     userID,
		Status:     statusPtr(params.Status),
		Pagination: domain.NewPagination(readIntParam(params.Page), readIntParam(params.Limit)),
	}

	if params.From != nil {
		from := params.From.Time
		filters.From = &from
	}

	// to covers the whole day it names
	if params.To != nil {
		to := params.To.Time.Add(24*time.Hour - time.Microsecond)
		filters.To = &to
	}

	if filters.From != nil && filters.To != nil && filters.From.After(*filters.To) {
		app.badRequestResponse(w, r, errors.New("from must not be after to"))
		return
	}

	bookings, err := app.bookingRepo.GetHistoryByUserId(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingHistoryResponse{
		Success:  true,
		Bookings: toApiBookingDetails(bookings),
		Page:     filters.Pagination.Page,
		Limit:    filters.Pagination.Limit,
		Count:    len(bookings),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) bookingErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		app.errorResponse(w, r, http.StatusNotFound, ErrBookingNotFound)
	case errors.Is(err, domain.ErrShowtimeNotFound):
		app.errorResponse(w, r, http.StatusNotFound, ErrShowtimeNotFound)
	case errors.Is(err, domain.ErrUserNotFound):
		app.errorResponse(w, r, http.StatusNotFound, ErrUserNotFound)
	case errors.Is(err, domain.ErrInsufficientSeats):
		app.conflictResponse(w, r, ErrNotEnoughSeats)
	case errors.Is(err, domain.ErrInvalidTransition):
		app.conflictResponse(w, r, ErrConfirmCancelled)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) writeMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	err := app.writeJSON(w, status, api.MessageResponse{Success: true, Message: message}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func intPtr(n *int32) *int {
	if n == nil {
		return nil
	}

	v := int(*n)
	return &v
}

// statusPtr expects s to have passed the booking_status validator.
func statusPtr(s *string) *domain.BookingStatus {
	if s == nil || *s == "" {
		return nil
	}

	status := domain.BookingStatus(*s)
	return &status
}

func toApiBooking(booking domain.Booking) api.Booking {
	return api.Booking{
		Id:         booking.ID,
		UserId:     booking.UserID,
		ShowtimeId: booking.ShowtimeID,
		Seats:      booking.Seats,
		SeatLabels: booking.SeatLabels,
		Status:     string(booking.Status),
		BookedAt:   booking.BookedAt,
	}
}

func toApiBookingDetail(booking domain.BookingDetail) api.Booking {
	resp := toApiBooking(booking.Booking)

	resp.ShowDate = &openapi_types.Date{Time: booking.ShowDate}
	resp.ShowTime = &booking.ShowTime
	resp.MovieId = &booking.MovieID
	resp.Title = &booking.MovieTitle
	resp.Poster = booking.MoviePoster

	return resp
}

func toApiBookingDetails(bookings []domain.BookingDetail) []api.Booking {
	resp := make([]api.Booking, len(bookings))

	for i, booking := range bookings {
		resp[i] = toApiBookingDetail(booking)
	}

	return resp
}
