package app

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/movie-booking-api/internal/domain"
	"github.com/metinatakli/movie-booking-api/internal/events"
	"github.com/metinatakli/movie-booking-api/internal/mailer"
)

// publishBookingEvent announces a committed booking change. Publishing runs
// in the background and its failures are only logged.
func (app *Application) publishBookingEvent(r *http.Request, eventType events.EventType, booking domain.Booking, seatsReleased int) {
	if app.publisher == nil {
		return
	}

	logger := app.contextGetLogger(r)

	event := events.BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		ShowtimeID:    booking.ShowtimeID,
		Seats:         booking.Seats,
		SeatsReleased: seatsReleased,
		Status:        string(booking.Status),
		OccurredAt:    time.Now().UTC(),
	}

	app.background(r.Context(), func(ctx context.Context) {
		err := app.publisher.Publish(ctx, event)
		if err != nil {
			logger.Error("failed to publish booking event", "type", eventType, "booking_id", booking.ID, "error", err)
		}
	})
}

// sendBookingConfirmation e-mails the booking owner once a booking is
// confirmed.
func (app *Application) sendBookingConfirmation(r *http.Request, booking domain.Booking) {
	if app.mailer == nil {
		return
	}

	logger := app.contextGetLogger(r)

	app.background(r.Context(), func(ctx context.Context) {
		user, err := app.userRepo.GetById(ctx, booking.UserID)
		if err != nil {
			logger.Error("failed to load booking owner", "booking_id", booking.ID, "error", err)
			return
		}

		detail, err := app.bookingRepo.GetById(ctx, booking.ID)
		if err != nil {
			logger.Error("failed to load booking details", "booking_id", booking.ID, "error", err)
			return
		}

		data := mailer.BookingConfirmedData{
			Nickname:   user.Nickname,
			BookingID:  booking.ID,
			MovieTitle: detail.MovieTitle,
			ShowDate:   detail.ShowDate.Format(time.DateOnly),
			ShowTime:   detail.ShowTime,
			Seats:      booking.Seats,
		}

		if booking.SeatLabels != nil {
			data.SeatLabels = *booking.SeatLabels
		}

		err = app.mailer.Send(user.Email, mailer.BookingConfirmedTemplate, data)
		if err != nil {
			logger.Error("failed to send booking confirmation", "booking_id", booking.ID, "error", err)
			return
		}

		logger.Info("booking confirmation sent", "booking_id", booking.ID)
	})
}
