package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/movie-booking-api/api"
	"github.com/metinatakli/movie-booking-api/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (app *Application) GetShowtimes(w http.ResponseWriter, r *http.Request, params api.GetShowtimesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.ShowtimeFilters{
		MovieID: intPtr(params.MovieId),
	}

	if params.Date != nil {
		filters.Date = &params.Date.Time
	}

	showtimes, err := app.showtimeRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{
		Success:   true,
		Showtimes: make([]api.Showtime, len(showtimes)),
		Count:     len(showtimes),
	}

	for i, showtime := range showtimes {
		resp.Showtimes[i] = toApiShowtimeDetail(showtime)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimeById(w http.ResponseWriter, r *http.Request, id int32) {
	app.writeShowtime(w, r, http.StatusOK, "", int(id))
}

func (app *Application) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowtimeRequest

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

	showTime, err := domain.NormalizeShowTime(input.ShowTime)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtime := domain.Showtime{
		MovieID:        int(input.MovieId),
		ShowDate:       input.ShowDate.Time,
		ShowTime:       showTime,
		Theater:        input.Theater,
		AvailableSeats: domain.DefaultShowtimeCapacity,
	}

	if input.AvailableSeats != nil {
		showtime.AvailableSeats = int(*input.AvailableSeats)
	}

	err = app.showtimeRepo.Create(r.Context(), &showtime)
	if err != nil {
		app.showtimeErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("showtime created", "showtime_id", showtime.ID, "movie_id", showtime.MovieID)

	app.writeShowtime(w, r, http.StatusCreated, "Showtime created", showtime.ID)
}

func (app *Application) UpdateShowtime(w http.ResponseWriter, r *http.Request, id int32) {
	var input api.UpdateShowtimeRequest

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

	update, err := toShowtimeUpdate(input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if update.Empty() {
		app.badRequestResponse(w, r, errors.New("no fields to update"))
		return
	}

	err = app.showtimeRepo.Update(r.Context(), int(id), update)
	if err != nil {
		app.showtimeErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("showtime updated", "showtime_id", id)

	app.writeShowtime(w, r, http.StatusOK, "Showtime updated", int(id))
}

func (app *Application) DeleteShowtime(w http.ResponseWriter, r *http.Request, id int32) {
	err := app.showtimeRepo.Delete(r.Context(), int(id))
	if err != nil {
		app.showtimeErrorResponse(w, r, err)
		return
	}

	app.writeMessage(w, r, http.StatusOK, "Showtime deleted")
}

func (app *Application) showtimeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrShowtimeNotFound):
		app.errorResponse(w, r, http.StatusNotFound, ErrShowtimeNotFound)
	case errors.Is(err, domain.ErrMovieNotFound):
		app.errorResponse(w, r, http.StatusNotFound, ErrMovieNotFound)
	case errors.Is(err, domain.ErrDuplicateShowtime):
		app.conflictResponse(w, r, ErrDuplicateShowtime)
	case errors.Is(err, domain.ErrShowtimeInUse):
		app.conflictResponse(w, r, ErrShowtimeHasBookings)
	case errors.Is(err, domain.ErrInsufficientSeats):
		app.badRequestResponse(w, r, errors.New("available_seats must not be negative"))
	default:
		app.serverErrorResponse(w, r, err)
	}
}

// writeShowtime reloads the showtime joined with its movie and writes it.
func (app *Application) writeShowtime(w http.ResponseWriter, r *http.Request, status int, message string, id int) {
	showtime, err := app.showtimeRepo.GetById(r.Context(), id)
	if err != nil {
		app.showtimeErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeResponse{
		Success:  true,
		Message:  message,
		Showtime: toApiShowtimeDetail(*showtime),
	}

	err = app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowtimeUpdate(input api.UpdateShowtimeRequest) (domain.ShowtimeUpdate, error) {
	update := domain.ShowtimeUpdate{
		MovieID:        intPtr(input.MovieId),
		AvailableSeats: intPtr(input.AvailableSeats),
	}

	if input.ShowDate != nil {
		update.ShowDate = &input.ShowDate.Time
	}

	if input.ShowTime != nil {
		showTime, err := domain.NormalizeShowTime(*input.ShowTime)
		if err != nil {
			return domain.ShowtimeUpdate{}, fmt.Errorf("invalid show_time: %w", err)
		}

		update.ShowTime = &showTime
	}

	if input.Theater != nil {
		if *input.Theater == "" {
			update.ClearTheater = true
		} else {
			update.Theater = input.Theater
		}
	}

	return update, nil
}

func toApiShowtimeDetail(showtime domain.ShowtimeDetail) api.Showtime {
	return api.Showtime{
		Id:             showtime.ID,
		MovieId:        showtime.MovieID,
		ShowDate:       openapi_types.Date{Time: showtime.ShowDate},
		ShowTime:       showtime.ShowTime,
		Theater:        showtime.Theater,
		AvailableSeats: showtime.AvailableSeats,
		Movie: &api.ShowtimeMovie{
			Title:    showtime.Title,
			Genre:    showtime.Genre,
			Duration: showtime.Duration,
			Poster:   showtime.Poster,
			Review:   showtime.Review,
		},
	}
}
