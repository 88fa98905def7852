package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/movie-booking-api/api"
	"github.com/metinatakli/movie-booking-api/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeMovieList(w, r, movies)
}

func (app *Application) SearchMovies(w http.ResponseWriter, r *http.Request, params api.SearchMoviesParams) {
	search := domain.MovieSearch{
		Title: trimmed(params.Title),
		Genre: trimmed(params.Genre),
	}

	if search.Title == "" && search.Genre == "" {
		app.badRequestResponse(w, r, errors.New("title or genre query parameter is required"))
		return
	}

	movies, err := app.movieRepo.Search(r.Context(), search)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeMovieList(w, r, movies)
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request, id int32) {
	movie, err := app.movieRepo.GetById(r.Context(), int(id))
	if err != nil {
		app.movieErrorResponse(w, r, err)
		return
	}

	app.writeMovie(w, r, http.StatusOK, "", movie)
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.MovieRequest

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

	movie := toDomainMovie(input)

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("movie created", "movie_id", movie.ID)

	app.writeMovie(w, r, http.StatusCreated, "Movie created", movie)
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, id int32) {
	var input api.MovieRequest

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

	movie := toDomainMovie(input)
	movie.ID = int(id)

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		app.movieErrorResponse(w, r, err)
		return
	}

	app.writeMovie(w, r, http.StatusOK, "Movie updated", movie)
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, id int32) {
	err := app.movieRepo.Delete(r.Context(), int(id))
	if err != nil {
		app.movieErrorResponse(w, r, err)
		return
	}

	app.writeMessage(w, r, http.StatusOK, "Movie deleted")
}

func (app *Application) movieErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrMovieNotFound):
		app.errorResponse(w, r, http.StatusNotFound, ErrMovieNotFound)
	case errors.Is(err, domain.ErrMovieInUse):
		app.conflictResponse(w, r, ErrMovieHasShowtimes)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) writeMovie(w http.ResponseWriter, r *http.Request, status int, message string, movie *domain.Movie) {
	resp := api.MovieResponse{
		Success: true,
		Message: message,
		Movie:   toApiMovie(movie),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) writeMovieList(w http.ResponseWriter, r *http.Request, movies []*domain.Movie) {
	resp := api.MovieListResponse{
		Success: true,
		Movies:  make([]api.Movie, len(movies)),
		Count:   len(movies),
	}

	for i, movie := range movies {
		resp.Movies[i] = toApiMovie(movie)
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toDomainMovie(input api.MovieRequest) *domain.Movie {
	return &domain.Movie{
		Title:    input.Title,
		Genre:    input.Genre,
		Duration: int(input.Duration),
		Poster:   input.Poster,
		Review:   input.Review,
	}
}

func toApiMovie(movie *domain.Movie) api.Movie {
	if movie == nil {
		return api.Movie{}
	}

	return api.Movie{
		Id:        movie.ID,
		Title:     movie.Title,
		Genre:     movie.Genre,
		Duration:  movie.Duration,
		Poster:    movie.Poster,
		Review:    movie.Review,
		CreatedAt: movie.CreatedAt,
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}
