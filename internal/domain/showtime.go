package domain

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

// DefaultShowtimeCapacity is the seat count a showtime starts with when the
// caller does not give one.
const DefaultShowtimeCapacity = 50

var (
	hhmmRgx   = regexp.MustCompile(`^\d{2}:\d{2}$`)
	hhmmssRgx = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

type Showtime struct {
	ID             int
	MovieID        int
	ShowDate       time.Time
	ShowTime       string
	Theater        *string
	AvailableSeats int
}

// ShowtimeDetail is a showtime joined with its movie.
type ShowtimeDetail struct {
	Showtime
	Title    string
	Genre    *string
	Duration int
	Poster   *string
	Review   *string
}

type ShowtimeFilters struct {
	MovieID *int
	Date    *time.Time
}

// ShowtimeUpdate holds the columns of a partial update; nil fields are left
// untouched. ClearTheater sets theater to NULL.
type ShowtimeUpdate struct {
	MovieID        *int
	ShowDate       *time.Time
	ShowTime       *string
	AvailableSeats *int
	Theater        *string
	ClearTheater   bool
}

func (u ShowtimeUpdate) Empty() bool {
	return u.MovieID == nil && u.ShowDate == nil && u.ShowTime == nil &&
		u.AvailableSeats == nil && u.Theater == nil && !u.ClearTheater
}

// NormalizeShowTime accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func NormalizeShowTime(t string) (string, error) {
	switch {
	case hhmmRgx.MatchString(t):
		t += ":00"
	case hhmmssRgx.MatchString(t):
	default:
		return "", fmt.Errorf("show_time must be HH:MM or HH:MM:SS")
	}

	if _, err := time.Parse(time.TimeOnly, t); err != nil {
		return "", fmt.Errorf("show_time must be HH:MM or HH:MM:SS")
	}

	return t, nil
}

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *Showtime) error
	GetAll(ctx context.Context, filters ShowtimeFilters) ([]ShowtimeDetail, error)
	GetById(ctx context.Context, id int) (*ShowtimeDetail, error)
	Update(ctx context.Context, id int, update ShowtimeUpdate) error
	Delete(ctx context.Context, id int) error
}
