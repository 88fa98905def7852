package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID        int
	Title     string
	Genre     *string
	Duration  int
	Poster    *string
	Review    *string
	CreatedAt time.Time
}

type MovieSearch struct {
	Title string
	Genre string
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Search(ctx context.Context, search MovieSearch) ([]*Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
