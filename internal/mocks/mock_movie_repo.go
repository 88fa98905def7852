package mocks

import (
	"context"

	"github.com/metinatakli/movie-booking-api/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	CreateFunc  func(ctx context.Context, movie *domain.Movie) error
	GetAllFunc  func(ctx context.Context) ([]*domain.Movie, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Movie, error)
	SearchFunc  func(ctx context.Context, search domain.MovieSearch) ([]*domain.Movie, error)
	UpdateFunc  func(ctx context.Context, movie *domain.Movie) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) Search(ctx context.Context, search domain.MovieSearch) ([]*domain.Movie, error) {
	return m.SearchFunc(ctx, search)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
