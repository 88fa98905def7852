package mocks

import (
	"context"

	"github.com/metinatakli/movie-booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockShowtimeRepo struct {
	mock.Mock
	domain.ShowtimeRepository
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime) error {
	args := m.Called(ctx, showtime)
	return args.Error(0)
}

func (m *MockShowtimeRepo) GetAll(ctx context.Context, filters domain.ShowtimeFilters) ([]domain.ShowtimeDetail, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShowtimeDetail), args.Error(1)
}

func (m *MockShowtimeRepo) GetById(ctx context.Context, id int) (*domain.ShowtimeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShowtimeDetail), args.Error(1)
}

func (m *MockShowtimeRepo) Update(ctx context.Context, id int, update domain.ShowtimeUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockShowtimeRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
