package mocks

import (
	"context"

	"github.com/metinatakli/movie-booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) Confirm(ctx context.Context, id int) (*domain.BookingTransition, error) {
	return m.transition(m.Called(ctx, id))
}

func (m *MockBookingRepo) Cancel(ctx context.Context, id int) (*domain.BookingTransition, error) {
	return m.transition(m.Called(ctx, id))
}

func (m *MockBookingRepo) Delete(ctx context.Context, id int) (*domain.BookingTransition, error) {
	return m.transition(m.Called(ctx, id))
}

func (m *MockBookingRepo) transition(args mock.Arguments) (*domain.BookingTransition, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingTransition), args.Error(1)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.BookingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetail), args.Error(1)
}

func (m *MockBookingRepo) GetAll(ctx context.Context, filters domain.BookingFilters) ([]domain.BookingDetail, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}

func (m *MockBookingRepo) GetHistoryByUserId(
	ctx context.Context,
	filters domain.BookingHistoryFilters) ([]domain.BookingDetail, error) {

	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}
