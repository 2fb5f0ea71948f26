package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockShowRepo struct {
	mock.Mock
}

func (m *MockShowRepo) Create(ctx context.Context, show *domain.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

func (m *MockShowRepo) Update(ctx context.Context, show *domain.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

func (m *MockShowRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShowRepo) Find(ctx context.Context, id int) (*domain.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Show), args.Error(1)
}

func (m *MockShowRepo) FindAll(ctx context.Context) ([]domain.Show, error) {
	args := m.Called(ctx)
	return shows(args.Get(0)), args.Error(1)
}

func (m *MockShowRepo) FindByDay(ctx context.Context, day domain.DayOfWeek) ([]domain.Show, error) {
	args := m.Called(ctx, day)
	return shows(args.Get(0)), args.Error(1)
}

func (m *MockShowRepo) FindByTime(ctx context.Context, time domain.TimeOfDay) ([]domain.Show, error) {
	args := m.Called(ctx, time)
	return shows(args.Get(0)), args.Error(1)
}

func (m *MockShowRepo) FindByDayAndTime(
	ctx context.Context,
	day domain.DayOfWeek,
	time domain.TimeOfDay) ([]domain.Show, error) {

	args := m.Called(ctx, day, time)
	return shows(args.Get(0)), args.Error(1)
}

func (m *MockShowRepo) FindByMovie(ctx context.Context, movie string) ([]domain.Show, error) {
	args := m.Called(ctx, movie)
	return shows(args.Get(0)), args.Error(1)
}

func (m *MockShowRepo) FindByTicket(ctx context.Context, ticketID int) (*domain.Show, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Show), args.Error(1)
}

func shows(v any) []domain.Show {
	if v == nil {
		return nil
	}
	return v.([]domain.Show)
}
