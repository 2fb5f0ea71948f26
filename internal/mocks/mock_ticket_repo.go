package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTicketRepo struct {
	mock.Mock
}

func (m *MockTicketRepo) Create(ctx context.Context, ticket *domain.Ticket, showID int) error {
	args := m.Called(ctx, ticket, showID)
	return args.Error(0)
}

func (m *MockTicketRepo) Update(ctx context.Context, ticket *domain.Ticket, showID int) error {
	args := m.Called(ctx, ticket, showID)
	return args.Error(0)
}

func (m *MockTicketRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTicketRepo) Find(ctx context.Context, id int) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepo) FindAll(ctx context.Context) ([]domain.Ticket, error) {
	args := m.Called(ctx)
	return tickets(args.Get(0)), args.Error(1)
}

func (m *MockTicketRepo) FindByUser(ctx context.Context, userID int) ([]domain.Ticket, error) {
	args := m.Called(ctx, userID)
	return tickets(args.Get(0)), args.Error(1)
}

func (m *MockTicketRepo) FindByShow(ctx context.Context, showID int) ([]domain.Ticket, error) {
	args := m.Called(ctx, showID)
	return tickets(args.Get(0)), args.Error(1)
}

func (m *MockTicketRepo) FindByState(ctx context.Context, sold bool) ([]domain.Ticket, error) {
	args := m.Called(ctx, sold)
	return tickets(args.Get(0)), args.Error(1)
}

func (m *MockTicketRepo) BuyTicket(ctx context.Context, id, userID int) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockTicketRepo) BuyTicketIfAvailable(ctx context.Context, id, userID int) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func tickets(v any) []domain.Ticket {
	if v == nil {
		return nil
	}
	return v.([]domain.Ticket)
}
