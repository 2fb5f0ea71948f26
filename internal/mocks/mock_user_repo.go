package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	CreateFunc      func(ctx context.Context, user *domain.User) error
	DeleteFunc      func(ctx context.Context, id int) error
	FindFunc        func(ctx context.Context, id int) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FindAllFunc     func(ctx context.Context) ([]domain.User, error)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

func (m *MockUserRepo) Find(ctx context.Context, id int) (*domain.User, error) {
	return m.FindFunc(ctx, id)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *MockUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	return m.FindAllFunc(ctx)
}
