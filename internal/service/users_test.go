package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceRegister(t *testing.T) {
	var created *domain.User

	svc := NewUserService(&mocks.MockUserRepo{
		CreateFunc: func(ctx context.Context, user *domain.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	user := &domain.User{FirstName: "Freddie", LastName: "Mercury", Email: "freddie@example.com"}

	err := svc.Register(context.Background(), user, "Pass123!@#")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, []domain.Role{domain.RoleUser}, created.Roles)

	ok, err := created.Password.Matches("Pass123!@#")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserServiceAuthenticate(t *testing.T) {
	stored := &domain.User{ID: 2, Email: "brian@example.com", Roles: []domain.Role{domain.RoleUser}}
	require.NoError(t, stored.Password.Set("Queen123!"))

	tests := []struct {
		name      string
		email     string
		password  string
		findFunc  func(ctx context.Context, email string) (*domain.User, error)
		wantErr   error
		wantStore bool
	}{
		{
			name:     "valid credentials",
			email:    "brian@example.com",
			password: "Queen123!",
			findFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return stored, nil
			},
		},
		{
			name:     "wrong password",
			email:    "brian@example.com",
			password: "Queen123?",
			findFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return stored, nil
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "roger@example.com",
			password: "Queen123!",
			findFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:     "store failure",
			email:    "brian@example.com",
			password: "Queen123!",
			findFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, domain.NewDataAccessError("find user by email", fmt.Errorf("timeout"))
			},
			wantStore: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(&mocks.MockUserRepo{FindByEmailFunc: tt.findFunc},
				slog.New(slog.NewTextHandler(io.Discard, nil)))

			user, err := svc.Authenticate(context.Background(), tt.email, tt.password)

			switch {
			case tt.wantStore:
				assert.True(t, domain.IsDataAccessError(err))
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			default:
				require.NoError(t, err)
				assert.Equal(t, 2, user.ID)
			}
		})
	}
}
