package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type UserService struct {
	users  domain.UserRepository
	logger *slog.Logger
}

func NewUserService(users domain.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// Register hashes plaintext into user and stores it. Users without roles get RoleUser.
func (s *UserService) Register(ctx context.Context, user *domain.User, plaintext string) error {
	err := user.Password.Set(plaintext)
	if err != nil {
		return err
	}

	if len(user.Roles) == 0 {
		user.AddRole(domain.RoleUser)
	}

	return s.users.Create(ctx, user)
}

func (s *UserService) Authenticate(ctx context.Context, email, plaintext string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			s.logger.Warn("login attempt for non-existent user")
			return nil, domain.ErrInvalidCredentials
		}

		return nil, err
	}

	ok, err := user.Password.Matches(plaintext)
	if err != nil {
		return nil, err
	}

	if !ok {
		s.logger.Warn("login failed due to incorrect password", "userId", user.ID)
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	s.logger.Info("deleting user", "id", id)

	return s.users.Delete(ctx, id)
}
