package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

const (
	userColumns = `id, first_name, last_name, email, password_hash, roles`

	createUserSQL = `INSERT INTO users (first_name, last_name, email, password_hash, roles)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	updateUserSQL = `UPDATE users
		SET first_name = $1, last_name = $2, email = $3, password_hash = $4, roles = $5
		WHERE id = $6`
	deleteUserSQL      = `DELETE FROM users WHERE id = $1`
	findUserSQL        = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	findUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	findAllUsersSQL    = `SELECT ` + userColumns + ` FROM users ORDER BY last_name, first_name, id`
)

type PostgresUserRepository struct {
	store
}

func NewPostgresUserRepository(db *pgxpool.Pool, logger *slog.Logger) *PostgresUserRepository {
	return &PostgresUserRepository{
		store: newStore(db, logger, "user"),
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	p.logger.Info("creating new user")

	err := withConn(ctx, p.db, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx,
			createUserSQL,
			user.FirstName,
			user.LastName,
			user.Email,
			user.Password.Hash,
			roleNames(user.Roles)).Scan(&user.ID)
	})
	if err != nil {
		if isUniqueViolation(err) {
			p.logger.Warn("user already exists")
			return domain.ErrUserAlreadyExists
		}

		return p.fail("create user", err)
	}

	p.logger.Info("user is created", "id", user.ID)

	return nil
}

func (p *PostgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	p.logger.Info("updating user", "id", user.ID)

	err := withConn(ctx, p.db, func(conn *pgxpool.Conn) error {
		_, err := conn.Exec(ctx,
			updateUserSQL,
			user.FirstName,
			user.LastName,
			user.Email,
			user.Password.Hash,
			roleNames(user.Roles),
			user.ID)

		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}

		return p.fail("update user", err, "id", user.ID)
	}

	return nil
}

func (p *PostgresUserRepository) Delete(ctx context.Context, id int) error {
	p.logger.Info("deleting user", "id", id)

	_, err := p.exec(ctx, "delete user", deleteUserSQL, id)
	return err
}

func (p *PostgresUserRepository) Find(ctx context.Context, id int) (*domain.User, error) {
	return collectOne(ctx, p.store, "find user", findUserSQL, scanUser, id)
}

func (p *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return collectOne(ctx, p.store, "find user by email", findUserByEmailSQL, scanUser, email)
}

func (p *PostgresUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	return collect(ctx, p.store, "find all users", findAllUsersSQL, scanUser)
}

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var (
		user  domain.User
		roles []string
	)

	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password.Hash,
		&roles,
	)
	if err != nil {
		return user, err
	}

	for _, name := range roles {
		role, err := domain.ParseRole(name)
		if err != nil {
			return user, err
		}

		user.Roles = append(user.Roles, role)
	}

	return user, nil
}

func roleNames(roles []domain.Role) []string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}

	return names
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
