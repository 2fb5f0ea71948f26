package integration_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/stretchr/testify/require"
)

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE TABLE tickets, shows, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func createUser(t testing.TB, users domain.UserRepository, email, password string, roles ...domain.Role) *domain.User {
	t.Helper()

	user := &domain.User{
		FirstName: TestUserFirstName,
		LastName:  TestUserLastName,
		Email:     email,
		Roles:     roles,
	}
	require.NoError(t, user.Password.Set(password))
	require.NoError(t, users.Create(context.Background(), user))

	return user
}

// uniqueEmail returns an address no other fixture uses.
func uniqueEmail() string {
	return uuid.NewString() + "@example.com"
}

func createShow(t testing.TB, shows domain.ShowRepository, day domain.DayOfWeek, time domain.TimeOfDay, movie string) *domain.Show {
	t.Helper()

	show := &domain.Show{
		Day:     day,
		Time:    time,
		Movie:   movie,
		Tickets: testHall.Tickets(),
	}
	require.NoError(t, shows.Create(context.Background(), show))

	return show
}

func countRows(t testing.TB, db *pgxpool.Pool, table string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count)
	require.NoError(t, err)

	return count
}
