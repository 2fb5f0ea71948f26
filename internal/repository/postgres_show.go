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
	showSlotConstraint = "shows_day_time_key"

	showColumns = `id, day::text, time::text, movie`

	createShowSQL       = `INSERT INTO shows (day, time, movie) VALUES ($1, $2, $3) RETURNING id`
	createShowTicketSQL = `INSERT INTO tickets ("row", seat, price, sold, show_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	updateShowSQL       = `UPDATE shows SET day = $1, time = $2, movie = $3 WHERE id = $4`
	deleteShowSQL       = `DELETE FROM shows WHERE id = $1`
	findShowSQL         = `SELECT ` + showColumns + ` FROM shows WHERE id = $1`
	findAllShowsSQL     = `SELECT ` + showColumns + ` FROM shows ORDER BY day, time`
	findShowsByDaySQL   = `SELECT ` + showColumns + ` FROM shows WHERE day = $1 ORDER BY time`
	findShowsByTimeSQL  = `SELECT ` + showColumns + ` FROM shows WHERE time = $1 ORDER BY day`
	findShowsBySlotSQL  = `SELECT ` + showColumns + ` FROM shows WHERE day = $1 AND time = $2`
	findShowsByMovieSQL = `SELECT ` + showColumns + ` FROM shows WHERE UPPER(movie) LIKE UPPER($1) ORDER BY day, time`
	findShowByTicketSQL = `
		SELECT s.id, s.day::text, s.time::text, s.movie
		FROM shows s
		JOIN tickets t ON s.id = t.show_id
		WHERE t.id = $1
	`
)

type PostgresShowRepository struct {
	store
}

func NewPostgresShowRepository(db *pgxpool.Pool, logger *slog.Logger) *PostgresShowRepository {
	return &PostgresShowRepository{
		store: newStore(db, logger, "show"),
	}
}

// Create inserts the show and, in the same transaction, one batch with all of
// its tickets. On success show.ID and every ticket's ID and ShowID are set;
// on failure nothing is persisted and the IDs stay zero.
func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	p.logger.Info("creating new show", "day", show.Day, "time", show.Time, "tickets", len(show.Tickets))

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, createShowSQL, show.Day.String(), show.Time.String(), show.Movie).Scan(&show.ID)
		if err != nil {
			return err
		}

		if len(show.Tickets) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for i := range show.Tickets {
			ticket := &show.Tickets[i]

			batch.Queue(createShowTicketSQL, ticket.Row, ticket.Seat, ticket.Price, ticket.Sold, show.ID).
				QueryRow(func(row pgx.Row) error {
					return row.Scan(&ticket.ID)
				})
		}

		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		show.ID = 0
		for i := range show.Tickets {
			show.Tickets[i].ID = 0
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == showSlotConstraint {
			p.logger.Warn("show slot already taken", "day", show.Day, "time", show.Time)
			return domain.ErrShowSlotTaken
		}

		return p.fail("create show", err)
	}

	for i := range show.Tickets {
		show.Tickets[i].ShowID = show.ID
	}

	p.logger.Info("show is created", "id", show.ID)

	return nil
}

// Update overwrites day, time and movie. A missing id affects no rows and is not an error.
func (p *PostgresShowRepository) Update(ctx context.Context, show *domain.Show) error {
	p.logger.Info("updating show", "id", show.ID)

	_, err := p.exec(ctx, "update show", updateShowSQL, show.Day.String(), show.Time.String(), show.Movie, show.ID)
	return err
}

func (p *PostgresShowRepository) Delete(ctx context.Context, id int) error {
	p.logger.Info("deleting show", "id", id)

	_, err := p.exec(ctx, "delete show", deleteShowSQL, id)
	return err
}

func (p *PostgresShowRepository) Find(ctx context.Context, id int) (*domain.Show, error) {
	return collectOne(ctx, p.store, "find show", findShowSQL, scanShow, id)
}

func (p *PostgresShowRepository) FindAll(ctx context.Context) ([]domain.Show, error) {
	return collect(ctx, p.store, "find all shows", findAllShowsSQL, scanShow)
}

func (p *PostgresShowRepository) FindByDay(ctx context.Context, day domain.DayOfWeek) ([]domain.Show, error) {
	return collect(ctx, p.store, "find shows by day", findShowsByDaySQL, scanShow, day.String())
}

func (p *PostgresShowRepository) FindByTime(ctx context.Context, time domain.TimeOfDay) ([]domain.Show, error) {
	return collect(ctx, p.store, "find shows by time", findShowsByTimeSQL, scanShow, time.String())
}

func (p *PostgresShowRepository) FindByDayAndTime(
	ctx context.Context,
	day domain.DayOfWeek,
	time domain.TimeOfDay) ([]domain.Show, error) {

	return collect(ctx, p.store, "find shows by day and time", findShowsBySlotSQL, scanShow, day.String(), time.String())
}

// FindByMovie matches the title case-insensitively; callers may pass LIKE wildcards.
func (p *PostgresShowRepository) FindByMovie(ctx context.Context, movie string) ([]domain.Show, error) {
	return collect(ctx, p.store, "find shows by movie", findShowsByMovieSQL, scanShow, movie)
}

func (p *PostgresShowRepository) FindByTicket(ctx context.Context, ticketID int) (*domain.Show, error) {
	return collectOne(ctx, p.store, "find show by ticket", findShowByTicketSQL, scanShow, ticketID)
}

func scanShow(row pgx.CollectableRow) (domain.Show, error) {
	var show domain.Show

	err := row.Scan(&show.ID, &show.Day, &show.Time, &show.Movie)

	return show, err
}
