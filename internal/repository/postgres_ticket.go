package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

const (
	ticketColumns = `id, "row", seat, price, sold, show_id, user_id`

	createTicketSQL       = `INSERT INTO tickets ("row", seat, price, sold, show_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	updateTicketSQL       = `UPDATE tickets SET "row" = $1, seat = $2, price = $3, sold = $4, show_id = $5 WHERE id = $6`
	deleteTicketSQL       = `DELETE FROM tickets WHERE id = $1`
	findTicketSQL         = `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	findAllTicketsSQL     = `SELECT ` + ticketColumns + ` FROM tickets ORDER BY id`
	findTicketsByUserSQL  = `SELECT ` + ticketColumns + ` FROM tickets WHERE user_id = $1 ORDER BY id`
	findTicketsByShowSQL  = `SELECT ` + ticketColumns + ` FROM tickets WHERE show_id = $1 ORDER BY "row", seat`
	findTicketsByStateSQL = `SELECT ` + ticketColumns + ` FROM tickets WHERE sold = $1 ORDER BY id`
	buyTicketSQL          = `UPDATE tickets SET sold = TRUE, user_id = $2 WHERE id = $1`
	buyAvailableTicketSQL = `UPDATE tickets SET sold = TRUE, user_id = $2 WHERE id = $1 AND sold = FALSE`
)

type PostgresTicketRepository struct {
	store
}

func NewPostgresTicketRepository(db *pgxpool.Pool, logger *slog.Logger) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		store: newStore(db, logger, "ticket"),
	}
}

func (p *PostgresTicketRepository) Create(ctx context.Context, ticket *domain.Ticket, showID int) error {
	p.logger.Info("creating new ticket", "showId", showID)

	err := withConn(ctx, p.db, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx, createTicketSQL, ticket.Row, ticket.Seat, ticket.Price, ticket.Sold, showID).
			Scan(&ticket.ID)
	})
	if err != nil {
		return p.fail("create ticket", err, "showId", showID)
	}

	ticket.ShowID = showID

	p.logger.Info("ticket is created", "id", ticket.ID)

	return nil
}

func (p *PostgresTicketRepository) Update(ctx context.Context, ticket *domain.Ticket, showID int) error {
	p.logger.Info("updating ticket", "id", ticket.ID)

	_, err := p.exec(ctx, "update ticket", updateTicketSQL,
		ticket.Row, ticket.Seat, ticket.Price, ticket.Sold, showID, ticket.ID)
	if err != nil {
		return err
	}

	ticket.ShowID = showID

	return nil
}

// Delete removes the ticket whether or not it has been sold.
func (p *PostgresTicketRepository) Delete(ctx context.Context, id int) error {
	p.logger.Info("deleting ticket", "id", id)

	_, err := p.exec(ctx, "delete ticket", deleteTicketSQL, id)
	return err
}

func (p *PostgresTicketRepository) Find(ctx context.Context, id int) (*domain.Ticket, error) {
	return collectOne(ctx, p.store, "find ticket", findTicketSQL, scanTicket, id)
}

func (p *PostgresTicketRepository) FindAll(ctx context.Context) ([]domain.Ticket, error) {
	return collect(ctx, p.store, "find all tickets", findAllTicketsSQL, scanTicket)
}

func (p *PostgresTicketRepository) FindByUser(ctx context.Context, userID int) ([]domain.Ticket, error) {
	return collect(ctx, p.store, "find tickets by user", findTicketsByUserSQL, scanTicket, userID)
}

func (p *PostgresTicketRepository) FindByShow(ctx context.Context, showID int) ([]domain.Ticket, error) {
	return collect(ctx, p.store, "find tickets by show", findTicketsByShowSQL, scanTicket, showID)
}

func (p *PostgresTicketRepository) FindByState(ctx context.Context, sold bool) ([]domain.Ticket, error) {
	return collect(ctx, p.store, "find tickets by state", findTicketsByStateSQL, scanTicket, sold)
}

// BuyTicket is last-write-wins: buying an already sold ticket reassigns it.
func (p *PostgresTicketRepository) BuyTicket(ctx context.Context, id, userID int) error {
	p.logger.Info("buying ticket", "id", id, "userId", userID)

	_, err := p.exec(ctx, "buy ticket", buyTicketSQL, id, userID)
	return err
}

// BuyTicketIfAvailable sells the ticket in one conditional update, so two
// concurrent buyers cannot both succeed. It returns domain.ErrTicketAlreadySold
// when the ticket was sold before, domain.ErrRecordNotFound when it is missing.
func (p *PostgresTicketRepository) BuyTicketIfAvailable(ctx context.Context, id, userID int) error {
	p.logger.Info("buying available ticket", "id", id, "userId", userID)

	affected, err := p.exec(ctx, "buy ticket", buyAvailableTicketSQL, id, userID)
	if err != nil {
		return err
	}

	if affected > 0 {
		return nil
	}

	_, err = p.Find(ctx, id)
	if err != nil {
		return err
	}

	p.logger.Warn("ticket is already sold", "id", id, "userId", userID)

	return domain.ErrTicketAlreadySold
}

func scanTicket(row pgx.CollectableRow) (domain.Ticket, error) {
	var ticket domain.Ticket

	err := row.Scan(
		&ticket.ID,
		&ticket.Row,
		&ticket.Seat,
		&ticket.Price,
		&ticket.Sold,
		&ticket.ShowID,
		&ticket.UserID,
	)

	return ticket, err
}
