package service

import (
	"context"
	"log/slog"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type TicketService struct {
	tickets domain.TicketRepository
	shows   domain.ShowRepository
	logger  *slog.Logger
}

func NewTicketService(tickets domain.TicketRepository, shows domain.ShowRepository, logger *slog.Logger) *TicketService {
	return &TicketService{
		tickets: tickets,
		shows:   shows,
		logger:  logger,
	}
}

// Buy sells the ticket to userID unless somebody bought it first.
func (s *TicketService) Buy(ctx context.Context, ticketID, userID int) (*domain.BookedTicket, error) {
	err := s.tickets.BuyTicketIfAvailable(ctx, ticketID, userID)
	if err != nil {
		return nil, err
	}

	ticket, err := s.tickets.Find(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	show, err := s.shows.Find(ctx, ticket.ShowID)
	if err != nil {
		return nil, err
	}

	return book(*ticket, show), nil
}

// Cancel deletes the ticket regardless of whether it was sold.
func (s *TicketService) Cancel(ctx context.Context, ticketID int) error {
	s.logger.Info("cancelling ticket", "id", ticketID)

	return s.tickets.Delete(ctx, ticketID)
}

// FindByUser returns the user's tickets with the shows they belong to.
func (s *TicketService) FindByUser(ctx context.Context, userID int) ([]domain.BookedTicket, error) {
	tickets, err := s.tickets.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	shows := make(map[int]*domain.Show)
	booked := make([]domain.BookedTicket, 0, len(tickets))

	for _, ticket := range tickets {
		show, ok := shows[ticket.ShowID]
		if !ok {
			show, err = s.shows.Find(ctx, ticket.ShowID)
			if err != nil {
				return nil, err
			}

			shows[ticket.ShowID] = show
		}

		booked = append(booked, *book(ticket, show))
	}

	return booked, nil
}

func (s *TicketService) FindByShow(ctx context.Context, showID int) ([]domain.Ticket, error) {
	return s.tickets.FindByShow(ctx, showID)
}

func (s *TicketService) FindAvailable(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.FindByState(ctx, false)
}

func book(ticket domain.Ticket, show *domain.Show) *domain.BookedTicket {
	return &domain.BookedTicket{
		Ticket: ticket,
		Day:    show.Day,
		Time:   show.Time,
		Movie:  show.Movie,
	}
}
