// Package service orchestrates the repositories for the command handlers.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type ShowService struct {
	shows   domain.ShowRepository
	tickets domain.TicketRepository
	layout  domain.HallLayout
	logger  *slog.Logger
}

func NewShowService(
	shows domain.ShowRepository,
	tickets domain.TicketRepository,
	layout domain.HallLayout,
	logger *slog.Logger) *ShowService {

	return &ShowService{
		shows:   shows,
		tickets: tickets,
		layout:  layout,
		logger:  logger,
	}
}

func (s *ShowService) Schedule(ctx context.Context) (domain.Schedule, error) {
	shows, err := s.shows.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return domain.NewSchedule(shows), nil
}

// Hall returns the show in the given slot with all of its tickets.
func (s *ShowService) Hall(ctx context.Context, day domain.DayOfWeek, time domain.TimeOfDay) (*domain.Show, error) {
	show, err := s.findSlot(ctx, day, time)
	if err != nil {
		return nil, err
	}

	tickets, err := s.tickets.FindByShow(ctx, show.ID)
	if err != nil {
		return nil, err
	}

	show.Tickets = tickets

	return show, nil
}

// CreateShow schedules movie into a free slot and issues one ticket per seat
// of the hall. The slot check runs before the insert; the store's unique slot
// constraint settles concurrent creations.
func (s *ShowService) CreateShow(
	ctx context.Context,
	day domain.DayOfWeek,
	time domain.TimeOfDay,
	movie string) (*domain.Show, error) {

	existing, err := s.shows.FindByDayAndTime(ctx, day, time)
	if err != nil {
		return nil, err
	}

	if len(existing) > 0 {
		s.logger.Warn("show slot already taken", "day", day, "time", time, "showId", existing[0].ID)
		return nil, domain.ErrShowSlotTaken
	}

	show := &domain.Show{
		Day:     day,
		Time:    time,
		Movie:   strings.TrimSpace(movie),
		Tickets: s.layout.Tickets(),
	}

	err = s.shows.Create(ctx, show)
	if err != nil {
		return nil, err
	}

	return show, nil
}

// CancelShow removes the show scheduled in the slot together with its tickets.
func (s *ShowService) CancelShow(ctx context.Context, day domain.DayOfWeek, time domain.TimeOfDay) error {
	show, err := s.findSlot(ctx, day, time)
	if err != nil {
		return err
	}

	s.logger.Info("cancelling show", "id", show.ID, "movie", show.Movie)

	return s.shows.Delete(ctx, show.ID)
}

// FindByMovie returns the shows whose title contains movie, ignoring case.
func (s *ShowService) FindByMovie(ctx context.Context, movie string) ([]domain.Show, error) {
	return s.shows.FindByMovie(ctx, fmt.Sprintf("%%%s%%", strings.TrimSpace(movie)))
}

func (s *ShowService) FindByTicket(ctx context.Context, ticketID int) (*domain.Show, error) {
	return s.shows.FindByTicket(ctx, ticketID)
}

func (s *ShowService) findSlot(ctx context.Context, day domain.DayOfWeek, time domain.TimeOfDay) (*domain.Show, error) {
	shows, err := s.shows.FindByDayAndTime(ctx, day, time)
	if err != nil {
		return nil, err
	}

	if len(shows) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	return &shows[0], nil
}
