package domain

import "context"

type Ticket struct {
	ID     int  `json:"id"`
	Row    int  `json:"row"`
	Seat   int  `json:"seat"`
	Price  int  `json:"price"`
	Sold   bool `json:"sold"`
	ShowID int  `json:"showId"`
	UserID *int `json:"userId,omitempty"`
}

// HallLayout describes the tickets generated for every new show.
type HallLayout struct {
	Rows  int
	Seats int
	Price int
}

// Tickets returns one unsold ticket per seat, ordered by row then seat.
func (l HallLayout) Tickets() []Ticket {
	if l.Rows <= 0 || l.Seats <= 0 {
		return nil
	}

	tickets := make([]Ticket, 0, l.Rows*l.Seats)
	for row := 1; row <= l.Rows; row++ {
		for seat := 1; seat <= l.Seats; seat++ {
			tickets = append(tickets, Ticket{Row: row, Seat: seat, Price: l.Price})
		}
	}

	return tickets
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket, showID int) error
	Update(ctx context.Context, ticket *Ticket, showID int) error
	Delete(ctx context.Context, id int) error
	Find(ctx context.Context, id int) (*Ticket, error)
	FindAll(ctx context.Context) ([]Ticket, error)
	FindByUser(ctx context.Context, userID int) ([]Ticket, error)
	FindByShow(ctx context.Context, showID int) ([]Ticket, error)
	FindByState(ctx context.Context, sold bool) ([]Ticket, error)
	// BuyTicket marks the ticket sold to userID without checking its current state.
	BuyTicket(ctx context.Context, id, userID int) error
	// BuyTicketIfAvailable marks the ticket sold only while it is still unsold.
	BuyTicketIfAvailable(ctx context.Context, id, userID int) error
}

// BookedTicket is a ticket together with the show it admits to.
type BookedTicket struct {
	Ticket
	Day   DayOfWeek `json:"day"`
	Time  TimeOfDay `json:"time"`
	Movie string    `json:"movie"`
}
