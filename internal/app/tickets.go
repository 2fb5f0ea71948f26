package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

const (
	msgTicketSold      = "Sorry, this seat has just been sold"
	msgTicketNotFound  = "The ticket does not exist"
	msgTicketBought    = "Enjoy the movie! The ticket has been sent to your email"
	msgTicketCancelled = "The ticket has been cancelled"
	msgLoginRequired   = "Please log in to buy tickets"
)

const ticketReceiptTemplate = "ticket_receipt.tmpl"

func (app *Application) buyTicket(r *http.Request) (View, error) {
	ctx := r.Context()
	logger := app.contextGetLogger(r)
	user := app.loggedUser(ctx)

	if !user.HasRole(domain.RoleUser) {
		logger.Warn("unauthorized attempt to buy a ticket")
		app.putMessage(ctx, msgLoginRequired)
		return app.hall(r)
	}

	ticketID, err := readInt(r, "ticketId")
	if err != nil {
		app.putMessage(ctx, err.Error())
		return app.hall(r)
	}

	booked, err := app.tickets.Buy(ctx, ticketID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTicketAlreadySold):
			app.putMessage(ctx, msgTicketSold)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.putMessage(ctx, msgTicketNotFound)
		default:
			return "", err
		}

		return app.hall(r)
	}

	logger.Info("ticket bought", "ticketId", booked.ID, "showId", booked.ShowID)
	app.sendReceipt(ctx, r, *user, *booked)
	app.putMessage(ctx, msgTicketBought)

	return app.hall(r)
}

func (app *Application) sendReceipt(ctx context.Context, r *http.Request, user SessionUser, ticket domain.BookedTicket) {
	go func(ctx context.Context) {
		// new logger for this goroutine, inheriting context from the request
		gLogger := app.contextGetLogger(r.WithContext(ctx))

		defer func() {
			if err := recover(); err != nil {
				gLogger.Error("panic occurred during sending ticket receipt", "panic", err)
			}
		}()

		data := map[string]any{
			"firstName": user.FirstName,
			"movie":     ticket.Movie,
			"day":       ticket.Day,
			"time":      ticket.Time,
			"row":       ticket.Row,
			"seat":      ticket.Seat,
			"price":     ticket.Price,
			"ticketID":  ticket.ID,
		}

		err := app.mailer.Send(user.Email, ticketReceiptTemplate, data)
		if err != nil {
			gLogger.Error("failed to send ticket receipt", "error", err)
		} else {
			gLogger.Info("ticket receipt sent successfully", "ticketId", ticket.ID)
		}
	}(context.WithoutCancel(ctx))
}

func (app *Application) cancelTicket(r *http.Request) (View, error) {
	ctx := r.Context()
	logger := app.contextGetLogger(r)

	if !app.loggedUser(ctx).HasRole(domain.RoleUser) {
		logger.Warn("unauthorized attempt to cancel a ticket")
		return app.userTickets(r)
	}

	ticketID, err := readInt(r, "ticketId")
	if err != nil {
		app.putMessage(ctx, err.Error())
		return app.userTickets(r)
	}

	err = app.tickets.Cancel(ctx, ticketID)
	if err != nil {
		return "", err
	}

	app.putMessage(ctx, msgTicketCancelled)

	return app.userTickets(r)
}

// userTickets lists the tickets bought by the logged in user. Anonymous
// visitors get an empty list.
func (app *Application) userTickets(r *http.Request) (View, error) {
	ctx := r.Context()

	tickets := []domain.BookedTicket{}

	if user := app.loggedUser(ctx); user != nil {
		var err error

		tickets, err = app.tickets.FindByUser(ctx, user.ID)
		if err != nil {
			return "", err
		}
	}

	app.putSession(ctx, SessionKeyTickets, tickets)

	return ViewTickets, nil
}
