package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

const (
	msgSlotTaken    = "Another show is already scheduled for this slot"
	msgSlotEmpty    = "No show is scheduled for this slot"
	msgInvalidSlot  = "Please choose a valid day and time"
	msgShowCreated  = "The show has been scheduled"
	msgShowCanceled = "The show has been cancelled"
)

type movieForm struct {
	Movie string `validate:"required,max=255"`
}

// schedule puts the weekly grid into the session and renders the main view.
func (app *Application) schedule(r *http.Request) (View, error) {
	ctx := r.Context()

	schedule, err := app.shows.Schedule(ctx)
	if err != nil {
		return "", err
	}

	app.putSession(ctx, SessionKeyDays, domain.Days)
	app.putSession(ctx, SessionKeyTimes, domain.Times)
	app.putSession(ctx, SessionKeySchedule, schedule)

	return ViewMain, nil
}

func (app *Application) hall(r *http.Request) (View, error) {
	ctx := r.Context()

	day, time, err := readSlot(r)
	if err != nil {
		var ok bool

		day, time, ok = app.sessionSlot(ctx)
		if !ok {
			app.putMessage(ctx, msgInvalidSlot)
			return app.schedule(r)
		}
	}

	app.putSession(ctx, SessionKeyDay, day)
	app.putSession(ctx, SessionKeyTime, time)

	show, err := app.shows.Hall(ctx, day, time)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.putMessage(ctx, msgSlotEmpty)
			return app.schedule(r)
		}

		return "", err
	}

	app.putSession(ctx, SessionKeyHall, *show)

	return ViewHall, nil
}

// addMovie remembers the chosen slot for the following createMovie call.
func (app *Application) addMovie(r *http.Request) (View, error) {
	ctx := r.Context()

	day, time, err := readSlot(r)
	if err != nil {
		app.putMessage(ctx, msgInvalidSlot)
		return app.schedule(r)
	}

	app.putSession(ctx, SessionKeyDay, day)
	app.putSession(ctx, SessionKeyTime, time)

	return ViewMovie, nil
}

func (app *Application) createMovie(r *http.Request) (View, error) {
	ctx := r.Context()
	logger := app.contextGetLogger(r)

	if !app.loggedUser(ctx).HasRole(domain.RoleAdmin) {
		logger.Warn("unauthorized attempt to create a show")
		return app.schedule(r)
	}

	day, time, ok := app.sessionSlot(ctx)
	if !ok {
		app.putMessage(ctx, msgInvalidSlot)
		return app.schedule(r)
	}

	input := movieForm{Movie: r.Form.Get("movie")}

	err := app.validator.Struct(input)
	if err != nil {
		app.putMessage(ctx, validationMessage(err))
		return ViewMovie, nil
	}

	show, err := app.shows.CreateShow(ctx, day, time, input.Movie)
	if err != nil {
		if errors.Is(err, domain.ErrShowSlotTaken) {
			app.putMessage(ctx, msgSlotTaken)
			return app.schedule(r)
		}

		return "", err
	}

	logger.Info("show created", "showId", show.ID, "day", day, "time", time, "tickets", len(show.Tickets))
	app.putMessage(ctx, msgShowCreated)

	return app.schedule(r)
}

func (app *Application) cancelMovie(r *http.Request) (View, error) {
	ctx := r.Context()
	logger := app.contextGetLogger(r)

	if !app.loggedUser(ctx).HasRole(domain.RoleAdmin) {
		logger.Warn("unauthorized attempt to cancel a show")
		return app.schedule(r)
	}

	day, time, err := readSlot(r)
	if err != nil {
		app.putMessage(ctx, msgInvalidSlot)
		return app.schedule(r)
	}

	err = app.shows.CancelShow(ctx, day, time)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.putMessage(ctx, msgSlotEmpty)
			return app.schedule(r)
		}

		return "", err
	}

	app.putMessage(ctx, msgShowCanceled)

	return app.schedule(r)
}
