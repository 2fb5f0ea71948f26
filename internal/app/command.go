package app

import (
	"net/http"
)

// Action is the value of the command request parameter.
type Action string

const (
	ActionSchedule     Action = "schedule"
	ActionLogin        Action = "login"
	ActionCheckLogin   Action = "checkLogin"
	ActionTickets      Action = "tickets"
	ActionLogout       Action = "logout"
	ActionRegisterUser Action = "registerUser"
	ActionAddUser      Action = "addUser"
	ActionCancelMovie  Action = "cancelMovie"
	ActionAddMovie     Action = "addMovie"
	ActionCreateMovie  Action = "createMovie"
	ActionHall         Action = "hall"
	ActionUsers        Action = "users"
	ActionDeleteUser   Action = "deleteUser"
	ActionBuyTicket    Action = "buyTicket"
	ActionChangeLocale Action = "changeLocale"
	ActionCancelTicket Action = "cancelTicket"
)

// View identifies the page the view layer renders next.
type View string

const (
	ViewMain         View = "main"
	ViewLogin        View = "login"
	ViewRegistration View = "registration"
	ViewUsers        View = "users"
	ViewMovie        View = "movie"
	ViewHall         View = "hall"
	ViewTickets      View = "tickets"
	ViewError        View = "error"
)

// CommandFunc handles one action and names the view to render. Session
// attributes set by the command are handed to that view.
type CommandFunc func(r *http.Request) (View, error)

// Dispatcher maps actions to commands. It is immutable once built.
type Dispatcher struct {
	app      *Application
	commands map[Action]CommandFunc
	fallback CommandFunc
}

func NewDispatcher(app *Application) *Dispatcher {
	return &Dispatcher{
		app: app,
		commands: map[Action]CommandFunc{
			ActionSchedule:     app.schedule,
			ActionLogin:        app.login,
			ActionCheckLogin:   app.checkLogin,
			ActionTickets:      app.userTickets,
			ActionLogout:       app.logout,
			ActionRegisterUser: app.registerUser,
			ActionAddUser:      app.addUser,
			ActionCancelMovie:  app.cancelMovie,
			ActionAddMovie:     app.addMovie,
			ActionCreateMovie:  app.createMovie,
			ActionHall:         app.hall,
			ActionUsers:        app.listUsers,
			ActionDeleteUser:   app.deleteUser,
			ActionBuyTicket:    app.buyTicket,
			ActionChangeLocale: app.changeLocale,
			ActionCancelTicket: app.cancelTicket,
		},
		fallback: app.schedule,
	}
}

// Resolve returns the command registered for raw, or the schedule command
// when raw is empty or unknown.
func (d *Dispatcher) Resolve(raw string) CommandFunc {
	command, ok := d.commands[Action(raw)]
	if !ok {
		return d.fallback
	}

	return command
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		d.app.badRequestResponse(w, r, err)
		return
	}

	action := r.Form.Get("command")

	view, err := d.Resolve(action)(r)
	if err != nil {
		d.app.contextGetLogger(r).Error("command failed", "command", action, "error", err)
		d.app.serverErrorResponse(w, r, err)
		return
	}

	d.app.renderView(w, r, http.StatusOK, view)
}
