package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

const (
	msgUserDeleted = "The user has been deleted"
	msgSelfDelete  = "You cannot delete your own account"
)

func (app *Application) listUsers(r *http.Request) (View, error) {
	ctx := r.Context()

	if !app.loggedUser(ctx).HasRole(domain.RoleAdmin) {
		app.contextGetLogger(r).Warn("unauthorized attempt to list users")
		return app.schedule(r)
	}

	users, err := app.users.FindAll(ctx)
	if err != nil {
		return "", err
	}

	sessionUsers := make([]SessionUser, 0, len(users))
	for i := range users {
		sessionUsers = append(sessionUsers, newSessionUser(&users[i]))
	}

	app.putSession(ctx, SessionKeyUsers, sessionUsers)

	return ViewUsers, nil
}

func (app *Application) deleteUser(r *http.Request) (View, error) {
	ctx := r.Context()
	logger := app.contextGetLogger(r)
	caller := app.loggedUser(ctx)

	if !caller.HasRole(domain.RoleAdmin) {
		logger.Warn("unauthorized attempt to delete a user")
		return app.schedule(r)
	}

	userID, err := readInt(r, "userId")
	if err != nil {
		app.putMessage(ctx, err.Error())
		return app.listUsers(r)
	}

	if userID == caller.ID {
		app.putMessage(ctx, msgSelfDelete)
		return app.listUsers(r)
	}

	err = app.users.Delete(ctx, userID)
	if err != nil {
		return "", err
	}

	logger.Info("user deleted", "deletedUserId", userID)
	app.putMessage(ctx, msgUserDeleted)

	return app.listUsers(r)
}
