package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgEmailTaken         = "An account with this email already exists"
	msgRegistered         = "Your account has been created, please log in"
	msgUserAdded          = "The user has been created"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registrationForm struct {
	FirstName string   `validate:"required,max=50"`
	LastName  string   `validate:"required,max=50"`
	Email     string   `validate:"required,email,max=255"`
	Password  string   `validate:"required,password"`
	Roles     []string `validate:"dive,role"`
}

func (app *Application) login(r *http.Request) (View, error) {
	return ViewLogin, nil
}

func (app *Application) addUser(r *http.Request) (View, error) {
	return ViewRegistration, nil
}

func (app *Application) checkLogin(r *http.Request) (View, error) {
	ctx := r.Context()
	logger := app.contextGetLogger(r)

	input := loginForm{
		Email:    strings.TrimSpace(r.Form.Get("email")),
		Password: r.Form.Get("password"),
	}

	err := app.validator.Struct(input)
	if err != nil {
		logger.Warn("login validation failed")
		app.putSession(ctx, SessionKeyLoginError, msgInvalidCredentials)
		return ViewLogin, nil
	}

	user, err := app.users.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			logger.Warn("login failed")
			app.putSession(ctx, SessionKeyLoginError, msgInvalidCredentials)
			return ViewLogin, nil
		}

		return "", err
	}

	// To help prevent session fixation attacks we should renew the session token after any privilege level change.
	// https://github.com/OWASP/CheatSheetSeries/blob/master/cheatsheets/Session_Management_Cheat_Sheet.md#renew-the-session-id-after-any-privilege-level-change
	err = app.sessionManager.RenewToken(ctx)
	if err != nil {
		return "", err
	}

	app.putSession(ctx, SessionKeyLoggedUser, newSessionUser(user))
	logger.Info("user logged in", "userId", user.ID)

	return app.schedule(r)
}

func (app *Application) logout(r *http.Request) (View, error) {
	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		return "", err
	}

	return app.schedule(r)
}

// registerUser signs up a visitor, or lets an administrator add a user with
// explicit roles. The entered names and email stay in the session so the
// registration view can be filled again after a rejection.
func (app *Application) registerUser(r *http.Request) (View, error) {
	ctx := r.Context()
	logger := app.contextGetLogger(r)
	caller := app.loggedUser(ctx)

	input := registrationForm{
		FirstName: strings.TrimSpace(r.Form.Get("firstname")),
		LastName:  strings.TrimSpace(r.Form.Get("lastname")),
		Email:     strings.TrimSpace(r.Form.Get("email")),
		Password:  r.Form.Get("password"),
		Roles:     r.Form["roles"],
	}

	app.putSession(ctx, SessionKeyFirstName, input.FirstName)
	app.putSession(ctx, SessionKeyLastName, input.LastName)
	app.putSession(ctx, SessionKeyEmail, input.Email)

	err := app.validator.Struct(input)
	if err != nil {
		app.putMessage(ctx, validationMessage(err))
		return ViewRegistration, nil
	}

	user := &domain.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}

	if caller.HasRole(domain.RoleAdmin) {
		for _, name := range input.Roles {
			role, _ := domain.ParseRole(name)
			user.AddRole(role)
		}
	} else if len(input.Roles) > 0 {
		logger.Warn("roles ignored for self registration", "roles", input.Roles)
	}

	err = app.users.Register(ctx, user, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			// do not log the email to keep user enumeration out of the logs
			logger.Warn("registration attempt for existing email")
			app.putMessage(ctx, msgEmailTaken)
			return ViewRegistration, nil
		}

		return "", err
	}

	logger.Info("user registered", "userId", user.ID, "roles", user.Roles)

	for _, key := range []sessionKey{SessionKeyFirstName, SessionKeyLastName, SessionKeyEmail} {
		app.sessionManager.Remove(ctx, key.String())
	}

	if caller.HasRole(domain.RoleAdmin) && View(r.Form.Get("from")) == ViewUsers {
		app.putMessage(ctx, msgUserAdded)
		return app.listUsers(r)
	}

	app.putMessage(ctx, msgRegistered)

	return ViewLogin, nil
}
