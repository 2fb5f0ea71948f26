package app

import (
	"context"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type sessionKey string

// Session attributes read by the views. Renaming any of them breaks the view layer.
const (
	SessionKeyDay        = sessionKey("day")
	SessionKeyTime       = sessionKey("time")
	SessionKeyDays       = sessionKey("days")
	SessionKeyTimes      = sessionKey("times")
	SessionKeySchedule   = sessionKey("schedule")
	SessionKeyLoggedUser = sessionKey("loggedUser")
	SessionKeyTickets    = sessionKey("tickets")
	SessionKeyUsers      = sessionKey("users")
	SessionKeyHall       = sessionKey("hall")
	SessionKeyLocale     = sessionKey("locale")
	SessionKeyMessage    = sessionKey("message")
	SessionKeyLoginError = sessionKey("loginError")
	SessionKeyFirstName  = sessionKey("firstname")
	SessionKeyLastName   = sessionKey("lastname")
	SessionKeyEmail      = sessionKey("email")
)

// flashKeys are removed from the session once they have been rendered.
var flashKeys = []sessionKey{SessionKeyMessage, SessionKeyLoginError}

func (s sessionKey) String() string {
	return string(s)
}

// SessionUser is the logged in user as kept in the session. It never carries
// the password hash.
type SessionUser struct {
	ID        int           `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Roles     []domain.Role `json:"roles"`
}

func newSessionUser(user *domain.User) SessionUser {
	return SessionUser{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Roles:     append([]domain.Role(nil), user.Roles...),
	}
}

func (u *SessionUser) HasRole(role domain.Role) bool {
	if u == nil {
		return false
	}

	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}

	return false
}

func init() {
	// scs encodes session values with gob, so every concrete type stored
	// behind an interface has to be known up front.
	gob.Register(SessionUser{})
	gob.Register([]SessionUser{})
	gob.Register(domain.DayOfWeek(""))
	gob.Register(domain.TimeOfDay(""))
	gob.Register([]domain.DayOfWeek{})
	gob.Register([]domain.TimeOfDay{})
	gob.Register(domain.Schedule{})
	gob.Register(domain.Show{})
	gob.Register([]domain.BookedTicket{})
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	return sessionManager
}

func (app *Application) loggedUser(ctx context.Context) *SessionUser {
	user, ok := app.sessionManager.Get(ctx, SessionKeyLoggedUser.String()).(SessionUser)
	if !ok {
		return nil
	}

	return &user
}

func (app *Application) putSession(ctx context.Context, key sessionKey, value any) {
	app.sessionManager.Put(ctx, key.String(), value)
}

func (app *Application) putMessage(ctx context.Context, message string) {
	app.putSession(ctx, SessionKeyMessage, message)
}

// sessionSlot returns the day and time last selected in this session.
func (app *Application) sessionSlot(ctx context.Context) (domain.DayOfWeek, domain.TimeOfDay, bool) {
	day, ok := app.sessionManager.Get(ctx, SessionKeyDay.String()).(domain.DayOfWeek)
	if !ok {
		return "", "", false
	}

	time, ok := app.sessionManager.Get(ctx, SessionKeyTime.String()).(domain.TimeOfDay)
	if !ok {
		return "", "", false
	}

	return day, time, true
}

// attributes collects the session attributes handed to the view and drops the
// flash attributes afterwards.
func (app *Application) attributes(ctx context.Context) map[string]any {
	keys := app.sessionManager.Keys(ctx)
	attrs := make(map[string]any, len(keys))

	for _, key := range keys {
		attrs[key] = app.sessionManager.Get(ctx, key)
	}

	for _, key := range flashKeys {
		app.sessionManager.Remove(ctx, key.String())
	}

	return attrs
}
