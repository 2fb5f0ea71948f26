package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/mailer"
	"github.com/metinatakli/cinema-booking/internal/mocks"
	"github.com/metinatakli/cinema-booking/internal/service"
	"github.com/metinatakli/cinema-booking/internal/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testHall = domain.HallLayout{Rows: 2, Seats: 3, Price: 50}

type testRepos struct {
	shows   *mocks.MockShowRepo
	tickets *mocks.MockTicketRepo
	users   *mocks.MockUserRepo
}

func newTestRepos() testRepos {
	return testRepos{
		shows:   &mocks.MockShowRepo{},
		tickets: &mocks.MockTicketRepo{},
		users:   &mocks.MockUserRepo{},
	}
}

func newTestApplication(repos testRepos, opts ...func(*Application)) *Application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &Application{
		config:         Config{Env: "test", Hall: testHall},
		logger:         logger,
		validator:      validator.NewValidator(),
		mailer:         mailer.NewMockMailer(),
		sessionManager: scs.New(),
		shows:          service.NewShowService(repos.shows, repos.tickets, testHall, logger),
		tickets:        service.NewTicketService(repos.tickets, repos.shows, logger),
		users:          service.NewUserService(repos.users, logger),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// expectSchedule stubs the reads of the schedule command.
func expectSchedule(repos testRepos, shows ...domain.Show) {
	repos.shows.On("FindAll", mock.Anything).Return(append([]domain.Show{}, shows...), nil)
}

type testSession struct {
	user   *SessionUser
	values map[sessionKey]any
}

// dispatch posts form to the front controller inside a session seeded from
// session. The returned request keeps the session for later inspection.
func dispatch(t *testing.T, app *Application, form url.Values, session testSession) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/cinema", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	ctx, err := app.sessionManager.Load(r.Context(), "")
	require.NoError(t, err)

	if session.user != nil {
		app.sessionManager.Put(ctx, SessionKeyLoggedUser.String(), *session.user)
	}

	for key, value := range session.values {
		app.sessionManager.Put(ctx, key.String(), value)
	}

	r = r.WithContext(ctx)

	handler := app.sessionManager.LoadAndSave(NewDispatcher(app))
	handler.ServeHTTP(w, r)

	return w, r
}

type testViewResponse struct {
	View       View                       `json:"view"`
	Attributes map[string]json.RawMessage `json:"attributes"`
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) testViewResponse {
	t.Helper()

	var resp testViewResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	return resp
}

func attribute[T any](t *testing.T, resp testViewResponse, key sessionKey) T {
	t.Helper()

	raw, ok := resp.Attributes[key.String()]
	require.Truef(t, ok, "attribute %q missing", key)

	var value T
	require.NoError(t, json.Unmarshal(raw, &value))

	return value
}

func form(pairs ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		values.Add(pairs[i], pairs[i+1])
	}
	return values
}

var (
	visitor  *SessionUser
	customer = &SessionUser{ID: 7, FirstName: "Freddie", LastName: "Mercury", Email: "freddie@example.com", Roles: []domain.Role{domain.RoleUser}}
	admin    = &SessionUser{ID: 1, FirstName: "Brian", LastName: "May", Email: "brian@example.com", Roles: []domain.Role{domain.RoleAdmin}}
)

func ptr[T any](v T) *T {
	return &v
}
