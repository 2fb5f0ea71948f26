package integration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/metinatakli/cinema-booking/internal/app"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

type BaseSuite struct {
	suite.Suite
	app            *TestApp
	dbContainer    *PostgresContainer
	cacheContainer *RedisContainer
	server         *httptest.Server
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	postgresContainer, err := getDbContainer(ctx)
	s.Require().NoError(err, "failed to start postgres container")
	s.dbContainer = postgresContainer

	redisContainer, err := getCacheContainer(ctx)
	s.Require().NoError(err, "failed to start redis container")
	s.cacheContainer = redisContainer

	cfg := app.Config{
		Port: 3000,
		Env:  "test",
		DB: app.DBConfig{
			DSN:          postgresContainer.ConnectionString,
			MaxOpenConns: 25,
			MaxIdleTime:  2 * time.Minute,
		},
		Redis: app.RedisConfig{
			URL:          redisContainer.ConnectionString,
			MaxOpenConns: 10,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
		},
		Hall: testHall,
	}

	testApp, err := newTestApp(cfg)
	s.Require().NoError(err, "cannot initialize app")

	s.app = testApp
	s.server = httptest.NewServer(testApp.App.Routes())
}

func (s *BaseSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}

	if s.app != nil {
		s.app.DB.Close()
		s.app.Redis.Close()
	}

	if s.dbContainer != nil {
		if err := testcontainers.TerminateContainer(s.dbContainer.Container); err != nil {
			s.T().Logf("failed to terminate container: %s", err)
		}
	}

	if s.cacheContainer != nil {
		if err := testcontainers.TerminateContainer(s.cacheContainer.Container); err != nil {
			s.T().Logf("failed to terminate container: %s", err)
		}
	}
}

func (s *BaseSuite) SetupTest() {
	truncateAll(s.T(), s.app.DB)
	s.app.Mailer.Reset()
}

// Browser is a cookie keeping HTTP client talking to the front controller.
type Browser struct {
	t      testing.TB
	client *http.Client
	base   string
}

func (s *BaseSuite) newBrowser() *Browser {
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)

	return &Browser{
		t:      s.T(),
		client: &http.Client{Jar: jar, Timeout: 5 * time.Second},
		base:   s.server.URL + "/cinema",
	}
}

type ViewResponse struct {
	Status     int
	View       app.View
	Attributes map[string]json.RawMessage
}

// Do posts the command with the given form fields and decodes the view.
func (b *Browser) Do(command string, pairs ...string) ViewResponse {
	b.t.Helper()

	form := url.Values{"command": {command}}
	for i := 0; i+1 < len(pairs); i += 2 {
		form.Add(pairs[i], pairs[i+1])
	}

	res, err := b.client.Post(b.base, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(b.t, err)
	defer res.Body.Close()

	var body struct {
		View       app.View                   `json:"view"`
		Attributes map[string]json.RawMessage `json:"attributes"`
	}
	require.NoError(b.t, json.NewDecoder(res.Body).Decode(&body))

	return ViewResponse{
		Status:     res.StatusCode,
		View:       body.View,
		Attributes: body.Attributes,
	}
}

func (b *Browser) Login(email, password string) {
	b.t.Helper()

	resp := b.Do("checkLogin", "email", email, "password", password)
	require.Equal(b.t, app.ViewMain, resp.View, "login failed: %s", resp.Attributes["loginError"])
}

func Attribute[T any](t testing.TB, resp ViewResponse, key string) T {
	t.Helper()

	raw, ok := resp.Attributes[key]
	require.Truef(t, ok, "attribute %q missing", key)

	var value T
	require.NoError(t, json.Unmarshal(raw, &value))

	return value
}
