package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/app"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/mailer"
	"github.com/metinatakli/cinema-booking/internal/repository"
	appvalidator "github.com/metinatakli/cinema-booking/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Mailer *mailer.MockMailer

	Shows   domain.ShowRepository
	Tickets domain.TicketRepository
	Users   domain.UserRepository
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg.DB)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg.Redis)
	if err != nil {
		db.Close()
		return nil, err
	}

	showRepo := repository.NewPostgresShowRepository(db, logger)
	ticketRepo := repository.NewPostgresTicketRepository(db, logger)
	userRepo := repository.NewPostgresUserRepository(db, logger)

	application := app.NewApp(
		cfg,
		logger,
		validator,
		mailer,
		app.NewSessionManager(redisClient),
		showRepo,
		ticketRepo,
		userRepo,
	)

	return &TestApp{
		App:     application,
		DB:      db,
		Redis:   redisClient,
		Mailer:  mailer,
		Shows:   showRepo,
		Tickets: ticketRepo,
		Users:   userRepo,
	}, nil
}
