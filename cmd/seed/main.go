package main

import (
	"context"
	"database/sql"
	_ "embed"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"eventsync/config"
	"eventsync/internal/adapters/auth"
	"eventsync/internal/repository/postgres"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

func main() {
	reset := flag.Bool("reset", false, "delete all existing users, events, analytics and subscribers before seeding")
	file := flag.String("file", "", "fixture file to load instead of the embedded one")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *reset, *file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, reset bool, file string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := config.NewLogger(cfg.Environment)

	data := defaultFixtures
	if file != "" {
		if data, err = os.ReadFile(file); err != nil {
			return fmt.Errorf("reading fixtures: %w", err)
		}
	}
	f, err := parseFixtures(data)
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()
	if err := postgres.RunMigrations(cfg.DBUrl, logger); err != nil {
		return err
	}

	s := &seeder{
		users:       postgres.NewUserRepository(db),
		events:      postgres.NewEventRepository(db),
		regs:        postgres.NewEventRegistrationRepository(db),
		analytics:   postgres.NewAnalyticsRepository(db),
		subscribers: postgres.NewNewsletterRepository(db),
		hasher:      auth.NewBcryptHasher(bcrypt.DefaultCost),
		logger:      logger,
	}
	if reset {
		if err := s.reset(ctx); err != nil {
			return err
		}
	}
	if err := s.apply(ctx, f); err != nil {
		return err
	}
	logger.Info("seed complete")
	return nil
}
