package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"eventsync/config"
	_ "eventsync/docs"
	"eventsync/internal/adapters/auth"
	"eventsync/internal/adapters/email"
	"eventsync/internal/adapters/markdown"
	"eventsync/internal/adapters/storage"
	deliveryhttp "eventsync/internal/delivery/http"
	"eventsync/internal/delivery/http/controllers"
	"eventsync/internal/delivery/http/middleware"
	"eventsync/internal/repository/postgres"
	"eventsync/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title eventsync API
// @version 1.0
// @description Event listings, registrations, analytics and public forms for a campus events site.
// @BasePath /api
// @securityDefinitions.apikey AuthToken
// @in header
// @name x-auth-token
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := config.NewLogger(cfg.Environment).With("env", cfg.Environment)
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()
	pingCtx, pingCancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer pingCancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DBUrl, logger); err != nil {
			return err
		}
	}

	jwt, err := auth.NewJWT(cfg.JWTSecret)
	if err != nil {
		return err
	}
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	images, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		return err
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("creating mailer: %w", err)
	}

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	regRepo := postgres.NewEventRegistrationRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	newsletterRepo := postgres.NewNewsletterRepository(db)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	userService := services.NewUserService(userRepo, regRepo, hasher, jwt, cfg.JWTExpiry, cfg.RequestTimeout)
	eventService := services.NewEventService(eventRepo, regRepo, markdown.NewRenderer(), cfg.RequestTimeout)
	analyticsService := services.NewAnalyticsService(analyticsRepo, statsRepo, cfg.RequestTimeout)
	newsletterService := services.NewNewsletterService(newsletterRepo, emailService, logger, cfg.RequestTimeout)
	contactService := services.NewContactService(emailService, cfg.Email.ContactInbox, logger, cfg.RequestTimeout)
	uploadService := services.NewUploadService(images)

	mux := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:    logger,
		Verifier:  jwt,
		UploadDir: cfg.UploadDir,
		DB:        db,
	}, deliveryhttp.Controllers{
		User:      controllers.NewUserController(logger, userService),
		Event:     controllers.NewEventController(logger, eventService),
		Analytics: controllers.NewAnalyticsController(logger, analyticsService),
		Public:    controllers.NewPublicController(logger, newsletterService, contactService),
		Upload:    controllers.NewUploadController(logger, uploadService, cfg.MaxUploadBytes),
	})

	var handler http.Handler = mux
	handler = middleware.Recover(logger, handler)
	handler = middleware.CORS(cfg.CORSOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	ln, err := net.Listen("tcp", net.JoinHostPort("", cfg.Port))
	if err != nil {
		return fmt.Errorf("listening on port %s: %w", cfg.Port, err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(ctx, ln, srv, logger, shutdownTimeout)
}
