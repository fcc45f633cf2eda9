package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventsync/internal/domain"
)

type newsletterService struct {
	repo           domain.NewsletterRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewNewsletterService returns a NewsletterService. emailService may be nil to skip welcome mail.
func NewNewsletterService(repo domain.NewsletterRepository, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.NewsletterService {
	return &newsletterService{
		repo:           repo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, name, email string) (*domain.Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	var problems []string
	if name == "" {
		problems = append(problems, "name is required")
	}
	if email == "" {
		problems = append(problems, "email is required")
	} else if !emailRegexp.MatchString(email) {
		problems = append(problems, "invalid email format")
	}
	if err := domain.NewValidationError(problems...); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrAlreadySubscribed
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up subscriber: %w", err)
	}

	sub := &domain.Subscriber{Name: name, Email: email, SubscribedAt: time.Now()}
	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			return nil, err
		}
		return nil, fmt.Errorf("create subscriber: %w", err)
	}

	if s.emailService != nil {
		data := &domain.NewsletterWelcomeEmailData{Email: sub.Email, Name: sub.Name}
		if err := s.emailService.SendNewsletterWelcome(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "newsletter welcome email failed", "email", sub.Email, "err", err)
		}
	}
	return sub, nil
}
