package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventsync/internal/domain"
)

type contactService struct {
	emailService   domain.EmailService
	inbox          string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewContactService returns a ContactService relaying messages to inbox. With an empty inbox
// messages are only logged.
func NewContactService(emailService domain.EmailService, inbox string, logger *slog.Logger, timeout time.Duration) domain.ContactService {
	return &contactService{
		emailService:   emailService,
		inbox:          strings.TrimSpace(inbox),
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *contactService) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if msg == nil {
		return domain.NewValidationError("Please fill all fields")
	}
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = normalizeEmail(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return domain.NewValidationError("Please fill all fields")
	}
	if !emailRegexp.MatchString(msg.Email) {
		return domain.NewValidationError("invalid email format")
	}

	s.logger.InfoContext(ctx, "contact message received", "name", msg.Name, "email", msg.Email)

	if s.inbox == "" || s.emailService == nil {
		return nil
	}
	data := &domain.ContactEmailData{To: s.inbox, Name: msg.Name, Email: msg.Email, Message: msg.Message}
	if err := s.emailService.SendContactMessage(ctx, data); err != nil {
		return fmt.Errorf("relay contact message: %w", err)
	}
	return nil
}
