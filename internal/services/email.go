package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventsync/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendNewsletterWelcome sends the "newsletter_welcome" template to a new subscriber.
func (s *emailService) SendNewsletterWelcome(ctx context.Context, data *domain.NewsletterWelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("newsletter welcome data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("newsletter_welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render newsletter_welcome template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send newsletter welcome email: %w", err)
	}
	s.logger.InfoContext(ctx, "newsletter welcome email sent", "to", data.Email)
	return nil
}

// SendContactMessage relays a contact form submission to data.To.
func (s *emailService) SendContactMessage(ctx context.Context, data *domain.ContactEmailData) error {
	if data == nil {
		return fmt.Errorf("contact email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact_message", data)
	if err != nil {
		return fmt.Errorf("failed to render contact_message template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.To, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	s.logger.InfoContext(ctx, "contact message relayed", "to", data.To, "from", data.Email)
	return nil
}
