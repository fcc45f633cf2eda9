package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// NewsletterWelcomeEmailData holds data for the newsletter welcome email.
type NewsletterWelcomeEmailData struct {
	Email string
	Name  string
}

// ContactEmailData holds data for relaying a contact form submission.
type ContactEmailData struct {
	To      string
	Name    string
	Email   string
	Message string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendNewsletterWelcome(ctx context.Context, data *NewsletterWelcomeEmailData) error
	SendContactMessage(ctx context.Context, data *ContactEmailData) error
}
