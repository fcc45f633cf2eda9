package domain

import "context"

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactService relays contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, msg *ContactMessage) error
}
