package domain

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadySubscribed is returned when the email is already on the newsletter list.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// Subscriber is a newsletter subscriber
// swagger:model Subscriber
type Subscriber struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// NewsletterRepository defines the interface for subscriber storage.
type NewsletterRepository interface {
	Create(ctx context.Context, s *Subscriber) error
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
	DeleteAll(ctx context.Context) error
}

// NewsletterService subscribes people to the newsletter.
type NewsletterService interface {
	Subscribe(ctx context.Context, name, email string) (*Subscriber, error)
}
