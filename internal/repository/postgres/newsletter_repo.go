package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventsync/internal/domain"
)

type newsletterRepository struct {
	DB *sql.DB
}

func NewNewsletterRepository(db *sql.DB) domain.NewsletterRepository {
	return &newsletterRepository{DB: db}
}

func (r *newsletterRepository) Create(ctx context.Context, s *domain.Subscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (name, email, subscribed_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.Name, s.Email, s.SubscribedAt).Scan(&s.ID)
	if err != nil && hasPQCode(err, pqUniqueViolation) {
		return domain.ErrAlreadySubscribed
	}
	return err
}

func (r *newsletterRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	query := `
		SELECT id, name, email, subscribed_at
		FROM newsletter_subscribers
		WHERE email = $1
	`
	s := &domain.Subscriber{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&s.ID, &s.Name, &s.Email, &s.SubscribedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *newsletterRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM newsletter_subscribers`)
	return err
}
