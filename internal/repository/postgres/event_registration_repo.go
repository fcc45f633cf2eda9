package postgres

import (
	"context"
	"database/sql"
	"time"

	"eventsync/internal/domain"
)

type eventRegistrationRepository struct {
	DB *sql.DB
}

func NewEventRegistrationRepository(db *sql.DB) domain.EventRegistrationRepository {
	return &eventRegistrationRepository{
		DB: db,
	}
}

func (r *eventRegistrationRepository) Add(ctx context.Context, userID, eventID string) (bool, error) {
	query := `
		INSERT INTO user_registered_events (user_id, event_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query, userID, eventID, time.Now())
	if err != nil {
		if hasPQCode(err, pqForeignKeyViolation) {
			return false, domain.ErrNotFound
		}
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *eventRegistrationRepository) Remove(ctx context.Context, userID, eventID string) (bool, error) {
	query := `DELETE FROM user_registered_events WHERE user_id = $1 AND event_id = $2`
	result, err := r.DB.ExecContext(ctx, query, userID, eventID)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *eventRegistrationRepository) ListEventsByUserID(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM user_registered_events r
		JOIN events e ON e.id = r.event_id
		LEFT JOIN users u ON u.id = e.created_by
		WHERE r.user_id = $1
		ORDER BY r.created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}
