package postgres

import (
	"context"
	"database/sql"

	"eventsync/internal/domain"
)

type analyticsRepository struct {
	DB *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) domain.AnalyticsRepository {
	return &analyticsRepository{DB: db}
}

func (r *analyticsRepository) Create(ctx context.Context, a *domain.Analytics) error {
	query := `
		INSERT INTO analytics (event_id, participant_count, date)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, a.EventID, a.ParticipantCount, a.Date).Scan(&a.ID)
}

// List returns every record oldest first. EventName is empty when the event no longer exists.
func (r *analyticsRepository) List(ctx context.Context) ([]*domain.Analytics, error) {
	query := `
		SELECT a.id, a.event_id, COALESCE(e.name, ''), a.participant_count, a.date
		FROM analytics a
		LEFT JOIN events e ON e.id = a.event_id
		ORDER BY a.date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.Analytics, 0)
	for rows.Next() {
		a := &domain.Analytics{}
		if err := rows.Scan(&a.ID, &a.EventID, &a.EventName, &a.ParticipantCount, &a.Date); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *analyticsRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM analytics`)
	return err
}
