package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eventsync/internal/domain"
)

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &statsRepository{DB: db}
}

// Summary runs the dashboard aggregates. Categories without events report zero.
func (r *statsRepository) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	s := &domain.DashboardSummary{EventsByCategory: make(map[string]int, len(domain.EventCategories))}
	for _, c := range domain.EventCategories {
		s.EventsByCategory[c] = 0
	}

	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE type = 'tech'),
			COUNT(*) FILTER (WHERE type = 'non-tech')
		FROM events
	`).Scan(&s.TotalEvents, &s.TechEvents, &s.NonTechEvents)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT category, COUNT(*) FROM events GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		s.EventsByCategory[category] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	err = r.DB.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM user_registered_events),
			(SELECT COALESCE(SUM(participant_count), 0) FROM analytics)
	`).Scan(&s.TotalUsers, &s.TotalRegistrations, &s.TotalParticipants)
	if err != nil {
		return nil, fmt.Errorf("count totals: %w", err)
	}
	return s, nil
}
