package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventsync/internal/domain"
)

const eventColumns = `
	e.id, e.name, e.type, e.category, e.start_date, e.end_date, e.description, e.location, e.duration,
	e.picture, e.apply_link, e.created_by, e.created_at, e.updated_at, u.id, u.name, u.email
`

const eventFrom = `FROM events e LEFT JOIN users u ON u.id = e.created_by`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func scanEvent(s scanner) (*domain.Event, error) {
	e := &domain.Event{}
	var creatorID, creatorName, creatorEmail sql.NullString
	err := s.Scan(
		&e.ID, &e.Name, &e.Type, &e.Category, &e.StartDate, &e.EndDate, &e.Description, &e.Location, &e.Duration,
		&e.Picture, &e.ApplyLink, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt, &creatorID, &creatorName, &creatorEmail,
	)
	if err != nil {
		return nil, err
	}
	if creatorID.Valid {
		e.Creator = &domain.EventCreator{ID: creatorID.String, Name: creatorName.String, Email: creatorEmail.String}
	}
	return e, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, type, category, start_date, end_date, description, location, duration,
			picture, apply_link, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Name, e.Type, e.Category, e.StartDate, e.EndDate, e.Description, e.Location, e.Duration,
		e.Picture, e.ApplyLink, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + eventFrom + ` WHERE e.id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func eventWhere(filter domain.EventFilter) (string, []any) {
	var clauses []string
	var args []any
	if filter.Type != "" {
		args = append(args, filter.Type)
		clauses = append(clauses, fmt.Sprintf("e.type = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("e.category = $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	where, args := eventWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events e`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT %s %s%s ORDER BY e.start_date ASC, e.created_at ASC LIMIT $%d OFFSET $%d`,
		eventColumns, eventFrom, where, n+1, n+2)
	args = append(args, page.PageSize, page.Offset())
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	events, err := scanEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, type = $2, category = $3, start_date = $4, end_date = $5, description = $6,
			location = $7, duration = $8, picture = $9, apply_link = $10, updated_at = $11
		WHERE id = $12
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Name, e.Type, e.Category, e.StartDate, e.EndDate, e.Description,
		e.Location, e.Duration, e.Picture, e.ApplyLink, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events`)
	return err
}
