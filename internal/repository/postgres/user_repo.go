package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventsync/internal/domain"
)

const userColumns = `
	u.id, u.name, u.email, u.password_hash, u.salt, u.role, u.phone, u.college, u.profile_picture,
	u.created_at, u.updated_at,
	ARRAY(SELECT r.event_id::text FROM user_registered_events r WHERE r.user_id = u.id ORDER BY r.created_at)
`

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func scanUser(s scanner) (*domain.User, error) {
	u := &domain.User{}
	var registered []string
	err := s.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Salt, &u.Role, &u.Phone, &u.College, &u.ProfilePicture,
		&u.CreatedAt, &u.UpdatedAt, pq.Array(&registered),
	)
	if err != nil {
		return nil, err
	}
	if registered == nil {
		registered = []string{}
	}
	u.RegisteredEvents = registered
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, salt, role, phone, college, profile_picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Salt, u.Role, u.Phone, u.College, u.ProfilePicture, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if hasPQCode(err, pqUniqueViolation) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	if u.RegisteredEvents == nil {
		u.RegisteredEvents = []string{}
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.email = $1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u ORDER BY u.created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, salt = $4, phone = $5, college = $6,
			profile_picture = $7, updated_at = $8
		WHERE id = $9
	`
	result, err := r.DB.ExecContext(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Salt, u.Phone, u.College, u.ProfilePicture, u.UpdatedAt, u.ID,
	)
	if err != nil {
		if hasPQCode(err, pqUniqueViolation) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM users`)
	return err
}
