package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_Summary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\), COUNT\(\*\) FILTER \(WHERE type = 'tech'\)`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "tech", "non_tech"}).AddRow(5, 2, 3))
	mock.ExpectQuery(`SELECT category, COUNT\(\*\) FROM events GROUP BY category`).
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).
			AddRow("hackathon", 1).
			AddRow("tech-fest", 1).
			AddRow("sports", 3))
	mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM users\)`).
		WillReturnRows(sqlmock.NewRows([]string{"users", "registrations", "participants"}).AddRow(2, 3, 450))

	s, err := NewStatsRepository(db).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, s.TotalEvents)
	assert.Equal(t, 2, s.TechEvents)
	assert.Equal(t, 3, s.NonTechEvents)
	assert.Equal(t, 3, s.EventsByCategory["sports"])
	assert.Equal(t, 0, s.EventsByCategory["music-festival"], "absent categories report zero")
	assert.Len(t, s.EventsByCategory, 8)
	assert.Equal(t, 2, s.TotalUsers)
	assert.Equal(t, 3, s.TotalRegistrations)
	assert.Equal(t, 450, s.TotalParticipants)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_Summary_error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM events`).WillReturnError(sql.ErrConnDone)

	_, err = NewStatsRepository(db).Summary(context.Background())
	require.ErrorIs(t, err, sql.ErrConnDone)
}
