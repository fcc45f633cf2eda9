package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"eventsync/internal/delivery/http/helpers"
	"eventsync/internal/delivery/http/middleware"
	"eventsync/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func withClaims(ctx context.Context, userID, role string) context.Context {
	return middleware.SetClaims(ctx, &domain.TokenClaims{UserID: userID, Role: role})
}

// decodeEnvelope decodes the response and re-decodes envelope.Data into data when non-nil.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	if data != nil && envelope.Data != nil {
		b, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(b, data))
	}
	return envelope
}

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	token      string
	user       *domain.User
	users      []*domain.User
	events     []*domain.Event
	err        error
	lastUserID string
	lastUpdate domain.UserUpdate
}

func (f *fakeUserService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

func (f *fakeUserService) List(ctx context.Context) ([]*domain.User, error) {
	return f.users, f.err
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserService) RegisteredEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	f.lastUserID = userID
	return f.events, f.err
}

func (f *fakeUserService) Update(ctx context.Context, userID string, upd domain.UserUpdate) (string, *domain.User, error) {
	f.lastUserID = userID
	f.lastUpdate = upd
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	event      *domain.Event
	events     []*domain.Event
	total      int
	created    bool
	err        error
	lastFilter domain.EventFilter
	lastPage   domain.PaginationParams
	lastPatch  domain.EventPatch
	lastCreate *domain.Event
	lastID     string
	lastUserID string
}

func (f *fakeEventService) List(ctx context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastFilter = filter
	f.lastPage = page
	return f.events, f.total, f.err
}

func (f *fakeEventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	f.lastID = id
	return f.event, f.err
}

func (f *fakeEventService) Create(ctx context.Context, e *domain.Event) error {
	f.lastCreate = e
	if f.err != nil {
		return f.err
	}
	e.ID = "6f1c1c7e-4b1a-4d8e-9a55-1e3a2c9f0b11"
	return nil
}

func (f *fakeEventService) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	f.lastID = id
	f.lastPatch = patch
	return f.event, f.err
}

func (f *fakeEventService) Delete(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakeEventService) Register(ctx context.Context, eventID, userID string) (bool, error) {
	f.lastID = eventID
	f.lastUserID = userID
	return f.created, f.err
}

func (f *fakeEventService) Unregister(ctx context.Context, eventID, userID string) error {
	f.lastID = eventID
	f.lastUserID = userID
	return f.err
}
