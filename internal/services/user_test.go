package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsync/internal/domain"
)

const testTimeout = 5 * time.Second

func newTestUserService(users *fakeUserRepo, issuer *fakeTokenIssuer) domain.UserService {
	events := newFakeEventRepo()
	return NewUserService(users, newFakeRegistrationRepo(events), &fakePasswordHasher{}, issuer, time.Hour, testTimeout)
}

func seedUser(f *fakeUserRepo, id, email, password, role string) *domain.User {
	now := time.Now()
	u := domain.NewUser("Alice", email, role, now, now)
	u.ID = id
	u.Salt = "salt"
	u.PasswordHash = "hash-salt-" + password
	f.add(u)
	return u
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(*fakeUserRepo)
		userName string
		email    string
		password string
		errIs    error
		wantMsg  string
	}{
		{
			name:     "success",
			setup:    func(f *fakeUserRepo) {},
			userName: "Alice",
			email:    "  Alice@Example.com ",
			password: "secret1",
		},
		{
			name:     "missing name",
			setup:    func(f *fakeUserRepo) {},
			email:    "alice@example.com",
			password: "secret1",
			errIs:    domain.ErrInvalidInput,
			wantMsg:  "name is required",
		},
		{
			name:     "bad email",
			setup:    func(f *fakeUserRepo) {},
			userName: "Alice",
			email:    "alice",
			password: "secret1",
			errIs:    domain.ErrInvalidInput,
			wantMsg:  "invalid email format",
		},
		{
			name:     "short password",
			setup:    func(f *fakeUserRepo) {},
			userName: "Alice",
			email:    "alice@example.com",
			password: "12345",
			errIs:    domain.ErrInvalidInput,
			wantMsg:  "at least 6 characters",
		},
		{
			name:     "already registered",
			setup:    func(f *fakeUserRepo) { seedUser(f, "user-9", "alice@example.com", "secret1", domain.RoleUser) },
			userName: "Alice",
			email:    "alice@example.com",
			password: "secret1",
			errIs:    domain.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUserRepo()
			tt.setup(users)
			issuer := &fakeTokenIssuer{}
			svc := newTestUserService(users, issuer)

			token, user, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				if tt.wantMsg != "" {
					assert.Contains(t, err.Error(), tt.wantMsg)
				}
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-"+user.ID, token)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, domain.RoleUser, user.Role)
			assert.Equal(t, "hash-salt-secret1", user.PasswordHash)
			require.Len(t, issuer.issued, 1)
			assert.Equal(t, domain.RoleUser, issuer.issued[0].Role)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		getErr   error
		errIs    error
		wantErr  bool
	}{
		{name: "success", email: "Alice@example.com", password: "secret1"},
		{name: "wrong password", email: "alice@example.com", password: "nope", errIs: domain.ErrInvalidCredentials},
		{name: "unknown email", email: "bob@example.com", password: "secret1", errIs: domain.ErrInvalidCredentials},
		{name: "missing fields", email: "", password: "", errIs: domain.ErrInvalidInput},
		{name: "repo error", email: "alice@example.com", password: "secret1", getErr: sql.ErrConnDone, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUserRepo()
			seedUser(users, "user-1", "alice@example.com", "secret1", domain.RoleAdmin)
			users.getErr = tt.getErr
			issuer := &fakeTokenIssuer{}
			svc := newTestUserService(users, issuer)

			token, user, err := svc.Login(ctx, tt.email, tt.password)
			if tt.errIs != nil || tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				} else {
					assert.False(t, errors.Is(err, domain.ErrInvalidCredentials))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-user-1", token)
			assert.Equal(t, "user-1", user.ID)
			assert.Equal(t, domain.RoleAdmin, issuer.issued[0].Role)
		})
	}
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserRepo()
	seedUser(users, "user-1", "alice@example.com", "secret1", domain.RoleUser)
	svc := newTestUserService(users, &fakeTokenIssuer{})

	user, err := svc.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.GetByID(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	users.getErr = sql.ErrConnDone
	_, err = svc.GetByID(ctx, "user-1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserRepo()
	svc := newTestUserService(users, &fakeTokenIssuer{})

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	seedUser(users, "user-1", "a@example.com", "secret1", domain.RoleAdmin)
	seedUser(users, "user-2", "b@example.com", "secret1", domain.RoleUser)
	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "user-1", list[0].ID)
}

func TestUserService_RegisteredEvents(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserRepo()
	seedUser(users, "user-1", "alice@example.com", "secret1", domain.RoleUser)
	events := newFakeEventRepo()
	require.NoError(t, events.Create(ctx, &domain.Event{Name: "AI Hackathon", CreatedBy: "admin-1"}))
	regs := newFakeRegistrationRepo(events)
	_, _ = regs.Add(ctx, "user-1", "ev-1")
	svc := NewUserService(users, regs, &fakePasswordHasher{}, &fakeTokenIssuer{}, time.Hour, testTimeout)

	list, err := svc.RegisteredEvents(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "AI Hackathon", list[0].Name)

	_, err = svc.RegisteredEvents(ctx, "gone")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		upd    domain.UserUpdate
		setup  func(*fakeUserRepo)
		errIs  error
		assert func(t *testing.T, u *domain.User)
	}{
		{
			name: "empty fields keep current values",
			upd:  domain.UserUpdate{College: "MIT"},
			assert: func(t *testing.T, u *domain.User) {
				assert.Equal(t, "Alice", u.Name)
				assert.Equal(t, "alice@example.com", u.Email)
				assert.Equal(t, "MIT", u.College)
				assert.Equal(t, "hash-salt-secret1", u.PasswordHash)
			},
		},
		{
			name: "new password is re-hashed",
			upd:  domain.UserUpdate{Password: "newpass"},
			assert: func(t *testing.T, u *domain.User) {
				assert.Equal(t, "hash-salt-newpass", u.PasswordHash)
			},
		},
		{
			name: "email change",
			upd:  domain.UserUpdate{Name: "Alicia", Email: "ALICIA@example.com"},
			assert: func(t *testing.T, u *domain.User) {
				assert.Equal(t, "Alicia", u.Name)
				assert.Equal(t, "alicia@example.com", u.Email)
			},
		},
		{
			name:  "email taken",
			upd:   domain.UserUpdate{Email: "bob@example.com"},
			setup: func(f *fakeUserRepo) { seedUser(f, "user-2", "bob@example.com", "secret1", domain.RoleUser) },
			errIs: domain.ErrDuplicateEmail,
		},
		{
			name:  "invalid email",
			upd:   domain.UserUpdate{Email: "not-an-email"},
			errIs: domain.ErrInvalidInput,
		},
		{
			name:  "short password",
			upd:   domain.UserUpdate{Password: "123"},
			errIs: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newFakeUserRepo()
			seedUser(users, "user-1", "alice@example.com", "secret1", domain.RoleUser)
			if tt.setup != nil {
				tt.setup(users)
			}
			issuer := &fakeTokenIssuer{}
			svc := newTestUserService(users, issuer)

			token, user, err := svc.Update(ctx, "user-1", tt.upd)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-user-1", token)
			tt.assert(t, user)
			require.Len(t, issuer.issued, 1)
			assert.Equal(t, user.Email, issuer.issued[0].Email, "token reflects updated profile")

			stored, err := users.GetByID(ctx, "user-1")
			require.NoError(t, err)
			assert.Equal(t, user.Email, stored.Email)
		})
	}
}

func TestUserService_Update_missingUser(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo(), &fakeTokenIssuer{})
	_, _, err := svc.Update(context.Background(), "gone", domain.UserUpdate{Name: "x"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_registerThenLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(newFakeUserRepo(), &fakeTokenIssuer{})

	_, registered, err := svc.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}
