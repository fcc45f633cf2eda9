package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"eventsync/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	salt    string
	saltErr error
}

func (f *fakePasswordHasher) GenerateSalt() (string, error) {
	if f.saltErr != nil {
		return "", f.saltErr
	}
	if f.salt == "" {
		return "salt", nil
	}
	return f.salt, nil
}

func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+"-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err    error
	issued []domain.TokenClaims
}

func (f *fakeTokenIssuer) Issue(claims domain.TokenClaims, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.issued = append(f.issued, claims)
	return "token-" + claims.UserID, nil
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	order     []string
	getErr    error
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) add(u *domain.User) {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	f.order = append(f.order, u.ID)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = fmt.Sprintf("user-%d", len(f.order)+1)
	f.add(u)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		// Return a copy so tests can mutate without affecting stored
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []*domain.User
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	old, ok := f.byID[u.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if existing, ok := f.byEmail[u.Email]; ok && existing.ID != u.ID {
		return domain.ErrDuplicateEmail
	}
	delete(f.byEmail, old.Email)
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) DeleteAll(ctx context.Context) error {
	f.byID = make(map[string]*domain.User)
	f.byEmail = make(map[string]*domain.User)
	f.order = nil
	return nil
}

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	nextID    int
	listErr   error
	createErr error
	lastPage  domain.PaginationParams
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	cp := *e
	cp.Creator = &domain.EventCreator{ID: e.CreatedBy, Name: "Admin User"}
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	f.lastPage = page
	var out []*domain.Event
	for _, e := range f.byID {
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEventRepo) DeleteAll(ctx context.Context) error {
	f.byID = make(map[string]*domain.Event)
	return nil
}

// fakeRegistrationRepo implements domain.EventRegistrationRepository for tests.
type fakeRegistrationRepo struct {
	events *fakeEventRepo
	byUser map[string][]string
	addErr error
}

func newFakeRegistrationRepo(events *fakeEventRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{events: events, byUser: make(map[string][]string)}
}

func (f *fakeRegistrationRepo) Add(ctx context.Context, userID, eventID string) (bool, error) {
	if f.addErr != nil {
		return false, f.addErr
	}
	for _, id := range f.byUser[userID] {
		if id == eventID {
			return false, nil
		}
	}
	f.byUser[userID] = append(f.byUser[userID], eventID)
	return true, nil
}

func (f *fakeRegistrationRepo) Remove(ctx context.Context, userID, eventID string) (bool, error) {
	ids := f.byUser[userID]
	for i, id := range ids {
		if id == eventID {
			f.byUser[userID] = append(ids[:i], ids[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRegistrationRepo) ListEventsByUserID(ctx context.Context, userID string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, id := range f.byUser[userID] {
		if e, err := f.events.GetByID(ctx, id); err == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeDescriptionRenderer implements domain.DescriptionRenderer for tests.
type fakeDescriptionRenderer struct {
	err error
}

func (f *fakeDescriptionRenderer) Render(source string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if source == "" {
		return "", nil
	}
	return "<p>" + source + "</p>\n", nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	err      error
	welcomes []*domain.NewsletterWelcomeEmailData
	contacts []*domain.ContactEmailData
}

func (f *fakeEmailService) SendNewsletterWelcome(ctx context.Context, data *domain.NewsletterWelcomeEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.welcomes = append(f.welcomes, data)
	return nil
}

func (f *fakeEmailService) SendContactMessage(ctx context.Context, data *domain.ContactEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.contacts = append(f.contacts, data)
	return nil
}
