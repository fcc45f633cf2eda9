package http

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"eventsync/internal/domain"
)

// In-memory repositories so router tests run the real services end to end.

type memoryStore struct {
	mu          sync.Mutex
	seq         int
	users       map[string]*domain.User
	events      map[string]*domain.Event
	regs        map[string]map[string]bool
	subscribers map[string]*domain.Subscriber
	analytics   []*domain.Analytics
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:       map[string]*domain.User{},
		events:      map[string]*domain.Event{},
		regs:        map[string]map[string]bool{},
		subscribers: map[string]*domain.Subscriber{},
	}
}

func (s *memoryStore) nextID() string {
	s.seq++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", s.seq)
}

type memoryUserRepo struct{ s *memoryStore }

func (r memoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	u.ID = r.s.nextID()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r memoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memoryUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memoryUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryUserRepo) Update(ctx context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r memoryUserRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users = map[string]*domain.User{}
	return nil
}

type memoryEventRepo struct{ s *memoryStore }

func (r memoryEventRepo) Create(ctx context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = r.s.nextID()
	cp := *e
	r.s.events[e.ID] = &cp
	return nil
}

func (r memoryEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	if u, ok := r.s.users[e.CreatedBy]; ok {
		cp.Creator = &domain.EventCreator{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return &cp, nil
}

func (r memoryEventRepo) List(ctx context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Event
	for _, e := range r.s.events {
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

func (r memoryEventRepo) Update(ctx context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.s.events[e.ID] = &cp
	return nil
}

func (r memoryEventRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.events, id)
	for _, evs := range r.s.regs {
		delete(evs, id)
	}
	return nil
}

func (r memoryEventRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.events = map[string]*domain.Event{}
	return nil
}

type memoryRegistrationRepo struct{ s *memoryStore }

func (r memoryRegistrationRepo) Add(ctx context.Context, userID, eventID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.regs[userID] == nil {
		r.s.regs[userID] = map[string]bool{}
	}
	if r.s.regs[userID][eventID] {
		return false, nil
	}
	r.s.regs[userID][eventID] = true
	return true, nil
}

func (r memoryRegistrationRepo) Remove(ctx context.Context, userID, eventID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.regs[userID][eventID] {
		return false, nil
	}
	delete(r.s.regs[userID], eventID)
	return true, nil
}

func (r memoryRegistrationRepo) ListEventsByUserID(ctx context.Context, userID string) ([]*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*domain.Event{}
	for id := range r.s.regs[userID] {
		if e, ok := r.s.events[id]; ok {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memoryNewsletterRepo struct{ s *memoryStore }

func (r memoryNewsletterRepo) Create(ctx context.Context, sub *domain.Subscriber) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.subscribers[sub.Email]; ok {
		return domain.ErrAlreadySubscribed
	}
	sub.ID = r.s.nextID()
	cp := *sub
	r.s.subscribers[sub.Email] = &cp
	return nil
}

func (r memoryNewsletterRepo) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub, ok := r.s.subscribers[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *sub
	return &cp, nil
}

func (r memoryNewsletterRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.subscribers = map[string]*domain.Subscriber{}
	return nil
}

type memoryAnalyticsRepo struct{ s *memoryStore }

func (r memoryAnalyticsRepo) Create(ctx context.Context, a *domain.Analytics) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.nextID()
	if e, ok := r.s.events[a.EventID]; ok {
		a.EventName = e.Name
	}
	cp := *a
	r.s.analytics = append(r.s.analytics, &cp)
	return nil
}

func (r memoryAnalyticsRepo) List(ctx context.Context) ([]*domain.Analytics, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Analytics, 0, len(r.s.analytics))
	for _, a := range r.s.analytics {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r memoryAnalyticsRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.analytics = nil
	return nil
}

func (r memoryAnalyticsRepo) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sum := &domain.DashboardSummary{EventsByCategory: map[string]int{}, TotalUsers: len(r.s.users)}
	for _, e := range r.s.events {
		sum.TotalEvents++
		if e.Type == domain.EventTypeTech {
			sum.TechEvents++
		} else {
			sum.NonTechEvents++
		}
		sum.EventsByCategory[e.Category]++
	}
	for _, evs := range r.s.regs {
		sum.TotalRegistrations += len(evs)
	}
	for _, a := range r.s.analytics {
		sum.TotalParticipants += a.ParticipantCount
	}
	return sum, nil
}
