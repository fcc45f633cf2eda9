package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"eventsync/internal/domain"
)

type fixtures struct {
	Users  []userFixture  `yaml:"users"`
	Events []eventFixture `yaml:"events"`
}

type userFixture struct {
	Name        string   `yaml:"name"`
	Email       string   `yaml:"email"`
	Password    string   `yaml:"password"`
	Role        string   `yaml:"role"`
	RegisterFor []string `yaml:"register_for"`
}

type eventFixture struct {
	Name        string    `yaml:"name"`
	Type        string    `yaml:"type"`
	Category    string    `yaml:"category"`
	StartDate   time.Time `yaml:"start_date"`
	EndDate     time.Time `yaml:"end_date"`
	Description string    `yaml:"description"`
	Location    string    `yaml:"location"`
	Duration    string    `yaml:"duration"`
	Picture     string    `yaml:"picture"`
	ApplyLink   string    `yaml:"apply_link"`
}

func parseFixtures(data []byte) (*fixtures, error) {
	var f fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	for _, u := range f.Users {
		if u.Role != domain.RoleAdmin && u.Role != domain.RoleUser {
			return nil, fmt.Errorf("user %s: unknown role %q", u.Email, u.Role)
		}
	}
	for _, e := range f.Events {
		if !domain.IsEventType(e.Type) || !domain.IsEventCategory(e.Category) {
			return nil, fmt.Errorf("event %q: invalid type or category", e.Name)
		}
		if e.EndDate.Before(e.StartDate) {
			return nil, fmt.Errorf("event %q: end_date before start_date", e.Name)
		}
	}
	return &f, nil
}

type seeder struct {
	users       domain.UserRepository
	events      domain.EventRepository
	regs        domain.EventRegistrationRepository
	analytics   domain.AnalyticsRepository
	subscribers domain.NewsletterRepository
	hasher      domain.PasswordHasher
	logger      *slog.Logger
}

// reset empties every table; registrations go with their users and events.
func (s *seeder) reset(ctx context.Context) error {
	if err := s.analytics.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear analytics: %w", err)
	}
	if err := s.subscribers.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear newsletter subscribers: %w", err)
	}
	if err := s.events.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear events: %w", err)
	}
	if err := s.users.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	s.logger.Info("cleared existing data")
	return nil
}

func (s *seeder) apply(ctx context.Context, f *fixtures) error {
	now := time.Now()
	users := make([]*domain.User, 0, len(f.Users))
	var creator *domain.User
	for _, uf := range f.Users {
		salt, err := s.hasher.GenerateSalt()
		if err != nil {
			return err
		}
		hash, err := s.hasher.Hash(salt, uf.Password)
		if err != nil {
			return err
		}
		u := domain.NewUser(uf.Name, uf.Email, uf.Role, now, now)
		u.Salt = salt
		u.PasswordHash = hash
		if err := s.users.Create(ctx, u); err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				return fmt.Errorf("user %s already exists, run with -reset", uf.Email)
			}
			return fmt.Errorf("create user %s: %w", uf.Email, err)
		}
		if creator == nil && u.IsAdmin() {
			creator = u
		}
		users = append(users, u)
		s.logger.Info("seeded user", "email", u.Email, "role", u.Role)
	}
	if creator == nil && len(f.Events) > 0 {
		return errors.New("no admin user in fixtures to own the events")
	}

	byName := make(map[string]string, len(f.Events))
	for _, ef := range f.Events {
		e := &domain.Event{
			Name:        ef.Name,
			Type:        ef.Type,
			Category:    ef.Category,
			StartDate:   ef.StartDate,
			EndDate:     ef.EndDate,
			Description: ef.Description,
			Location:    ef.Location,
			Duration:    ef.Duration,
			Picture:     ef.Picture,
			ApplyLink:   ef.ApplyLink,
			CreatedBy:   creator.ID,
		}
		if err := s.events.Create(ctx, e); err != nil {
			return fmt.Errorf("create event %q: %w", ef.Name, err)
		}
		byName[e.Name] = e.ID
	}
	s.logger.Info("seeded events", "count", len(f.Events))

	for i, uf := range f.Users {
		for _, name := range uf.RegisterFor {
			eventID, ok := byName[name]
			if !ok {
				return fmt.Errorf("user %s: unknown event %q", uf.Email, name)
			}
			if _, err := s.regs.Add(ctx, users[i].ID, eventID); err != nil {
				return fmt.Errorf("register %s for %q: %w", uf.Email, name, err)
			}
		}
		if len(uf.RegisterFor) > 0 {
			s.logger.Info("registered user for events", "email", uf.Email, "count", len(uf.RegisterFor))
		}
	}
	return nil
}
