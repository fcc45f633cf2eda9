package domain

import (
	"context"
	"time"
)

// Analytics is one participant-count record for an event.
// swagger:model Analytics
type Analytics struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	EventName        string    `json:"event_name"`
	ParticipantCount int       `json:"participant_count"`
	Date             time.Time `json:"date"`
}

// DashboardSummary aggregates the numbers shown on the admin dashboard.
// swagger:model DashboardSummary
type DashboardSummary struct {
	TotalEvents        int            `json:"total_events"`
	TechEvents         int            `json:"tech_events"`
	NonTechEvents      int            `json:"non_tech_events"`
	EventsByCategory   map[string]int `json:"events_by_category"`
	TotalUsers         int            `json:"total_users"`
	TotalRegistrations int            `json:"total_registrations"`
	TotalParticipants  int            `json:"total_participants"`
}

// AnalyticsRepository defines the interface for analytics storage.
type AnalyticsRepository interface {
	Create(ctx context.Context, a *Analytics) error
	List(ctx context.Context) ([]*Analytics, error)
	DeleteAll(ctx context.Context) error
}

// StatsRepository computes dashboard aggregates.
type StatsRepository interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

// AnalyticsService lists and records analytics and builds the dashboard summary.
type AnalyticsService interface {
	List(ctx context.Context) ([]*Analytics, error)
	Record(ctx context.Context, eventID string, participantCount int) (*Analytics, error)
	Summary(ctx context.Context) (*DashboardSummary, error)
}
