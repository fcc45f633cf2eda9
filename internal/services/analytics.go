package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventsync/internal/domain"
)

type analyticsService struct {
	analyticsRepo  domain.AnalyticsRepository
	statsRepo      domain.StatsRepository
	contextTimeout time.Duration
}

// NewAnalyticsService returns an AnalyticsService backed by the given repositories.
func NewAnalyticsService(analyticsRepo domain.AnalyticsRepository, statsRepo domain.StatsRepository, timeout time.Duration) domain.AnalyticsService {
	return &analyticsService{
		analyticsRepo:  analyticsRepo,
		statsRepo:      statsRepo,
		contextTimeout: timeout,
	}
}

func (s *analyticsService) List(ctx context.Context) ([]*domain.Analytics, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	records, err := s.analyticsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list analytics: %w", err)
	}
	if records == nil {
		records = []*domain.Analytics{}
	}
	return records, nil
}

// Record stores a participant count. The event id is not checked against the events table.
func (s *analyticsService) Record(ctx context.Context, eventID string, participantCount int) (*domain.Analytics, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	eventID = strings.TrimSpace(eventID)
	var problems []string
	if eventID == "" {
		problems = append(problems, "event_id is required")
	} else if _, err := uuid.Parse(eventID); err != nil {
		problems = append(problems, "event_id must be a valid id")
	}
	if participantCount < 0 {
		problems = append(problems, "participant_count must be zero or more")
	}
	if err := domain.NewValidationError(problems...); err != nil {
		return nil, err
	}

	a := &domain.Analytics{EventID: eventID, ParticipantCount: participantCount, Date: time.Now()}
	if err := s.analyticsRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("record analytics: %w", err)
	}
	return a, nil
}

func (s *analyticsService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	summary, err := s.statsRepo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return summary, nil
}
