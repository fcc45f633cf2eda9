package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventsync/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	regRepo        domain.EventRegistrationRepository
	renderer       domain.DescriptionRenderer
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	regRepo domain.EventRegistrationRepository,
	renderer domain.DescriptionRenderer,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		regRepo:        regRepo,
		renderer:       renderer,
		contextTimeout: timeout,
	}
}

func (s *eventService) List(ctx context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var problems []string
	if filter.Type != "" && !domain.IsEventType(filter.Type) {
		problems = append(problems, fmt.Sprintf("type must be one of %s", strings.Join(domain.EventTypes, ", ")))
	}
	if filter.Category != "" && !domain.IsEventCategory(filter.Category) {
		problems = append(problems, fmt.Sprintf("category must be one of %s", strings.Join(domain.EventCategories, ", ")))
	}
	if err := domain.NewValidationError(problems...); err != nil {
		return nil, 0, err
	}

	events, total, err := s.eventRepo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	for _, e := range events {
		if err := s.render(e); err != nil {
			return nil, 0, err
		}
	}
	return events, total, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.render(event); err != nil {
		return nil, err
	}
	return event, nil
}

var errMissingCreator = errors.New("event creator is required")

func (s *eventService) Create(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.CreatedBy == "" {
		return errMissingCreator
	}
	trimEvent(event)
	if err := domain.NewValidationError(validateEvent(event)...); err != nil {
		return err
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	// reload to pick up the creator join
	stored, err := s.get(ctx, event.ID)
	if err != nil {
		return err
	}
	*event = *stored
	return s.render(event)
}

func (s *eventService) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(event)
	trimEvent(event)
	if err := domain.NewValidationError(validateEvent(event)...); err != nil {
		return nil, err
	}

	event.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	if err := s.render(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) Register(ctx context.Context, eventID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.get(ctx, eventID); err != nil {
		return false, err
	}
	created, err := s.regRepo.Add(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("register for event: %w", err)
	}
	return created, nil
}

func (s *eventService) Unregister(ctx context.Context, eventID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.get(ctx, eventID); err != nil {
		return err
	}
	if _, err := s.regRepo.Remove(ctx, userID, eventID); err != nil {
		return fmt.Errorf("unregister from event: %w", err)
	}
	return nil
}

func (s *eventService) get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) render(e *domain.Event) error {
	if s.renderer == nil {
		return nil
	}
	html, err := s.renderer.Render(e.Description)
	if err != nil {
		return fmt.Errorf("render description: %w", err)
	}
	e.DescriptionHTML = html
	return nil
}

func trimEvent(e *domain.Event) {
	e.Name = strings.TrimSpace(e.Name)
	e.Type = strings.TrimSpace(strings.ToLower(e.Type))
	e.Category = strings.TrimSpace(strings.ToLower(e.Category))
	e.Location = strings.TrimSpace(e.Location)
	e.Duration = strings.TrimSpace(e.Duration)
	e.Picture = strings.TrimSpace(e.Picture)
	e.ApplyLink = strings.TrimSpace(e.ApplyLink)
}

// validateEvent returns every problem with e; an empty result means e can be stored.
func validateEvent(e *domain.Event) []string {
	var problems []string
	if e.Name == "" {
		problems = append(problems, "name is required")
	}
	switch {
	case e.Type == "":
		problems = append(problems, "type is required")
	case !domain.IsEventType(e.Type):
		problems = append(problems, fmt.Sprintf("type must be one of %s", strings.Join(domain.EventTypes, ", ")))
	}
	switch {
	case e.Category == "":
		problems = append(problems, "category is required")
	case !domain.IsEventCategory(e.Category):
		problems = append(problems, fmt.Sprintf("category must be one of %s", strings.Join(domain.EventCategories, ", ")))
	}
	if e.StartDate.IsZero() {
		problems = append(problems, "start_date is required")
	}
	if e.EndDate.IsZero() {
		problems = append(problems, "end_date is required")
	}
	if !e.StartDate.IsZero() && !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		problems = append(problems, "end_date must not be before start_date")
	}
	if e.ApplyLink != "" && !isHTTPURL(e.ApplyLink) {
		problems = append(problems, "apply_link must be an http or https URL")
	}
	if e.Picture != "" && !isImageRef(e.Picture) {
		problems = append(problems, "picture must be an image URL, upload path or data:image URL")
	}
	return problems
}
