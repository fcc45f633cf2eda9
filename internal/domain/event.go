package domain

import (
	"context"
	"time"
)

// Event types.
const (
	EventTypeTech    = "tech"
	EventTypeNonTech = "non-tech"
)

// Event categories.
const (
	CategoryHackathon     = "hackathon"
	CategoryTechFest      = "tech-fest"
	CategoryContest       = "contest"
	CategorySports        = "sports"
	CategoryCultural      = "cultural"
	CategoryArtFair       = "art-fair"
	CategoryMusicFestival = "music-festival"
	CategoryOther         = "other"
)

// EventTypes lists every accepted event type.
var EventTypes = []string{EventTypeTech, EventTypeNonTech}

// EventCategories lists every accepted event category.
var EventCategories = []string{
	CategoryHackathon,
	CategoryTechFest,
	CategoryContest,
	CategorySports,
	CategoryCultural,
	CategoryArtFair,
	CategoryMusicFestival,
	CategoryOther,
}

// IsEventType reports whether t is an accepted event type.
func IsEventType(t string) bool {
	return contains(EventTypes, t)
}

// IsEventCategory reports whether c is an accepted event category.
func IsEventCategory(c string) bool {
	return contains(EventCategories, c)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Event represents a published event
// swagger:model Event
type Event struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Type            string        `json:"type"`
	Category        string        `json:"category"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	Description     string        `json:"description"`
	DescriptionHTML string        `json:"description_html,omitempty"`
	Location        string        `json:"location,omitempty"`
	Duration        string        `json:"duration,omitempty"`
	Picture         string        `json:"picture,omitempty"`
	ApplyLink       string        `json:"apply_link,omitempty"`
	CreatedBy       string        `json:"created_by"`
	Creator         *EventCreator `json:"creator,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// EventCreator is the public view of the user who created an event.
type EventCreator struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EventFilter narrows event listings. Empty fields match everything.
type EventFilter struct {
	Type     string
	Category string
}

// EventPatch holds event changes. Empty strings and nil dates keep the current value.
type EventPatch struct {
	Name        string
	Type        string
	Category    string
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
	Location    string
	Duration    string
	Picture     string
	ApplyLink   string
}

// Apply copies the non-empty fields of p onto e.
func (p EventPatch) Apply(e *Event) {
	if p.Name != "" {
		e.Name = p.Name
	}
	if p.Type != "" {
		e.Type = p.Type
	}
	if p.Category != "" {
		e.Category = p.Category
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Description != "" {
		e.Description = p.Description
	}
	if p.Location != "" {
		e.Location = p.Location
	}
	if p.Duration != "" {
		e.Duration = p.Duration
	}
	if p.Picture != "" {
		e.Picture = p.Picture
	}
	if p.ApplyLink != "" {
		e.ApplyLink = p.ApplyLink
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, filter EventFilter, page PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// EventService defines event browsing, administration and registration.
type EventService interface {
	List(ctx context.Context, filter EventFilter, page PaginationParams) ([]*Event, int, error)
	Get(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
	Register(ctx context.Context, eventID, userID string) (created bool, err error)
	Unregister(ctx context.Context, eventID, userID string) error
}

// DescriptionRenderer converts an event description to HTML.
type DescriptionRenderer interface {
	Render(source string) (string, error)
}
