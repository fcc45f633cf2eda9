package domain

import "context"

// EventRegistrationRepository stores which events each user registered for.
type EventRegistrationRepository interface {
	// Add records the registration; created is false when it already existed.
	Add(ctx context.Context, userID, eventID string) (created bool, err error)
	// Remove deletes the registration; removed is false when there was none.
	Remove(ctx context.Context, userID, eventID string) (removed bool, err error)
	ListEventsByUserID(ctx context.Context, userID string) ([]*Event, error)
}
