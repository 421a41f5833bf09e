package repository

import (
	"context"
	"errors"
	"time"

	"wlsd/internal/domain/entity"
)

// ErrEventNotFound is returned when an event lookup finds no row.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the operations for event persistence.
type EventRepository interface {
	// Create persists a new event and fills in its generated ID.
	Create(ctx context.Context, event *entity.Event) error

	// FindByID retrieves a single event. Returns ErrEventNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Event, error)

	// List returns events ordered by start date. When includePast is false,
	// events starting before now are filtered out.
	List(ctx context.Context, now time.Time, includePast bool) ([]*entity.Event, error)

	// Update modifies an existing event. Returns ErrEventNotFound when absent.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes an event. Returns ErrEventNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
