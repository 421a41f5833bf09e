package usecase

import (
	"context"

	"wlsd/internal/domain/entity"
)

// EventInput carries the event create/update form fields.
type EventInput struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Artist      string `form:"artist" json:"artist" validate:"required"`
	Description string `form:"description" json:"description"`
	StartDate   string `form:"start_date" json:"start_date" validate:"required"`
}

// EventUsecase defines the operations for event management.
type EventUsecase interface {
	CreateEvent(ctx context.Context, input *EventInput) (*entity.Event, error)
	GetEvent(ctx context.Context, id int64) (*entity.Event, error)
	ListEvents(ctx context.Context, includePast bool) ([]*entity.Event, error)
	UpdateEvent(ctx context.Context, id int64, input *EventInput) error
	DeleteEvent(ctx context.Context, id int64) error
}
