package impl

import (
	"context"
	"log/slog"
	"time"

	"wlsd/internal/domain/entity"
	domainerrors "wlsd/internal/domain/errors"
	"wlsd/internal/domain/repository"
	"wlsd/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		logger:    params.Logger,
	}
}

// CreateEvent persists a new event from form input.
func (srv *eventService) CreateEvent(ctx context.Context, input *usecase.EventInput) (*entity.Event, error) {
	event := &entity.Event{
		Title:       input.Title,
		Artist:      input.Artist,
		Description: input.Description,
		StartDate:   input.StartDate,
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.logger.Info("Event created", slog.Int64("event_id", event.ID))

	return event, nil
}

// GetEvent retrieves a single event.
func (srv *eventService) GetEvent(ctx context.Context, id int64) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("event not found")
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

// ListEvents returns upcoming events, or all events when includePast is set.
func (srv *eventService) ListEvents(ctx context.Context, includePast bool) ([]*entity.Event, error) {
	events, err := srv.eventRepo.List(ctx, time.Now(), includePast)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

// UpdateEvent modifies an existing event from form input.
func (srv *eventService) UpdateEvent(ctx context.Context, id int64, input *usecase.EventInput) error {
	event := &entity.Event{
		ID:          id,
		Title:       input.Title,
		Artist:      input.Artist,
		Description: input.Description,
		StartDate:   input.StartDate,
	}

	if err := srv.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("event not found")
		}

		return errors.Wrap(err, "failed to update event")
	}

	srv.logger.Info("Event updated", slog.Int64("event_id", id))

	return nil
}

// DeleteEvent removes an event.
func (srv *eventService) DeleteEvent(ctx context.Context, id int64) error {
	if err := srv.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("event not found")
		}

		return errors.Wrap(err, "failed to delete event")
	}

	srv.logger.Info("Event deleted", slog.Int64("event_id", id))

	return nil
}
