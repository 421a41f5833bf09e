package handler

import (
	"net/http"
	"strconv"

	domainerrors "wlsd/internal/domain/errors"
	"wlsd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for event-related handlers.
type EventHandler struct {
	uc usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

// ListPage displays all upcoming events; ?past=true includes past ones.
func (h *EventHandler) ListPage(c echo.Context) error {
	includePast, _ := strconv.ParseBool(c.QueryParam("past"))

	events, err := h.uc.ListEvents(c.Request().Context(), includePast)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "event-list.html", map[string]any{
		"Events": events,
	})
}

// CreatePage displays the form to create a new event.
func (h *EventHandler) CreatePage(c echo.Context) error {
	return c.Render(http.StatusOK, "event-create.html", nil)
}

// CreateForm processes the form and creates a new event.
func (h *EventHandler) CreateForm(c echo.Context) error {
	var input usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid event input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if _, err := h.uc.CreateEvent(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return c.String(http.StatusOK, "Event created.")
}

// UpdatePage displays the form to update an event.
func (h *EventHandler) UpdatePage(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	event, err := h.uc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "event-update.html", map[string]any{
		"Event": event,
	})
}

// UpdateForm processes the form and updates an event.
func (h *EventHandler) UpdateForm(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	var input usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBadRequest.WrapMessage("invalid event input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.UpdateEvent(c.Request().Context(), id, &input); err != nil {
		return errors.WithStack(err)
	}

	return c.String(http.StatusOK, "Event updated.")
}

// Delete removes an event.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteEvent(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.String(http.StatusOK, "Event deleted.")
}

// eventID parses the :event_id path parameter. Anything unparseable is a 400,
// never a crash.
func eventID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("event_id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrBadRequest.WrapMessage("invalid event id")
	}

	return id, nil
}
