package handler

import (
	"net/http"

	"foundercompass/internal/dto"
	"foundercompass/internal/entity"
	"foundercompass/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	Service  *service.SessionService
	Validate *validator.Validate
}

func NewEventHandler(svc *service.SessionService, validate *validator.Validate) *EventHandler {
	return &EventHandler{Service: svc, Validate: validate}
}

func (h *EventHandler) Track(c echo.Context) error {
	var req dto.TrackEventRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	input := service.TrackEventInput{
		SessionID: req.SessionID,
		UserID:    req.UserID,
		EventType: entity.TrackingEventType(req.EventType),
		Details:   req.Details,
	}
	if err := h.Service.RecordEvent(c.Request().Context(), input); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, dto.MessageResponse{Message: "event recorded"})
}
