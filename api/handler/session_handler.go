package handler

import (
	"net/http"

	"foundercompass/internal/dto"
	"foundercompass/internal/entity"
	"foundercompass/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type SessionHandler struct {
	Service  *service.SessionService
	Validate *validator.Validate
}

func NewSessionHandler(svc *service.SessionService, validate *validator.Validate) *SessionHandler {
	return &SessionHandler{Service: svc, Validate: validate}
}

func (h *SessionHandler) Start(c echo.Context) error {
	var req dto.StartSessionRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	result, err := h.Service.Start(c.Request().Context(), req.Email)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.StartSessionResponse{
		SessionID: result.Session.ID.String(),
		UserID:    result.User.ID.String(),
		Questions: result.Questions,
	})
}

// Complete takes the raw answer object as the request body. The submitted
// mapping replaces the session's answers wholesale.
func (h *SessionHandler) Complete(c echo.Context) error {
	var answers entity.AnswerSet
	if err := decodeJSON(c, &answers); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	report, err := h.Service.Complete(c.Request().Context(), c.Param("sessionId"), answers)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CompleteSessionResponse{
		Report: dto.ReportResponseFromEntity(report),
	})
}

func (h *SessionHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
