package handler

import (
	"net/http"

	"foundercompass/internal/dto"
	"foundercompass/internal/service"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	Service *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{Service: svc}
}

func (h *ReportHandler) ListByUser(c echo.Context) error {
	reports, err := h.Service.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ReportResponsesFromEntities(reports))
}
