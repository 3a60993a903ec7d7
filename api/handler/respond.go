package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"foundercompass/internal/entity"
	"foundercompass/internal/service"

	"github.com/labstack/echo/v4"
)

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"message": err.Error()})
}

func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidSessionID),
		errors.Is(err, service.ErrInvalidUserID),
		errors.Is(err, service.ErrEmailAlreadyRegistered),
		errors.Is(err, entity.ErrMalformedAnswer):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrSessionAlreadyCompleted):
		status = http.StatusConflict
	}
	return writeError(c, status, err)
}
