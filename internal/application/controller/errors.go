package controller

import (
	"errors"
	"net/http"

	"weather-api/internal/domain/model"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError maps domain errors to the {"error": ...} response body
func respondError(c echo.Context, err error) error {
	var groupErr *model.GroupDeleteError
	var upstreamErr *model.UpstreamError

	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &groupErr):
		log.Error(groupErr.Message, zap.Strings("failed", groupErr.Result.Failed), zap.Error(groupErr.Err))
		return c.JSON(http.StatusInternalServerError, model.DeleteGroupResponse{
			Error:   groupErr.Message,
			Deleted: nonNil(groupErr.Result.Deleted),
			Failed:  nonNil(groupErr.Result.Failed),
		})
	case errors.As(err, &upstreamErr):
		log.Error(upstreamErr.Message, zap.Error(upstreamErr.Err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": upstreamErr.Message})
	default:
		log.Error(msg.GetMessage("app.internal-error"), zap.String("path", c.Path()), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage("app.internal-error")})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
