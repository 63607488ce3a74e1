package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-story/internal/domain/model"
)

// errorStatus maps an error kind to its HTTP status
func errorStatus(err error) int {
	switch model.Kind(err) {
	case model.ErrConfiguration:
		return http.StatusServiceUnavailable
	case model.ErrValidation:
		return http.StatusBadRequest
	case model.ErrNotFound:
		return http.StatusNotFound
	case model.ErrNetwork:
		return http.StatusGatewayTimeout
	case model.ErrUnauthorized, model.ErrUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(err error) model.ErrorResponse {
	response := model.ErrorResponse{Error: err.Error()}

	var stageErr *model.StageError
	if errors.As(err, &stageErr) {
		response.Stage = string(stageErr.Stage)
	}
	return response
}

// writeError answers with the mapped status and an ErrorResponse body
func writeError(c echo.Context, err error) error {
	return c.JSON(errorStatus(err), errorResponse(err))
}

// bindError turns echo binding failures into validation errors
func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return model.ValidationError(fmt.Sprintf("invalid request: %v", httpErr.Message))
	}
	return model.ValidationError("invalid request: " + err.Error())
}
