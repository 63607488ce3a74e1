package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"weather-story/internal/domain/model"
)

type fakeHealthUseCase struct {
	status model.HealthStatus
}

func (f fakeHealthUseCase) CheckHealth(context.Context) model.HealthResponse {
	return model.HealthResponse{Status: f.status}
}

func TestCheckHealthStatus(t *testing.T) {
	for status, code := range map[model.HealthStatus]int{model.StatusUp: http.StatusOK, model.StatusDown: http.StatusServiceUnavailable} {
		e := echo.New()
		NewHealthController(e.Group(""), fakeHealthUseCase{status: status}).InitHealthRoutes()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != code {
			t.Fatalf("%s: expected %d, got %d", status, code, rec.Code)
		}
	}
}
