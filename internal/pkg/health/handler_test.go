package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func performReady(t *testing.T, service *HealthService) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/ready", NewReadyHandler("frota", service))

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestReadyHandler_AllDependenciesHealthy(t *testing.T) {
	// Arrange
	service := NewHealthService()
	service.AddChecker("postgres", &stubChecker{})
	service.AddChecker("redis", &stubChecker{})
	service.AddChecker("nats", &stubChecker{})

	// Act
	rec := performReady(t, service)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "frota", response.Service)
	require.Len(t, response.Dependencies, 3)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
}

func TestReadyHandler_UnhealthyDependencyReturns503(t *testing.T) {
	// Arrange
	service := NewHealthService()
	service.AddChecker("postgres", &stubChecker{})
	service.AddChecker("redis", &stubChecker{err: errors.New("connection refused")})

	// Act
	rec := performReady(t, service)

	// Assert
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
	assert.Equal(t, "unhealthy", response.Dependencies["redis"].Status)
	assert.Equal(t, "connection refused", response.Dependencies["redis"].Error)
}

func TestCheckAllHealth_NilClientsAreSkipped(t *testing.T) {
	// Arrange
	service := NewHealthService()
	service.AddChecker("postgres", NewPostgresHealthChecker(nil))
	service.AddChecker("redis", NewRedisHealthChecker(nil))
	service.AddChecker("nats", NewNATSHealthChecker(nil))

	// Act
	response := service.CheckAllHealth(context.Background())

	// Assert
	assert.Equal(t, "healthy", response.Status)
}
