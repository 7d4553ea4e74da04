package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// traceTestServer wires RequestID in front of a dashboard-style route and
// records the trace ID the handler observed.
func traceTestServer(seen *string) *echo.Echo {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/api/v1/dashboard", func(c echo.Context) error {
		*seen = GetTraceID(c)
		return c.JSON(http.StatusOK, map[string]string{"month": "2025-10"})
	})
	return e
}

func TestRequestID_MintsUUIDWhenHeaderAbsent(t *testing.T) {
	var seen string
	e := traceTestServer(&seen)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	echoed := rec.Header().Get(TraceIDHeader)
	_, err := uuid.Parse(echoed)
	assert.NoError(t, err, "generated trace ID should be a UUID")
	assert.Equal(t, echoed, seen, "handler and response header must agree on the trace ID")
}

func TestRequestID_KeepsCallerTraceID(t *testing.T) {
	var seen string
	e := traceTestServer(&seen)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?month=10&year=2025", nil)
	req.Header.Set(TraceIDHeader, "spa-session-7f3a")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "spa-session-7f3a", seen)
	assert.Equal(t, "spa-session-7f3a", rec.Header().Get(TraceIDHeader))
}

func TestGetTraceID_EmptyWithoutMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.Empty(t, GetTraceID(c))
}
