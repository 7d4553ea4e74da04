package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID between the browser, this service,
	// and the finance backend.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where the trace ID lives on the echo context.
	TraceIDContextKey = "trace_id"
)

// RequestID assigns a trace ID to every request. An X-Trace-ID supplied by
// the caller is kept, so a browser session stays correlated across this proxy
// and the upstream finance API; otherwise a fresh UUID is minted. The ID is
// stored on the context for handlers and echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID set by RequestID, or "" when the
// middleware did not run.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
