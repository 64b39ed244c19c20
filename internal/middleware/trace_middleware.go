package middleware

import (
	"plateRank/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const TraceHeader = "X-Trace-Id"

// TraceMiddleware attaches a trace id to every request. Incoming ids are
// propagated, otherwise a fresh uuid is generated. The id rides the request
// context so service-level logs can correlate with the response header.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := recommend.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(TraceHeader, traceID)

			return next(c)
		}
	}
}
