package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// visitorTTL is how long an idle client IP keeps its token bucket.
const visitorTTL = 3 * time.Minute

// IPRateLimit throttles requests per client IP with a token bucket refilled at
// requestsPerMinute and holding burst tokens. Requests over the limit get 429.
func IPRateLimit(requestsPerMinute, burst int) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(requestsPerMinute) / 60.0),
		Burst:     burst,
		ExpiresIn: visitorTTL,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if ip := c.RealIP(); ip != "" {
				return ip, nil
			}
			return c.Request().RemoteAddr, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
		},
	})
}
