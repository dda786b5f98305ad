package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	HeaderServiceKey = "X-Service-Key"
	HeaderPublicKey  = "apikey"
)

func keyEqual(got, want string) bool {
	return want != "" && subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// ServiceKey admits only requests carrying the privileged service key. With
// an empty key configured every request is refused.
func ServiceKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !keyEqual(c.Request().Header.Get(HeaderServiceKey), key) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid service key")
			}
			return next(c)
		}
	}
}

// PublicAPIKey requires the apikey header to carry either the public client
// key or the service key. It is a no-op when publicKey is empty.
func PublicAPIKey(publicKey, serviceKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if publicKey == "" {
			return next
		}
		return func(c echo.Context) error {
			got := c.Request().Header.Get(HeaderPublicKey)
			if !keyEqual(got, publicKey) && !keyEqual(got, serviceKey) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid api key")
			}
			return next(c)
		}
	}
}
