package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestIPRateLimit(t *testing.T) {
	e := echo.New()
	h := IPRateLimit(1, 2)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/generate-meal", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := h(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := call("10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
	if code := call("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
	if code := call("10.0.0.2"); code != http.StatusOK {
		t.Fatalf("other IPs are limited independently, got %d", code)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/generate-meal", nil), rec)
	c.Request().Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	err := h(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Message != "too many requests" {
		t.Fatalf("expected the 429 envelope message, got %v", err)
	}
}
