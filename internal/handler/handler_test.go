package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"quiz-room/internal/domain"
	"quiz-room/internal/middleware"
)

var testUser = &domain.Session{
	User:        domain.User{ID: "user-1", Email: "ada@example.com"},
	AccessToken: "access-token",
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

// withSession stands in for middleware.Protected.
func withSession(session *domain.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if session != nil {
			c.Locals(middleware.SessionKey, session)
		}
		return c.Next()
	}
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func newRequestWithCookie(method, target, cookie string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Cookie", cookie)
	return req
}
