package gotrue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	auth "github.com/supabase-community/auth-go"
	"github.com/supabase-community/auth-go/types"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"quiz-room/internal/config"
	"quiz-room/internal/domain"
	"quiz-room/internal/logger"
)

const authPath = "/auth/v1"

// Client adapts the auth-go client to domain.AuthProvider.
type Client struct {
	api       auth.Client
	timeout   time.Duration
	transport http.RoundTripper
	// Concurrent refreshes of the same token share one upstream call;
	// GoTrue rotates refresh tokens and rejects the second use.
	refreshGroup singleflight.Group
}

// NewClient creates an auth client for the configured backend project.
func NewClient(cfg config.AuthConfig) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	api := auth.New("", cfg.AnonKey).
		WithCustomAuthURL(strings.TrimRight(cfg.URL, "/") + authPath)
	return &Client{
		api:       api,
		timeout:   timeout,
		transport: http.DefaultTransport,
	}
}

// ctxTransport binds outgoing requests to ctx, since auth-go builds them without one.
type ctxTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t ctxTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

// with returns a per-call client bound to ctx and, when set, the user's access token.
func (c *Client) with(ctx context.Context, accessToken string) auth.Client {
	api := c.api.WithClient(http.Client{
		Timeout:   c.timeout,
		Transport: ctxTransport{ctx: ctx, base: c.transport},
	})
	if accessToken != "" {
		api = api.WithToken(accessToken)
	}
	return api
}

func toUser(u types.User) *domain.User {
	return &domain.User{ID: u.ID.String(), Email: u.Email, CreatedAt: u.CreatedAt}
}

func toSession(s types.Session) *domain.Session {
	out := &domain.Session{
		User:         *toUser(s.User),
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}
	switch {
	case s.ExpiresAt > 0:
		out.ExpiresAt = time.Unix(s.ExpiresAt, 0)
	case s.ExpiresIn > 0:
		out.ExpiresAt = time.Now().Add(time.Duration(s.ExpiresIn) * time.Second)
	}
	return out
}

// statusError matches the errors auth-go returns for non-2xx responses.
var statusError = regexp.MustCompile(`(?s)^response status code (\d+)(?:: (.*))?$`)

// errorBody covers the error shapes GoTrue has used across versions.
type errorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func (e errorBody) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// providerError turns a rejected response into a domain.ProviderError carrying
// the provider's own message. Other failures are wrapped as they are.
func providerError(op string, err error) error {
	m := statusError.FindStringSubmatch(err.Error())
	if m == nil {
		return fmt.Errorf("auth %s failed: %w", op, err)
	}
	status, _ := strconv.Atoi(m[1])
	var body errorBody
	_ = json.Unmarshal([]byte(m[2]), &body)
	msg := body.text()
	if msg == "" {
		msg = http.StatusText(status)
	}
	logger.Get().Debug("Auth provider rejected request",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("message", msg))
	return &domain.ProviderError{Status: status, Message: msg}
}

// SignInWithPassword exchanges email and password for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	resp, err := c.with(ctx, "").SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, providerError("sign_in", err)
	}
	return toSession(resp.Session), nil
}

// SignUp registers a user. The returned session is nil when email confirmation is pending.
func (c *Client) SignUp(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	resp, err := c.with(ctx, "").Signup(types.SignupRequest{Email: email, Password: password})
	if err != nil {
		return nil, nil, providerError("sign_up", err)
	}
	if resp.Session.AccessToken != "" {
		session := toSession(resp.Session)
		return &session.User, session, nil
	}
	return toUser(resp.User), nil, nil
}

// SignOut revokes the refresh tokens of the session behind accessToken.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	if err := c.with(ctx, accessToken).Logout(); err != nil {
		return providerError("sign_out", err)
	}
	return nil
}

// Refresh exchanges a refresh token for a new session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	v, err, shared := c.refreshGroup.Do(refreshToken, func() (interface{}, error) {
		resp, err := c.with(ctx, "").RefreshToken(refreshToken)
		if err != nil {
			return nil, providerError("refresh", err)
		}
		return toSession(resp.Session), nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("Shared in-flight token refresh")
	}
	return v.(*domain.Session), nil
}

// GetUser returns the user behind an access token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*domain.User, error) {
	resp, err := c.with(ctx, accessToken).GetUser()
	if err != nil {
		return nil, providerError("get_user", err)
	}
	return toUser(resp.User), nil
}
