package domain

import (
	"context"
	"time"
)

// User is an identity owned by the external auth service.
type User struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// Session is the authenticated context handed down to every service call.
type Session struct {
	User         User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// UserID returns the id of the session's user.
func (s *Session) UserID() string {
	return s.User.ID
}

// AuthErrorCategory groups provider failures into messages the forms can show.
type AuthErrorCategory string

const (
	AuthInvalidCredentials AuthErrorCategory = "invalid_credentials"
	AuthEmailNotConfirmed  AuthErrorCategory = "email_not_confirmed"
	AuthRateLimited        AuthErrorCategory = "rate_limited"
	AuthUnknown            AuthErrorCategory = "unknown"
)

// AuthError is returned as a value, never thrown past the form boundary.
type AuthError struct {
	Category AuthErrorCategory `json:"category"`
	Message  string            `json:"message"`
}

func (e *AuthError) Error() string {
	return string(e.Category) + ": " + e.Message
}

// AuthResult is the outcome of a sign-in or sign-up.
// Session is nil when sign-up requires email confirmation.
type AuthResult struct {
	Session *Session
	User    *User
	Error   *AuthError
}

// ProviderError carries the raw message of the auth provider.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// AuthProvider is the external auth subsystem.
type AuthProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) (*User, *Session, error)
	SignOut(ctx context.Context, accessToken string) error
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	// GetUser asks the provider who owns accessToken.
	GetUser(ctx context.Context, accessToken string) (*User, error)
}
