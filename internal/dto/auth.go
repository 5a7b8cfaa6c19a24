package dto

import (
	"time"

	"quiz-room/internal/domain"
)

// SignInRequest is the sign-in form.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignUpRequest is the sign-up form; confirm_password must repeat password.
type SignUpRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// RefreshRequest may be empty when the refresh token cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u domain.User) *UserResponse {
	return &UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

// AuthResponse is returned by sign-in, sign-up and refresh.
type AuthResponse struct {
	User         *UserResponse `json:"user,omitempty"`
	AccessToken  string        `json:"access_token,omitempty"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time    `json:"expires_at,omitempty"`
	// ConfirmationRequired is set when sign-up succeeded but no session exists until the email is confirmed.
	ConfirmationRequired bool `json:"confirmation_required,omitempty"`
}

func NewAuthResponse(result *domain.AuthResult) AuthResponse {
	var resp AuthResponse
	if result.User != nil {
		resp.User = NewUserResponse(*result.User)
	}
	if s := result.Session; s != nil {
		resp.User = NewUserResponse(s.User)
		resp.AccessToken = s.AccessToken
		resp.RefreshToken = s.RefreshToken
		if !s.ExpiresAt.IsZero() {
			exp := s.ExpiresAt
			resp.ExpiresAt = &exp
		}
	} else {
		resp.ConfirmationRequired = true
	}
	return resp
}

// AuthErrorResponse carries a categorized provider error for inline display.
type AuthErrorResponse struct {
	Error  domain.AuthError `json:"error"`
	Status int              `json:"status"`
}

// SessionStateResponse answers the loading gate; User is nil when signed out.
type SessionStateResponse struct {
	Loading bool          `json:"loading"`
	User    *UserResponse `json:"user"`
}
