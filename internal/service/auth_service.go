package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"quiz-room/internal/domain"
	"quiz-room/internal/logger"
	"quiz-room/internal/metrics"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrMissingSubject  = errors.New("token has no subject")
)

// SignOutHook releases per-user state when a user signs out.
type SignOutHook func(ctx context.Context, userID string)

// AuthService defines the interface for authentication operations.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) *domain.AuthResult
	SignUp(ctx context.Context, email, password string) *domain.AuthResult
	Refresh(ctx context.Context, refreshToken string) *domain.AuthResult
	SignOut(ctx context.Context, session *domain.Session) error
	// ResolveSession verifies an access token and returns the session it represents.
	ResolveSession(ctx context.Context, accessToken string) (*domain.Session, error)
}

// AccessClaims are the claims the auth service puts in access tokens.
type AccessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type authServiceImpl struct {
	provider  domain.AuthProvider
	jwtSecret []byte
	hooks     []SignOutHook
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(provider domain.AuthProvider, jwtSecret string, hooks ...SignOutHook) (AuthService, error) {
	if jwtSecret == "" {
		return nil, errors.New("jwt secret for auth service is not configured")
	}
	return &authServiceImpl{
		provider:  provider,
		jwtSecret: []byte(jwtSecret),
		hooks:     hooks,
	}, nil
}

// CategorizeAuthError maps a provider message to a category the forms know how to show.
func CategorizeAuthError(message string) *domain.AuthError {
	lower := strings.ToLower(message)
	category := domain.AuthUnknown
	switch {
	case strings.Contains(lower, "invalid login credentials"):
		category = domain.AuthInvalidCredentials
	case strings.Contains(lower, "email not confirmed"):
		category = domain.AuthEmailNotConfirmed
	case strings.Contains(lower, "rate limit"),
		strings.Contains(lower, "too many requests"),
		strings.Contains(lower, "for security purposes"):
		category = domain.AuthRateLimited
	}
	return &domain.AuthError{Category: category, Message: message}
}

func failedResult(action string, err error) *domain.AuthResult {
	message := err.Error()
	var providerErr *domain.ProviderError
	if errors.As(err, &providerErr) {
		message = providerErr.Message
	}
	authErr := CategorizeAuthError(message)
	metrics.AuthAttempts.WithLabelValues(action, string(authErr.Category)).Inc()
	logger.Get().Info("Auth request rejected",
		zap.String("action", action),
		zap.String("category", string(authErr.Category)),
		zap.Error(err))
	return &domain.AuthResult{Error: authErr}
}

func (s *authServiceImpl) SignIn(ctx context.Context, email, password string) *domain.AuthResult {
	session, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return failedResult("sign_in", err)
	}
	metrics.AuthAttempts.WithLabelValues("sign_in", "success").Inc()
	return &domain.AuthResult{Session: session, User: &session.User}
}

// SignUp returns a result without a session when the provider requires email confirmation.
func (s *authServiceImpl) SignUp(ctx context.Context, email, password string) *domain.AuthResult {
	user, session, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return failedResult("sign_up", err)
	}
	metrics.AuthAttempts.WithLabelValues("sign_up", "success").Inc()
	return &domain.AuthResult{Session: session, User: user}
}

func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) *domain.AuthResult {
	if refreshToken == "" {
		return &domain.AuthResult{Error: &domain.AuthError{Category: domain.AuthUnknown, Message: "refresh token is missing"}}
	}
	session, err := s.provider.Refresh(ctx, refreshToken)
	if err != nil {
		return failedResult("refresh", err)
	}
	metrics.AuthAttempts.WithLabelValues("refresh", "success").Inc()
	return &domain.AuthResult{Session: session, User: &session.User}
}

// SignOut revokes the session at the provider and always runs the teardown hooks,
// so local state is released even when the provider call fails.
func (s *authServiceImpl) SignOut(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return domain.NewUnauthorizedError("no active session")
	}

	err := s.provider.SignOut(ctx, session.AccessToken)
	for _, hook := range s.hooks {
		hook(ctx, session.UserID())
	}
	if err != nil {
		logger.Get().Warn("Provider sign-out failed", zap.String("userID", session.UserID()), zap.Error(err))
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

// ResolveSession verifies HS256 tokens locally with the project secret. Tokens
// signed with an asymmetric key are checked by asking the provider for their user.
func (s *authServiceImpl) ResolveSession(ctx context.Context, accessToken string) (*domain.Session, error) {
	claims := &AccessClaims{}
	if unverified, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err == nil && signedWithKeyPair(unverified.Method) {
		return s.resolveWithProvider(ctx, accessToken, claims)
	}

	claims = &AccessClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("Access token expired", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, ErrMissingSubject)
	}

	session := &domain.Session{
		User:        domain.User{ID: claims.Subject, Email: claims.Email},
		AccessToken: accessToken,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

func signedWithKeyPair(method jwt.SigningMethod) bool {
	switch method.(type) {
	case *jwt.SigningMethodRSA, *jwt.SigningMethodRSAPSS, *jwt.SigningMethodECDSA, *jwt.SigningMethodEd25519:
		return true
	}
	return false
}

// resolveWithProvider trusts claims only after the provider accepted the token.
func (s *authServiceImpl) resolveWithProvider(ctx context.Context, accessToken string, claims *AccessClaims) (*domain.Session, error) {
	user, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		logger.Get().Debug("Provider rejected access token", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}
	session := &domain.Session{User: *user, AccessToken: accessToken}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
