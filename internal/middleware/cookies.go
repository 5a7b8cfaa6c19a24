package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"quiz-room/internal/config"
	"quiz-room/internal/domain"
)

const (
	AccessTokenCookie  = "quizroom_access_token"
	RefreshTokenCookie = "quizroom_refresh_token"

	refreshCookieMaxAge = 30 * 24 * time.Hour
)

// SetSessionCookies stores the session tokens in HttpOnly cookies.
func SetSessionCookies(c *fiber.Ctx, cfg config.AuthConfig, session *domain.Session) {
	access := &fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    session.AccessToken,
		Path:     "/",
		Domain:   cfg.CookieDomain,
		Secure:   cfg.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if !session.ExpiresAt.IsZero() {
		access.Expires = session.ExpiresAt
	}
	c.Cookie(access)

	if session.RefreshToken != "" {
		c.Cookie(&fiber.Cookie{
			Name:     RefreshTokenCookie,
			Value:    session.RefreshToken,
			Path:     "/api/auth",
			Domain:   cfg.CookieDomain,
			Secure:   cfg.CookieSecure,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			MaxAge:   int(refreshCookieMaxAge / time.Second),
		})
	}
}

// ClearSessionCookies expires both session cookies.
func ClearSessionCookies(c *fiber.Ctx, cfg config.AuthConfig) {
	for name, path := range map[string]string{AccessTokenCookie: "/", RefreshTokenCookie: "/api/auth"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     path,
			Domain:   cfg.CookieDomain,
			Secure:   cfg.CookieSecure,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
		})
	}
}
