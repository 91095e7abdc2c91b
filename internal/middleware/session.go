package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/auth/domain"

	"github.com/bluele/gcache"
	"github.com/labstack/echo/v4"
)

const SessionCookieName = "session_token"

// SessionResolver returns the session currently held in secure storage.
type SessionResolver interface {
	CurrentSession(ctx context.Context) (*domain.Session, error)
}

type CachedSession struct {
	UserID    string
	Email     string
	Method    domain.LoginMethod
	ExpiresAt time.Time
}

var (
	resolver     SessionResolver
	secureCookie bool
	sessionCache = gcache.New(1000).LRU().Expiration(time.Minute * 15).Build()
)

func InitSessionMiddleware(r SessionResolver, secure bool) {
	resolver = r
	secureCookie = secure
}

func InvalidateSessionCache(sessionToken string) {
	sessionCache.Remove(sessionToken)
}

// ResetSessionCache drops every cached token. The device holds a single
// session, so any login or logout leaves all earlier tokens invalid.
func ResetSessionCache() {
	sessionCache.Purge()
}

// SessionMiddleware accepts the token from the session cookie or from an
// Authorization bearer header.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionToken := SessionToken(c)
			if sessionToken == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "missing session token",
				})
			}

			cachedData, err := sessionCache.Get(sessionToken)
			if err == nil {
				session := cachedData.(CachedSession)
				if time.Now().Before(session.ExpiresAt) {
					setContext(c, sessionToken, session)
					return next(c)
				}
				sessionCache.Remove(sessionToken)
			}

			if resolver == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "invalid or expired session",
				})
			}

			current, err := resolver.CurrentSession(c.Request().Context())
			if err != nil || current.Token != sessionToken {
				clearCookie := &http.Cookie{
					Name:     SessionCookieName,
					Value:    "",
					Path:     "/",
					HttpOnly: true,
					Secure:   secureCookie,
					SameSite: http.SameSiteStrictMode,
					MaxAge:   -1,
				}
				c.SetCookie(clearCookie)
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "invalid or expired session",
				})
			}

			session := CachedSession{
				UserID:    current.UserID,
				Email:     current.Email,
				Method:    current.Method,
				ExpiresAt: current.ExpiresAt,
			}
			_ = sessionCache.Set(sessionToken, session)

			setContext(c, sessionToken, session)
			return next(c)
		}
	}
}

// SessionToken reads the session cookie, falling back to a bearer header.
func SessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func setContext(c echo.Context, token string, session CachedSession) {
	c.Set("session_token", token)
	c.Set("user_id", session.UserID)
	c.Set("email", session.Email)
	c.Set("login_method", string(session.Method))
}
