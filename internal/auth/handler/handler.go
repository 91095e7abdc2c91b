package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Suraj999-github/MauiBankApp/internal/auth/domain"
	"github.com/Suraj999-github/MauiBankApp/internal/auth/usecase"
	"github.com/Suraj999-github/MauiBankApp/internal/middleware"
	"github.com/Suraj999-github/MauiBankApp/pkg/logger"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	usecase usecase.AuthUsecase
	secure  bool
}

func NewAuthHandler(u usecase.AuthUsecase, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		usecase: u,
		secure:  secureCookies,
	}
}

func (h *AuthHandler) Bind(e *echo.Group) {
	e.POST("/login", h.LoginUserHandler)
	e.POST("/biometric", h.BiometricLoginHandler)
	e.POST("/logout", h.LogoutUserHandler)
}

func (h *AuthHandler) LoginUserHandler(c echo.Context) error {
	var req usecase.LoginUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx := c.Request().Context()
	output, err := h.usecase.LoginUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUserEmail),
			errors.Is(err, domain.ErrInvalidUserEmailFormat),
			errors.Is(err, domain.ErrInvalidUserPassword),
			errors.Is(err, domain.ErrPasswordTooShort):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
		case errors.Is(err, domain.ErrTooManyLoginAttempts):
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many login attempts, please try again later"})
		default:
			logger.Error("Unexpected error in LoginUserHandler:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
	}

	middleware.ResetSessionCache()
	h.setSessionCookie(c, output.Session.Token)
	return c.JSON(http.StatusOK, output)
}

// BiometricLoginHandler answers a failed challenge with 401 and the outcome
// message exactly as the coordinator produced it.
func (h *AuthHandler) BiometricLoginHandler(c echo.Context) error {
	var req usecase.BiometricLoginInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	output, err := h.usecase.LoginWithBiometric(ctx, req)
	if err != nil {
		var bioErr *usecase.BiometricLoginError
		switch {
		case errors.As(err, &bioErr):
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error":   bioErr.Error(),
				"outcome": bioErr.Outcome,
			})
		case errors.Is(err, domain.ErrBiometricNotBound), errors.Is(err, domain.ErrBiometricMismatch):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		default:
			logger.Error("Unexpected error in BiometricLoginHandler:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
	}

	middleware.ResetSessionCache()
	h.setSessionCookie(c, output.Session.Token)
	return c.JSON(http.StatusOK, output)
}

func (h *AuthHandler) LogoutUserHandler(c echo.Context) error {
	if token := middleware.SessionToken(c); token != "" {
		middleware.InvalidateSessionCache(token)
	}

	ctx := c.Request().Context()
	result, err := h.usecase.LogoutUser(ctx)
	middleware.ResetSessionCache()
	if err != nil {
		logger.Error("Error during logout:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	clearCookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	}
	c.SetCookie(clearCookie)

	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	if token == "" {
		return
	}
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(domain.SessionDurationMinutes * time.Minute),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	}
	c.SetCookie(cookie)
}
