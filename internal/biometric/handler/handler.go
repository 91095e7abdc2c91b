package handler

import (
	"net/http"
	"strings"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/usecase"
	"github.com/Suraj999-github/MauiBankApp/internal/middleware"

	"github.com/labstack/echo/v4"
)

type BiometricHandler struct {
	usecase usecase.BiometricUsecase
}

func NewBiometricHandler(u usecase.BiometricUsecase) *BiometricHandler {
	return &BiometricHandler{
		usecase: u,
	}
}

// Bind leaves status and authenticate open; everything that reads or
// changes the binding needs a signed-in session.
func (h *BiometricHandler) Bind(e *echo.Group) {
	e.GET("/status", h.StatusHandler)
	e.POST("/authenticate", h.AuthenticateHandler)

	e.POST("/enable", h.EnableHandler, middleware.SessionMiddleware())
	e.POST("/disable", h.DisableHandler, middleware.SessionMiddleware())
	e.GET("/credentials", h.GetCredentialsHandler, middleware.SessionMiddleware())
	e.PUT("/credentials", h.StoreCredentialsHandler, middleware.SessionMiddleware())
}

func (h *BiometricHandler) StatusHandler(c echo.Context) error {
	ctx := c.Request().Context()

	out := usecase.StatusOutput{
		Available: h.usecase.IsAvailable(ctx),
		KindLabel: h.usecase.BiometricKindLabel(ctx),
	}
	out.State = h.usecase.State()
	out.Enabled = h.usecase.IsEnabled(ctx)

	binding := h.usecase.Binding(ctx)
	out.Kind = binding.Kind
	out.EnrolledAt = binding.EnabledAt
	out.LastAuthAt = binding.LastAuthAt

	return c.JSON(http.StatusOK, out)
}

// Outcomes, failed ones included, are answered with 200: the body carries
// the status and the message to show.
func (h *BiometricHandler) EnableHandler(c echo.Context) error {
	var req usecase.ChallengeInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	outcome := h.usecase.Enable(c.Request().Context(), req.Reason)
	return c.JSON(http.StatusOK, outcome)
}

func (h *BiometricHandler) DisableHandler(c echo.Context) error {
	if !h.usecase.Disable(c.Request().Context()) {
		return c.JSON(http.StatusServiceUnavailable, usecase.ResultOutput{
			Ok:      false,
			Message: "Failed to disable biometric authentication",
		})
	}
	return c.JSON(http.StatusOK, usecase.ResultOutput{
		Ok:      true,
		Message: "Biometric authentication disabled",
	})
}

func (h *BiometricHandler) AuthenticateHandler(c echo.Context) error {
	var req usecase.ChallengeInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	outcome := h.usecase.Authenticate(c.Request().Context(), req.Reason)
	return c.JSON(http.StatusOK, outcome)
}

func (h *BiometricHandler) GetCredentialsHandler(c echo.Context) error {
	userID, email := h.usecase.GetStoredCredentials(c.Request().Context())
	return c.JSON(http.StatusOK, usecase.CredentialsOutput{UserID: userID, Email: email})
}

func (h *BiometricHandler) StoreCredentialsHandler(c echo.Context) error {
	var req usecase.StoreCredentialsInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)
	if strings.TrimSpace(req.UserID) != userID || !strings.EqualFold(strings.TrimSpace(req.Email), email) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Credentials must belong to the signed-in user"})
	}

	if !h.usecase.StoreCredentials(c.Request().Context(), req.UserID, req.Email) {
		return c.JSON(http.StatusServiceUnavailable, usecase.ResultOutput{
			Ok:      false,
			Message: "Failed to store biometric credentials",
		})
	}
	return c.JSON(http.StatusOK, usecase.ResultOutput{
		Ok:      true,
		Message: "Credentials stored for biometric login",
	})
}

// bindAndValidate returns an *echo.HTTPError carrying a 400 body, which the
// router renders as {"error": ...}.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return nil
}
