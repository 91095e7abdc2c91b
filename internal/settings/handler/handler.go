package handler

import (
	"errors"
	"net/http"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/domain"
	"github.com/Suraj999-github/MauiBankApp/internal/settings/usecase"
	"github.com/Suraj999-github/MauiBankApp/pkg/logger"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	usecase usecase.SecuritySettingsUsecase
}

func NewSettingsHandler(u usecase.SecuritySettingsUsecase) *SettingsHandler {
	return &SettingsHandler{
		usecase: u,
	}
}

func (h *SettingsHandler) Bind(e *echo.Group) {
	e.GET("/security", h.LoadHandler)
	e.POST("/security/toggle", h.ToggleHandler)
	e.POST("/security/test", h.TestAuthenticationHandler)
}

func (h *SettingsHandler) LoadHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.usecase.Load(c.Request().Context()))
}

func (h *SettingsHandler) ToggleHandler(c echo.Context) error {
	var req usecase.ToggleBiometricInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	output, err := h.usecase.ToggleBiometric(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOperationInProgress):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		case errors.Is(err, usecase.ErrNotSignedIn):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrCredentialBindingFailed), errors.Is(err, domain.ErrDisableFailed):
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error":   err.Error(),
				"enabled": output.Enabled,
			})
		default:
			logger.Error("Unexpected error in ToggleHandler:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
	}

	return c.JSON(http.StatusOK, output)
}

func (h *SettingsHandler) TestAuthenticationHandler(c echo.Context) error {
	outcome, err := h.usecase.TestAuthentication(c.Request().Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOperationInProgress):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrBiometricNotEnabled):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			logger.Error("Unexpected error in TestAuthenticationHandler:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
	}
	return c.JSON(http.StatusOK, outcome)
}
