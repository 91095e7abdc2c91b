package handler

import (
	"errors"
	"net/http"

	"github.com/Suraj999-github/MauiBankApp/internal/biometric/platform"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AnswerPromptInput is the raw result the simulated handset reports.
type AnswerPromptInput struct {
	ID       string `json:"id" validate:"required,uuid"`
	Success  bool   `json:"success"`
	Code     *int   `json:"code"`
	Message  string `json:"message" validate:"max=200"`
	Canceled bool   `json:"canceled"`
}

type AvailabilityInput struct {
	Available bool `json:"available"`
}

// DeviceHandler lets a device simulator drive the prompts opened through
// a DeviceBridge.
type DeviceHandler struct {
	bridge *platform.DeviceBridge
}

func NewDeviceHandler(b *platform.DeviceBridge) *DeviceHandler {
	return &DeviceHandler{
		bridge: b,
	}
}

func (h *DeviceHandler) Bind(e *echo.Group) {
	e.GET("/prompt", h.PendingPromptHandler)
	e.POST("/prompt", h.AnswerPromptHandler)
	e.PUT("/availability", h.AvailabilityHandler)
}

func (h *DeviceHandler) PendingPromptHandler(c echo.Context) error {
	prompt, ok := h.bridge.Pending()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, prompt)
}

func (h *DeviceHandler) AnswerPromptHandler(c echo.Context) error {
	var req AnswerPromptInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid prompt id"})
	}

	err = h.bridge.Answer(id, platform.Result{
		Success:  req.Success,
		Code:     req.Code,
		Message:  req.Message,
		Canceled: req.Canceled,
	})
	switch {
	case err == nil:
		return c.NoContent(http.StatusAccepted)
	case errors.Is(err, platform.ErrNoPrompt), errors.Is(err, platform.ErrPromptUnknown):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}

func (h *DeviceHandler) AvailabilityHandler(c echo.Context) error {
	var req AvailabilityInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	h.bridge.SetAvailable(req.Available)
	return c.NoContent(http.StatusNoContent)
}
