// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/ir-khan/inventory-management-system/internal/delivery/http/middleware"
	"github.com/ir-khan/inventory-management-system/internal/delivery/http/response"
	"github.com/ir-khan/inventory-management-system/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// GetProfile returns the caller's profile, cache-first.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No current user found")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), session.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved")
}

// UpdateProfile applies a partial profile edit. A deferred remote write is
// reported as accepted rather than completed.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No current user found")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}

	result, err := h.uc.UpdateProfile(c.Request().Context(), session.UID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if !result.Flushed {
		return response.Success(c, http.StatusAccepted, result, "Profile update queued for sync")
	}

	return response.Success(c, http.StatusOK, result, "Profile updated")
}

// SyncProfile forces a drain of the stashed pending update.
func (h *ProfileHandler) SyncProfile(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No current user found")
	}

	if err := h.uc.Drain(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile synced")
}
