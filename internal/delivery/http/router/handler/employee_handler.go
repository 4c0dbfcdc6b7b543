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

// EmployeeHandler holds dependencies for employee directory handlers.
type EmployeeHandler struct {
	uc     usecase.EmployeeUsecase
	logger *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(uc usecase.EmployeeUsecase, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, logger: logger}
}

// Add registers an employee under the caller.
func (h *EmployeeHandler) Add(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No current user found")
	}

	var input *usecase.AddEmployeeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}

	employee, err := h.uc.Add(c.Request().Context(), session.UID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, employee, "Employee added")
}

// List returns the caller's employees.
func (h *EmployeeHandler) List(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No current user found")
	}

	employees, err := h.uc.List(c.Request().Context(), session.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employees, "Employees retrieved")
}

// Remove deletes one of the caller's employees.
func (h *EmployeeHandler) Remove(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No current user found")
	}

	eid := c.Param("id")
	if eid == "" {
		return response.BindingError(c, "INVALID_INPUT", "Missing employee id")
	}

	if err := h.uc.Remove(c.Request().Context(), session.UID, eid); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Employee removed")
}
