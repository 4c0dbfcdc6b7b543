package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ir-khan/inventory-management-system/internal/delivery/http/middleware"
	"github.com/ir-khan/inventory-management-system/internal/delivery/http/response"
	"github.com/ir-khan/inventory-management-system/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InventoryHandler holds dependencies for buy/sell and reporting handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: logger}
}

// Buy records a purchase.
func (h *InventoryHandler) Buy(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No current user found")
	}

	var input *usecase.BuyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid buy input")
	}

	out, err := h.uc.Buy(c.Request().Context(), session.UID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return tradeResponse(c, http.StatusCreated, out, "Purchase recorded")
}

// Sell records a sale.
func (h *InventoryHandler) Sell(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No current user found")
	}

	var input *usecase.SellInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sell input")
	}

	out, err := h.uc.Sell(c.Request().Context(), session.UID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return tradeResponse(c, http.StatusCreated, out, "Sale recorded")
}

// History lists the caller's recent transactions, newest first.
func (h *InventoryHandler) History(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No current user found")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "limit must be an integer")
		}
		limit = parsed
	}

	txns, err := h.uc.History(c.Request().Context(), session.UID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, txns, "Transactions retrieved")
}

// TotalSales sums Sell transactions over a date range. Both bounds are
// RFC 3339 timestamps; "to" defaults to now and "from" to 30 days before.
func (h *InventoryHandler) TotalSales(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No current user found")
	}

	to := time.Now().UTC()
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "to must be RFC 3339")
		}
		to = parsed
	}

	from := to.AddDate(0, 0, -30)
	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "from must be RFC 3339")
		}
		from = parsed
	}

	summary, err := h.uc.TotalSales(c.Request().Context(), session.UID, from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Sales summary retrieved")
}

func tradeResponse(c echo.Context, statusCode int, out *usecase.TradeOutput, message string) error {
	if out.Partial != nil {
		return response.PartialSuccess(c, statusCode, out, message, &response.ErrorInfo{
			Code:    out.Partial.ErrorCode(),
			Details: out.Partial.Details(),
		})
	}

	return response.Success(c, statusCode, out, message)
}
