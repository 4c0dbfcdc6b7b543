package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ir-khan/inventory-management-system/internal/delivery/http/middleware"
	"github.com/ir-khan/inventory-management-system/internal/delivery/http/response"
	"github.com/ir-khan/inventory-management-system/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedHandler exposes the live snapshot feeds over server-sent events. Each
// event carries the full re-ordered result set, mirroring the subscription
// contract underneath.
type FeedHandler struct {
	uc     usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(uc usecase.FeedUsecase, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{uc: uc, logger: logger}
}

// StreamProducts streams the caller's product list, ordered by code.
func (h *FeedHandler) StreamProducts(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No current user found")
	}

	ctx := c.Request().Context()
	snapshots, cancel, err := h.uc.SubscribeProducts(ctx, session.UID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer cancel()

	res := beginEventStream(c)

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-snapshots:
			if !ok {
				return nil
			}
			if snap.Err != nil {
				h.logger.Warn("Product feed failed", slog.Any("error", snap.Err))
				writeEvent(res, "error", map[string]string{"message": "feed terminated"})

				return nil
			}
			if err := writeEvent(res, "snapshot", snap.Products); err != nil {
				return nil
			}
		}
	}
}

// StreamTransactions streams the caller's recent transactions, newest first.
func (h *FeedHandler) StreamTransactions(c echo.Context) error {
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

	ctx := c.Request().Context()
	snapshots, cancel, err := h.uc.SubscribeRecentTransactions(ctx, session.UID, limit)
	if err != nil {
		return errors.WithStack(err)
	}
	defer cancel()

	res := beginEventStream(c)

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-snapshots:
			if !ok {
				return nil
			}
			if snap.Err != nil {
				h.logger.Warn("Transaction feed failed", slog.Any("error", snap.Err))
				writeEvent(res, "error", map[string]string{"message": "feed terminated"})

				return nil
			}
			if err := writeEvent(res, "snapshot", snap.Transactions); err != nil {
				return nil
			}
		}
	}
}

func beginEventStream(c echo.Context) *echo.Response {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	return res
}

func writeEvent(res *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := res.Write([]byte("event: " + event + "\ndata: " + string(data) + "\n\n")); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}
