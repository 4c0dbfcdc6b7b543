package impl

import (
	"context"
	"log/slog"

	"github.com/ir-khan/inventory-management-system/internal/domain/constants"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"
	"github.com/ir-khan/inventory-management-system/internal/usecase"
)

// feedService implements the FeedUsecase interface.
type feedService struct {
	products     repository.ProductRepository
	transactions repository.TransactionRepository
	defaultLimit int
	logger       *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
	defaultLimit int,
	logger *slog.Logger,
) usecase.FeedUsecase {
	if defaultLimit <= 0 {
		defaultLimit = constants.DefaultRecentTransactionLimit
	}

	return &feedService{
		products:     products,
		transactions: transactions,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// SubscribeProducts streams the owner's product list ordered by code.
func (srv *feedService) SubscribeProducts(ctx context.Context, uid string) (<-chan repository.ProductSnapshot, repository.CancelFunc, error) {
	srv.logger.Debug("Opening product feed", slog.String("uid", uid))

	return srv.products.SubscribeByOwner(ctx, uid)
}

// SubscribeRecentTransactions streams the owner's most recent transactions.
func (srv *feedService) SubscribeRecentTransactions(ctx context.Context, uid string, limit int) (<-chan repository.TransactionSnapshot, repository.CancelFunc, error) {
	if limit <= 0 {
		limit = srv.defaultLimit
	}
	srv.logger.Debug("Opening transaction feed",
		slog.String("uid", uid),
		slog.Int("limit", limit),
	)

	return srv.transactions.SubscribeRecentByOwner(ctx, uid, limit)
}
