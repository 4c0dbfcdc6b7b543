package usecase

import (
	"context"

	"github.com/ir-khan/inventory-management-system/internal/domain/repository"
)

// FeedUsecase defines the interface for live inventory and transaction feeds.
//
// Each subscription delivers full snapshots: every change to the watched
// query produces a complete, freshly ordered result set on the channel. The
// returned cancel function is idempotent and closes the channel.
type FeedUsecase interface {
	// SubscribeProducts streams the owner's product list ordered by product
	// code ascending.
	SubscribeProducts(ctx context.Context, uid string) (<-chan repository.ProductSnapshot, repository.CancelFunc, error)

	// SubscribeRecentTransactions streams the owner's most recent
	// transactions, newest first. A non-positive limit selects the default.
	SubscribeRecentTransactions(ctx context.Context, uid string, limit int) (<-chan repository.TransactionSnapshot, repository.CancelFunc, error)
}
