package repository

import (
	"context"
	"time"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
)

// TransactionSnapshot is one full, re-ordered view of an owner's recent
// transactions as delivered by a live subscription.
type TransactionSnapshot struct {
	Transactions []*entity.Transaction
	Err          error
}

// TransactionRepository defines the standard operations for the append-only
// transaction ledger. There is deliberately no update or delete.
type TransactionRepository interface {
	// AllocateID reserves a fresh document id without writing anything.
	AllocateID(ctx context.Context) (string, error)

	// Create appends a ledger entry under a previously allocated id.
	Create(ctx context.Context, txn *entity.Transaction) error

	// FindRecentByOwner lists the owner's transactions, newest first,
	// bounded to limit.
	FindRecentByOwner(ctx context.Context, ownerUID string, limit int) ([]*entity.Transaction, error)

	// FindSalesInRange lists the owner's Sell transactions within the
	// inclusive time window, newest first.
	FindSalesInRange(ctx context.Context, ownerUID string, from, to time.Time) ([]*entity.Transaction, error)

	// SubscribeRecentByOwner opens a live query over the owner's most recent
	// transactions ordered by timestamp descending, bounded to limit.
	SubscribeRecentByOwner(ctx context.Context, ownerUID string, limit int) (<-chan TransactionSnapshot, CancelFunc, error)
}
