package repository

import (
	"context"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
)

// ProductSnapshot is one full, re-ordered view of an owner's products as
// delivered by a live subscription. Consumers must replace prior state with
// every snapshot, never patch it. Err is set instead of Products when the
// underlying feed fails.
type ProductSnapshot struct {
	Products []*entity.Product
	Err      error
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// AllocateID reserves a fresh document id without writing anything.
	// The id may never be used; allocation is decoupled from existence.
	AllocateID(ctx context.Context) (string, error)

	// FindByID retrieves a single product document.
	FindByID(ctx context.Context, pid string) (*entity.Product, error)

	// FindByCode resolves a product by its business code within one owner's
	// inventory. Returns ErrNotFound when no such product exists.
	FindByCode(ctx context.Context, code int64, ownerUID string) (*entity.Product, error)

	// Create writes a new product document under a previously allocated id.
	Create(ctx context.Context, product *entity.Product) error

	// Update applies a partial update to an existing product document.
	Update(ctx context.Context, pid string, delta *entity.ProductDelta) error

	// SubscribeByOwner opens a live query over the owner's products ordered
	// by business code ascending. Every change to the result set delivers a
	// full snapshot on the returned channel until the CancelFunc runs.
	SubscribeByOwner(ctx context.Context, ownerUID string) (<-chan ProductSnapshot, CancelFunc, error)
}
