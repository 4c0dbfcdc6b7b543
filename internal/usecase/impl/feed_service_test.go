package impl

import (
	"context"
	"testing"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"
	mockRepo "github.com/ir-khan/inventory-management-system/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_SubscribeProducts_Passthrough(t *testing.T) {
	products := mockRepo.NewMockProductRepository(t)
	transactions := mockRepo.NewMockTransactionRepository(t)
	service := NewFeedService(products, transactions, 0, newDiscardLogger())

	ctx := context.Background()
	ch := make(chan repository.ProductSnapshot, 1)
	canceled := false
	var cancel repository.CancelFunc = func() { canceled = true }

	products.EXPECT().SubscribeByOwner(ctx, "u1").
		Return((<-chan repository.ProductSnapshot)(ch), cancel, nil)

	got, gotCancel, err := service.SubscribeProducts(ctx, "u1")
	require.NoError(t, err)

	ch <- repository.ProductSnapshot{Products: []*entity.Product{{PID: "p1"}}}
	snap := <-got
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "p1", snap.Products[0].PID)

	gotCancel()
	assert.True(t, canceled)
}

func TestFeedService_SubscribeRecentTransactions_DefaultLimit(t *testing.T) {
	products := mockRepo.NewMockProductRepository(t)
	transactions := mockRepo.NewMockTransactionRepository(t)
	service := NewFeedService(products, transactions, 0, newDiscardLogger())

	ctx := context.Background()
	ch := make(chan repository.TransactionSnapshot)

	// A non-positive limit falls back to the configured default.
	transactions.EXPECT().SubscribeRecentByOwner(ctx, "u1", 100).
		Return((<-chan repository.TransactionSnapshot)(ch), func() {}, nil)

	_, _, err := service.SubscribeRecentTransactions(ctx, "u1", 0)
	require.NoError(t, err)
}

func TestFeedService_SubscribeRecentTransactions_ExplicitLimit(t *testing.T) {
	products := mockRepo.NewMockProductRepository(t)
	transactions := mockRepo.NewMockTransactionRepository(t)
	service := NewFeedService(products, transactions, 25, newDiscardLogger())

	ctx := context.Background()
	ch := make(chan repository.TransactionSnapshot)

	transactions.EXPECT().SubscribeRecentByOwner(ctx, "u1", 10).
		Return((<-chan repository.TransactionSnapshot)(ch), func() {}, nil)

	_, _, err := service.SubscribeRecentTransactions(ctx, "u1", 10)
	require.NoError(t, err)
}
