package impl

import (
	"context"
	"testing"
	"time"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	domainerrors "github.com/ir-khan/inventory-management-system/internal/domain/errors"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"
	mockRepo "github.com/ir-khan/inventory-management-system/internal/mocks/repository"
	mockSvc "github.com/ir-khan/inventory-management-system/internal/mocks/service"
	mockUC "github.com/ir-khan/inventory-management-system/internal/mocks/usecase"
	"github.com/ir-khan/inventory-management-system/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestInventoryService(t *testing.T) (
	usecase.InventoryUsecase,
	*mockRepo.MockProductRepository,
	*mockRepo.MockTransactionRepository,
	*mockUC.MockProfileUsecase,
	*mockSvc.MockEventPublisher,
) {
	products := mockRepo.NewMockProductRepository(t)
	transactions := mockRepo.NewMockTransactionRepository(t)
	profiles := mockUC.NewMockProfileUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	// Event publishing is fire-and-forget on a background goroutine, so the
	// expectation is optional rather than asserted.
	publisher.EXPECT().PublishTransactionEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	service := NewInventoryService(products, transactions, profiles, publisher, newDiscardLogger())

	return service, products, transactions, profiles, publisher
}

func buyInput(code, qty int64) *usecase.BuyInput {
	return &usecase.BuyInput{
		PName:    "Rice 5kg",
		PCode:    code,
		Quantity: qty,
		Price:    12.5,
		PExpire:  time.Now().AddDate(1, 0, 0),
	}
}

func TestInventoryService_Buy_NewProduct(t *testing.T) {
	service, products, transactions, profiles, _ := createTestInventoryService(t)
	ctx := context.Background()

	products.EXPECT().FindByCode(ctx, int64(1001), "u1").Return(nil, repository.ErrNotFound).Once()
	products.EXPECT().AllocateID(ctx).Return("p1", nil).Once()

	var created *entity.Product
	products.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, product *entity.Product) { created = product }).
		Return(nil).Once()

	transactions.EXPECT().AllocateID(ctx).Return("t1", nil).Once()

	var ledger *entity.Transaction
	transactions.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, txn *entity.Transaction) { ledger = txn }).
		Return(nil).Once()

	profiles.EXPECT().
		AppendProfileRefs(ctx, "u1", entity.ProfileRefs{Products: []string{"p1"}, Transactions: []string{"t1"}}).
		Return(nil).Once()

	out, err := service.Buy(ctx, "u1", buyInput(1001, 10))

	require.NoError(t, err)
	assert.Equal(t, "p1", out.ProductID)
	assert.Equal(t, "t1", out.TransactionID)
	assert.True(t, out.ProductCreated)
	assert.Nil(t, out.Partial)

	require.NotNil(t, created)
	assert.Equal(t, int64(10), created.PQty)
	assert.Equal(t, int64(1001), created.PCode)
	assert.Equal(t, "u1", created.UID)

	require.NotNil(t, ledger)
	assert.Equal(t, entity.TransactionBuy, ledger.Type)
	assert.Equal(t, int64(10), ledger.Quantity)
	assert.Equal(t, "p1", ledger.ProductID)
}

func TestInventoryService_Buy_ExistingProduct_AccumulatesQuantity(t *testing.T) {
	service, products, transactions, profiles, _ := createTestInventoryService(t)
	ctx := context.Background()

	existing := &entity.Product{PID: "p1", PName: "Rice 5kg", PQty: 7, PCode: 1001, UID: "u1"}
	products.EXPECT().FindByCode(ctx, int64(1001), "u1").Return(existing, nil).Once()

	var delta *entity.ProductDelta
	products.EXPECT().Update(ctx, "p1", mock.Anything).
		Run(func(_ context.Context, _ string, d *entity.ProductDelta) { delta = d }).
		Return(nil).Once()

	transactions.EXPECT().AllocateID(ctx).Return("t2", nil).Once()
	transactions.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

	// No new product, so only the transaction ref is appended.
	profiles.EXPECT().
		AppendProfileRefs(ctx, "u1", entity.ProfileRefs{Transactions: []string{"t2"}}).
		Return(nil).Once()

	out, err := service.Buy(ctx, "u1", buyInput(1001, 3))

	require.NoError(t, err)
	assert.Equal(t, "p1", out.ProductID)
	assert.False(t, out.ProductCreated)

	require.NotNil(t, delta)
	require.NotNil(t, delta.PQty)
	assert.Equal(t, int64(10), *delta.PQty)
}

func TestInventoryService_Buy_ProfileAppendFailure_IsPartialSuccess(t *testing.T) {
	service, products, transactions, profiles, _ := createTestInventoryService(t)
	ctx := context.Background()

	existing := &entity.Product{PID: "p1", PQty: 5, PCode: 1001, UID: "u1"}
	products.EXPECT().FindByCode(ctx, int64(1001), "u1").Return(existing, nil)
	products.EXPECT().Update(ctx, "p1", mock.Anything).Return(nil)
	transactions.EXPECT().AllocateID(ctx).Return("t3", nil)
	transactions.EXPECT().Create(ctx, mock.Anything).Return(nil)
	profiles.EXPECT().AppendProfileRefs(ctx, "u1", mock.Anything).
		Return(domainerrors.NewWriteError("users.appendRefs", assert.AnError))

	out, err := service.Buy(ctx, "u1", buyInput(1001, 2))

	require.NoError(t, err)
	require.NotNil(t, out.Partial)
	assert.Equal(t, domainerrors.StepProfileAppend, out.Partial.Step())
	assert.Equal(t, "t3", out.TransactionID)
}

func TestInventoryService_Buy_TransactionWriteFailure_NamesStep(t *testing.T) {
	service, products, transactions, _, _ := createTestInventoryService(t)
	ctx := context.Background()

	products.EXPECT().FindByCode(ctx, int64(1001), "u1").Return(nil, repository.ErrNotFound)
	products.EXPECT().AllocateID(ctx).Return("p1", nil)
	products.EXPECT().Create(ctx, mock.Anything).Return(nil)
	transactions.EXPECT().AllocateID(ctx).Return("", domainerrors.NewWriteError("transactions.allocate", assert.AnError))

	out, err := service.Buy(ctx, "u1", buyInput(1001, 4))

	require.Error(t, err)
	assert.Nil(t, out)

	var stepErr *domainerrors.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, domainerrors.StepTransactionWrite, stepErr.Step())
}

func TestInventoryService_Buy_Validation(t *testing.T) {
	service, _, _, _, _ := createTestInventoryService(t)
	ctx := context.Background()

	_, err := service.Buy(ctx, "u1", nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = service.Buy(ctx, "u1", &usecase.BuyInput{PName: "x", PCode: 1, Quantity: 0, PExpire: time.Now()})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = service.Buy(ctx, "u1", &usecase.BuyInput{PName: "", PCode: 1, Quantity: 2, PExpire: time.Now()})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	// Expiry must be in the future.
	_, err = service.Buy(ctx, "u1", &usecase.BuyInput{PName: "x", PCode: 1, Quantity: 2, Price: 1, PExpire: time.Now().AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestInventoryService_Sell_Success(t *testing.T) {
	service, products, transactions, profiles, _ := createTestInventoryService(t)
	ctx := context.Background()

	existing := &entity.Product{PID: "p1", PName: "Rice 5kg", PQty: 10, PCode: 1001, UID: "u1"}
	products.EXPECT().FindByCode(ctx, int64(1001), "u1").Return(existing, nil).Once()

	var delta *entity.ProductDelta
	products.EXPECT().Update(ctx, "p1", mock.Anything).
		Run(func(_ context.Context, _ string, d *entity.ProductDelta) { delta = d }).
		Return(nil).Once()

	transactions.EXPECT().AllocateID(ctx).Return("t4", nil).Once()

	var ledger *entity.Transaction
	transactions.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, txn *entity.Transaction) { ledger = txn }).
		Return(nil).Once()

	profiles.EXPECT().
		AppendProfileRefs(ctx, "u1", entity.ProfileRefs{Transactions: []string{"t4"}}).
		Return(nil).Once()

	out, err := service.Sell(ctx, "u1", &usecase.SellInput{PCode: 1001, Quantity: 4, Price: 15})

	require.NoError(t, err)
	assert.Equal(t, "t4", out.TransactionID)
	assert.False(t, out.ProductCreated)
	assert.Nil(t, out.Partial)

	require.NotNil(t, delta)
	require.NotNil(t, delta.PQty)
	assert.Equal(t, int64(6), *delta.PQty)

	require.NotNil(t, ledger)
	assert.Equal(t, entity.TransactionSell, ledger.Type)
	// The ledger entry carries the product's denormalized name and code.
	assert.Equal(t, "Rice 5kg", ledger.PName)
	assert.Equal(t, int64(1001), ledger.PCode)
}

func TestInventoryService_Sell_ExactStock_DrainsToZero(t *testing.T) {
	service, products, transactions, profiles, _ := createTestInventoryService(t)
	ctx := context.Background()

	existing := &entity.Product{PID: "p1", PQty: 4, PCode: 1001, UID: "u1"}
	products.EXPECT().FindByCode(ctx, int64(1001), "u1").Return(existing, nil)

	var delta *entity.ProductDelta
	products.EXPECT().Update(ctx, "p1", mock.Anything).
		Run(func(_ context.Context, _ string, d *entity.ProductDelta) { delta = d }).
		Return(nil)
	transactions.EXPECT().AllocateID(ctx).Return("t5", nil)
	transactions.EXPECT().Create(ctx, mock.Anything).Return(nil)
	profiles.EXPECT().AppendProfileRefs(ctx, "u1", mock.Anything).Return(nil)

	_, err := service.Sell(ctx, "u1", &usecase.SellInput{PCode: 1001, Quantity: 4, Price: 15})

	require.NoError(t, err)
	require.NotNil(t, delta.PQty)
	assert.Equal(t, int64(0), *delta.PQty)
}

func TestInventoryService_Sell_InsufficientStock_NoWrites(t *testing.T) {
	service, products, _, _, _ := createTestInventoryService(t)
	ctx := context.Background()

	existing := &entity.Product{PID: "p1", PQty: 3, PCode: 1001, UID: "u1"}
	products.EXPECT().FindByCode(ctx, int64(1001), "u1").Return(existing, nil)

	// No Update, Create, or AppendProfileRefs expectations: the stock check
	// fails before any mutation.
	out, err := service.Sell(ctx, "u1", &usecase.SellInput{PCode: 1001, Quantity: 5, Price: 15})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestInventoryService_Sell_UnknownCode(t *testing.T) {
	service, products, _, _, _ := createTestInventoryService(t)
	ctx := context.Background()

	products.EXPECT().FindByCode(ctx, int64(9999), "u1").Return(nil, repository.ErrNotFound)

	_, err := service.Sell(ctx, "u1", &usecase.SellInput{PCode: 9999, Quantity: 1, Price: 5})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestInventoryService_Sell_ProductWriteFailure_NamesStep(t *testing.T) {
	service, products, _, _, _ := createTestInventoryService(t)
	ctx := context.Background()

	existing := &entity.Product{PID: "p1", PQty: 10, PCode: 1001, UID: "u1"}
	products.EXPECT().FindByCode(ctx, int64(1001), "u1").Return(existing, nil)
	products.EXPECT().Update(ctx, "p1", mock.Anything).
		Return(domainerrors.NewWriteError("products.update", assert.AnError))

	_, err := service.Sell(ctx, "u1", &usecase.SellInput{PCode: 1001, Quantity: 2, Price: 15})

	var stepErr *domainerrors.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, domainerrors.StepProductWrite, stepErr.Step())
}

func TestInventoryService_History_DefaultLimit(t *testing.T) {
	service, _, transactions, _, _ := createTestInventoryService(t)
	ctx := context.Background()

	expected := []*entity.Transaction{{TransactionID: "t1"}}
	transactions.EXPECT().FindRecentByOwner(ctx, "u1", 100).Return(expected, nil)

	txns, err := service.History(ctx, "u1", 0)

	require.NoError(t, err)
	assert.Equal(t, expected, txns)
}

func TestInventoryService_TotalSales(t *testing.T) {
	service, _, transactions, _, _ := createTestInventoryService(t)
	ctx := context.Background()

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	transactions.EXPECT().FindSalesInRange(ctx, "u1", from, to).Return([]*entity.Transaction{
		{TransactionID: "t1", Quantity: 2, Price: 10},
		{TransactionID: "t2", Quantity: 1, Price: 7.5},
	}, nil)

	summary, err := service.TotalSales(ctx, "u1", from, to)

	require.NoError(t, err)
	assert.InDelta(t, 27.5, summary.Total, 1e-9)
	assert.Equal(t, 2, summary.Transactions)
}

func TestInventoryService_TotalSales_InvertedRange(t *testing.T) {
	service, _, _, _, _ := createTestInventoryService(t)
	ctx := context.Background()

	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.TotalSales(ctx, "u1", from, to)

	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}
