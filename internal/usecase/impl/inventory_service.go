package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/ir-khan/inventory-management-system/internal/domain/constants"
	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	domainerrors "github.com/ir-khan/inventory-management-system/internal/domain/errors"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"
	"github.com/ir-khan/inventory-management-system/internal/domain/service"
	"github.com/ir-khan/inventory-management-system/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// inventoryService implements the InventoryUsecase interface.
//
// Buy and Sell run their remote writes as a fixed sequence with no rollback:
// product write, ledger write, profile reference append. The error a caller
// sees always names the step that failed, so a retry can reason about which
// effects already landed.
type inventoryService struct {
	products     repository.ProductRepository
	transactions repository.TransactionRepository
	profiles     usecase.ProfileUsecase
	publisher    service.EventPublisher
	validate     *validator.Validate
	logger       *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
	profiles usecase.ProfileUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.InventoryUsecase {
	return &inventoryService{
		products:     products,
		transactions: transactions,
		profiles:     profiles,
		publisher:    publisher,
		validate:     validator.New(),
		logger:       logger,
	}
}

// Buy records a purchase. A product with the same code already in the
// owner's inventory accumulates quantity and refreshes name and expiry;
// otherwise a new product document is created.
func (srv *inventoryService) Buy(ctx context.Context, uid string, input *usecase.BuyInput) (*usecase.TradeOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidation.WrapMessage("missing buy payload")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidation.WrapMessage(err.Error())
	}

	now := time.Now().UTC()
	if !input.PExpire.After(now) {
		return nil, domainerrors.ErrValidation.WrapMessage("expiry date must be in the future")
	}

	// Step 1: product write.
	pid, created, err := srv.upsertProduct(ctx, uid, input)
	if err != nil {
		return nil, domainerrors.NewStepError(domainerrors.StepProductWrite, err)
	}

	// Step 2: ledger write.
	txn, err := srv.appendLedger(ctx, &entity.Transaction{
		UID:       uid,
		ProductID: pid,
		Quantity:  input.Quantity,
		Type:      entity.TransactionBuy,
		Timestamp: now,
		Price:     input.Price,
		PName:     input.PName,
		PCode:     input.PCode,
	})
	if err != nil {
		return nil, domainerrors.NewStepError(domainerrors.StepTransactionWrite, err)
	}

	out := &usecase.TradeOutput{
		ProductID:      pid,
		TransactionID:  txn.TransactionID,
		ProductCreated: created,
	}

	// Step 3: profile reference append. The trade already took effect, so a
	// failure here downgrades to a partial success instead of an error.
	refs := entity.ProfileRefs{Transactions: []string{txn.TransactionID}}
	if created {
		refs.Products = []string{pid}
	}
	if err := srv.profiles.AppendProfileRefs(ctx, uid, refs); err != nil {
		srv.logger.Warn("Buy completed but profile append failed",
			slog.String("uid", uid),
			slog.String("transactionId", txn.TransactionID),
			slog.Any("error", err),
		)
		out.Partial = domainerrors.NewStepError(domainerrors.StepProfileAppend, err)
	}

	srv.publishEvent(txn)

	return out, nil
}

// Sell records a sale. Stock is validated before any write: selling more
// than the on-hand quantity fails with no effect at all.
func (srv *inventoryService) Sell(ctx context.Context, uid string, input *usecase.SellInput) (*usecase.TradeOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidation.WrapMessage("missing sell payload")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidation.WrapMessage(err.Error())
	}

	product, err := srv.products.FindByCode(ctx, input.PCode, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("no product with code in inventory")
		}

		return nil, errors.Wrap(err, "failed to resolve product")
	}

	if product.PQty < input.Quantity {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(
			"requested " + formatInt(input.Quantity) + ", on hand " + formatInt(product.PQty),
		)
	}

	now := time.Now().UTC()
	remaining := product.PQty - input.Quantity

	// Step 1: product write.
	if err := srv.products.Update(ctx, product.PID, &entity.ProductDelta{PQty: &remaining}); err != nil {
		return nil, domainerrors.NewStepError(domainerrors.StepProductWrite, err)
	}

	// Step 2: ledger write.
	txn, err := srv.appendLedger(ctx, &entity.Transaction{
		UID:       uid,
		ProductID: product.PID,
		Quantity:  input.Quantity,
		Type:      entity.TransactionSell,
		Timestamp: now,
		Price:     input.Price,
		PName:     product.PName,
		PCode:     product.PCode,
	})
	if err != nil {
		return nil, domainerrors.NewStepError(domainerrors.StepTransactionWrite, err)
	}

	out := &usecase.TradeOutput{
		ProductID:     product.PID,
		TransactionID: txn.TransactionID,
	}

	// Step 3: profile reference append, partial on failure.
	refs := entity.ProfileRefs{Transactions: []string{txn.TransactionID}}
	if err := srv.profiles.AppendProfileRefs(ctx, uid, refs); err != nil {
		srv.logger.Warn("Sell completed but profile append failed",
			slog.String("uid", uid),
			slog.String("transactionId", txn.TransactionID),
			slog.Any("error", err),
		)
		out.Partial = domainerrors.NewStepError(domainerrors.StepProfileAppend, err)
	}

	srv.publishEvent(txn)

	return out, nil
}

// History returns the owner's most recent transactions, newest first.
func (srv *inventoryService) History(ctx context.Context, uid string, limit int) ([]*entity.Transaction, error) {
	if limit <= 0 {
		limit = constants.DefaultRecentTransactionLimit
	}

	txns, err := srv.transactions.FindRecentByOwner(ctx, uid, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transaction history")
	}

	return txns, nil
}

// TotalSales sums the value of Sell transactions in [from, to].
func (srv *inventoryService) TotalSales(ctx context.Context, uid string, from, to time.Time) (*usecase.SalesSummary, error) {
	if to.Before(from) {
		return nil, domainerrors.ErrValidation.WrapMessage("range end precedes range start")
	}

	sales, err := srv.transactions.FindSalesInRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	summary := &usecase.SalesSummary{From: from, To: to, Transactions: len(sales)}
	for _, txn := range sales {
		summary.Total += txn.Price * float64(txn.Quantity)
	}

	return summary, nil
}

// upsertProduct resolves a buy against the owner's inventory: restock when
// the code already exists, create otherwise. Returns the product id and
// whether a new document was created.
func (srv *inventoryService) upsertProduct(ctx context.Context, uid string, input *usecase.BuyInput) (string, bool, error) {
	existing, err := srv.products.FindByCode(ctx, input.PCode, uid)
	switch {
	case err == nil:
		accumulated := existing.PQty + input.Quantity
		delta := &entity.ProductDelta{
			PName:   &input.PName,
			PQty:    &accumulated,
			PExpire: &input.PExpire,
		}
		if err := srv.products.Update(ctx, existing.PID, delta); err != nil {
			return "", false, errors.Wrap(err, "failed to restock product")
		}

		return existing.PID, false, nil

	case errors.Is(err, repository.ErrNotFound):
		pid, err := srv.products.AllocateID(ctx)
		if err != nil {
			return "", false, errors.Wrap(err, "failed to allocate product id")
		}
		product := &entity.Product{
			PID:     pid,
			PName:   input.PName,
			PQty:    input.Quantity,
			PExpire: input.PExpire,
			PCode:   input.PCode,
			UID:     uid,
		}
		if err := srv.products.Create(ctx, product); err != nil {
			return "", false, errors.Wrap(err, "failed to create product")
		}

		return pid, true, nil

	default:
		return "", false, errors.Wrap(err, "failed to resolve product")
	}
}

// appendLedger allocates an id and writes the ledger entry.
func (srv *inventoryService) appendLedger(ctx context.Context, txn *entity.Transaction) (*entity.Transaction, error) {
	tid, err := srv.transactions.AllocateID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate transaction id")
	}
	txn.TransactionID = tid

	if err := srv.transactions.Create(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "failed to append ledger entry")
	}

	return txn, nil
}

// publishEvent emits the completed-trade event, fire-and-forget.
func (srv *inventoryService) publishEvent(txn *entity.Transaction) {
	event := &service.TransactionEvent{
		EventID:       uuid.NewString(),
		UID:           txn.UID,
		TransactionID: txn.TransactionID,
		ProductID:     txn.ProductID,
		Type:          string(txn.Type),
		Quantity:      txn.Quantity,
		Price:         txn.Price,
		Timestamp:     txn.Timestamp,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.publisher.PublishTransactionEvent(ctx, event); err != nil {
			srv.logger.Warn("Transaction event publish failed",
				slog.String("transactionId", event.TransactionID),
				slog.Any("error", err),
			)
		}
	}()
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
