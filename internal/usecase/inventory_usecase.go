package usecase

import (
	"context"
	"time"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	domainerrors "github.com/ir-khan/inventory-management-system/internal/domain/errors"
)

// InventoryUsecase defines the interface for buy and sell workflows and
// transaction reporting.
//
// Buy and Sell execute their remote writes as an ordered sequence: product
// write, transaction write, profile reference append. A failure in either of
// the first two steps aborts the workflow; a failure in the final append is
// reported as a partial success because the trade itself already took effect.
type InventoryUsecase interface {
	// Buy records a purchase. An existing product (same code, same owner)
	// accumulates quantity and refreshes expiry; otherwise a product is
	// created.
	Buy(ctx context.Context, uid string, input *BuyInput) (*TradeOutput, error)

	// Sell records a sale, decrementing stock. Selling more than the stock
	// on hand fails before any write is issued.
	Sell(ctx context.Context, uid string, input *SellInput) (*TradeOutput, error)

	// History returns the owner's most recent transactions, newest first.
	History(ctx context.Context, uid string, limit int) ([]*entity.Transaction, error)

	// TotalSales sums the value of Sell transactions in [from, to].
	TotalSales(ctx context.Context, uid string, from, to time.Time) (*SalesSummary, error)
}

// --- Input DTOs ---

// BuyInput defines the data required to record a purchase.
type BuyInput struct {
	PName    string    `json:"pName" validate:"required,min=1"`
	PCode    int64     `json:"pCode" validate:"required,gt=0"`
	Quantity int64     `json:"quantity" validate:"required,gt=0"`
	Price    float64   `json:"price" validate:"gte=0"`
	PExpire  time.Time `json:"pExpire" validate:"required"`
}

// SellInput defines the data required to record a sale.
type SellInput struct {
	PCode    int64   `json:"pCode" validate:"required,gt=0"`
	Quantity int64   `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// TradeOutput reports the result of a buy or sell workflow.
type TradeOutput struct {
	ProductID     string `json:"productId"`
	TransactionID string `json:"transactionId"`

	// ProductCreated is true when a buy created a new product document
	// rather than restocking an existing one.
	ProductCreated bool `json:"productCreated"`

	// Partial is non-nil when the trade succeeded but the trailing profile
	// reference append failed. The caller may surface it as a warning.
	Partial *domainerrors.StepError `json:"-"`
}

// SalesSummary aggregates Sell transactions over a date range.
type SalesSummary struct {
	Total        float64   `json:"total"`
	Transactions int       `json:"transactions"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
}
