package entity

import "time"

// TransactionType distinguishes the two ledger directions.
type TransactionType string

const (
	TransactionBuy  TransactionType = "Buy"
	TransactionSell TransactionType = "Sell"
)

// Transaction is an append-only ledger entry recording one buy or sell.
// Once written it is never mutated or deleted by this module. Product name
// and code are denormalized onto the entry so history screens need no join.
type Transaction struct {
	TransactionID string          `firestore:"transactionId" json:"transactionId"` // Document id.
	UID           string          `firestore:"uid" json:"uid"`                     // Owning user.
	ProductID     string          `firestore:"productId" json:"productId"`         // Product document the trade touched.
	Quantity      int64           `firestore:"quantity" json:"quantity"`
	Type          TransactionType `firestore:"type" json:"type"`
	Timestamp     time.Time       `firestore:"timestamp" json:"timestamp"` // Clock at call time.
	Price         float64         `firestore:"price" json:"price"`         // Unit price quoted for this trade.
	PName         string          `firestore:"pName" json:"pName"`
	PCode         int64           `firestore:"pCode" json:"pCode"`
}
