package service

import (
	"context"
	"time"
)

// TransactionEvent is emitted after a buy or sell workflow completes its
// primary effect. Publishing is fire-and-forget: a publish failure never
// fails the workflow that produced it.
type TransactionEvent struct {
	EventID       string    `json:"event_id"`
	UID           string    `json:"uid"`
	TransactionID string    `json:"transaction_id"`
	ProductID     string    `json:"product_id"`
	Type          string    `json:"type"` // "Buy" or "Sell"
	Quantity      int64     `json:"quantity"`
	Price         float64   `json:"price"`
	Timestamp     time.Time `json:"timestamp"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTransactionEvent publishes a completed-trade event for async consumers
	PublishTransactionEvent(ctx context.Context, event *TransactionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
