// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
//
// All remote operations are asynchronous from the app's point of view and
// may fail transiently; none of them assumes multi-document transactions.
// Compound invariants are maintained by the ordered-step workflows in the
// usecase layer, not by store-side atomicity.
package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist. The
// usecase layer maps it onto the domain error taxonomy; any other failure
// from a store operation is treated as transient.
var ErrNotFound = errors.New("record not found")

// CancelFunc releases a live subscription. It is idempotent: calling it a
// second time is a no-op. After it returns, no further snapshots are
// delivered and the snapshot channel is closed.
type CancelFunc func()
