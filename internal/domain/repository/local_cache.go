package repository

import (
	"context"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
)

// LocalCache is the durable on-device store for the current user's profile
// and the single outstanding pending-write envelope. It survives process
// restarts and serves profile reads without a network round-trip once warm.
//
// UpdateUser and SavePendingWrite merge field-level last-write-wins: two
// concurrent edits to different fields are both retained. That is the one
// and only cross-field merge rule in the system; list appends and numeric
// math are computed by the caller before reaching this layer.
type LocalCache interface {
	// SaveUser replaces the cached profile wholesale.
	SaveUser(ctx context.Context, profile *entity.UserProfile) error

	// GetUser returns the cached profile, or nil when the cache is cold.
	GetUser(ctx context.Context) (*entity.UserProfile, error)

	// UpdateUser merges a partial edit into the cached profile.
	// Returns the profile after the merge.
	UpdateUser(ctx context.Context, delta *entity.ProfileDelta) (*entity.UserProfile, error)

	// SavePendingWrite folds the delta into the single pending envelope,
	// creating it if absent.
	SavePendingWrite(ctx context.Context, delta *entity.ProfileDelta) error

	// GetPendingWrite returns the outstanding envelope, or nil if none.
	GetPendingWrite(ctx context.Context) (*entity.ProfileDelta, error)

	// ClearPendingWrite discards the envelope after a successful drain.
	ClearPendingWrite(ctx context.Context) error

	// Close releases the underlying store.
	Close() error
}
