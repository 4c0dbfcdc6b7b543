// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
)

// ProfileUsecase defines the interface for offline-aware profile operations.
//
// Reads are cache-first: a cached profile is returned without touching the
// remote store, and a remote fetch both serves and refreshes the cache.
// Updates apply to the cache immediately and reach the remote store either
// inline (when online) or later via Drain (when the write was deferred).
type ProfileUsecase interface {
	// GetProfile returns the profile for uid, preferring the local cache.
	GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error)

	// UpdateProfile applies a partial update. The returned result reports
	// whether the change reached the remote store or was stashed locally.
	UpdateProfile(ctx context.Context, uid string, input *UpdateProfileInput) (*UpdateProfileResult, error)

	// AppendProfileRefs appends document references to the profile's
	// reference lists in the remote store.
	AppendProfileRefs(ctx context.Context, uid string, refs entity.ProfileRefs) error

	// Drain attempts to push the stashed pending update, if any, to the
	// remote store. It is safe to call at any time.
	Drain(ctx context.Context) error

	// Close detaches the connectivity subscription and stops the writer.
	Close() error
}

// --- Input DTOs ---

// UpdateProfileInput defines the editable profile fields. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	Fullname *string `json:"fullname,omitempty" validate:"omitempty,min=1"`
	PfpURL   *string `json:"pfpURL,omitempty" validate:"omitempty,url"`
}

// UpdateProfileResult reports the outcome of an update.
type UpdateProfileResult struct {
	// Profile is the locally merged profile after the update.
	Profile *entity.UserProfile `json:"profile"`

	// Flushed is true when the update reached the remote store, false when
	// it was stashed as a pending write for a later Drain.
	Flushed bool `json:"flushed"`
}
