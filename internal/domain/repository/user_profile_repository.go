package repository

import (
	"context"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
)

// UserProfileRepository defines the standard operations for user-profile
// persistence against the remote store.
type UserProfileRepository interface {
	// FindByUID retrieves a single profile by its stable account id.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Create writes a brand-new profile document. Used once at signup.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// Merge applies a partial scalar update to the profile document. Fields
	// the delta leaves nil are untouched. Merging the same delta twice is a
	// no-op, which is what makes the pending-write drain idempotent.
	Merge(ctx context.Context, uid string, delta *entity.ProfileDelta) error

	// AppendRefs unions ids into the profile's denormalized reference lists.
	// Re-appending an already-present id is a safe no-op.
	AppendRefs(ctx context.Context, uid string, refs entity.ProfileRefs) error
}
