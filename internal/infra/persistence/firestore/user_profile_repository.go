package firestore

import (
	"context"
	"log/slog"

	"github.com/ir-khan/inventory-management-system/config"
	"github.com/ir-khan/inventory-management-system/internal/domain/constants"
	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type userProfileRepository struct {
	store
}

var _ repository.UserProfileRepository = (*userProfileRepository)(nil)

// NewUserProfileRepository creates the Firestore-backed profile repository.
func NewUserProfileRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.UserProfileRepository {
	return &userProfileRepository{store: newStore(client, cfg, logger)}
}

func (r *userProfileRepository) doc(uid string) *firestore.DocumentRef {
	return r.client.Collection(constants.CollectionUsers).Doc(uid)
}

func (r *userProfileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	snap, err := r.doc(uid).Get(ctx)
	if err != nil {
		return nil, classify("get user profile", err)
	}
	if !snap.Exists() {
		return nil, repository.ErrNotFound
	}

	var profile entity.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode user profile")
	}

	return &profile, nil
}

func (r *userProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	if _, err := r.doc(profile.UID).Set(ctx, profile); err != nil {
		return classify("create user profile", err)
	}

	return nil
}

func (r *userProfileRepository) Merge(ctx context.Context, uid string, delta *entity.ProfileDelta) error {
	if delta.IsZero() {
		return nil
	}

	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var updates []firestore.Update
	if delta.Fullname != nil {
		updates = append(updates, firestore.Update{Path: "fullname", Value: *delta.Fullname})
	}
	if delta.PfpURL != nil {
		updates = append(updates, firestore.Update{Path: "pfpURL", Value: *delta.PfpURL})
	}

	if _, err := r.doc(uid).Update(ctx, updates); err != nil {
		return classify("merge user profile", err)
	}

	return nil
}

func (r *userProfileRepository) AppendRefs(ctx context.Context, uid string, refs entity.ProfileRefs) error {
	if refs.IsZero() {
		return nil
	}

	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	// ArrayUnion gives the set semantics the reference lists rely on:
	// re-appending an id already present leaves the document unchanged.
	var updates []firestore.Update
	if len(refs.Employees) > 0 {
		updates = append(updates, firestore.Update{Path: "employees", Value: firestore.ArrayUnion(toAny(refs.Employees)...)})
	}
	if len(refs.Products) > 0 {
		updates = append(updates, firestore.Update{Path: "products", Value: firestore.ArrayUnion(toAny(refs.Products)...)})
	}
	if len(refs.Transactions) > 0 {
		updates = append(updates, firestore.Update{Path: "transactions", Value: firestore.ArrayUnion(toAny(refs.Transactions)...)})
	}

	if _, err := r.doc(uid).Update(ctx, updates); err != nil {
		return classify("append profile refs", err)
	}

	return nil
}

func toAny(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}

	return out
}
