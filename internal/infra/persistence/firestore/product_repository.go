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
	"google.golang.org/api/iterator"
)

type productRepository struct {
	store
}

var _ repository.ProductRepository = (*productRepository)(nil)

// NewProductRepository creates the Firestore-backed product repository.
func NewProductRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.ProductRepository {
	return &productRepository{store: newStore(client, cfg, logger)}
}

func (r *productRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionProducts)
}

func (r *productRepository) AllocateID(ctx context.Context) (string, error) {
	// NewDoc only reserves an id; nothing is written until Create.
	return r.collection().NewDoc().ID, nil
}

func (r *productRepository) FindByID(ctx context.Context, pid string) (*entity.Product, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	snap, err := r.collection().Doc(pid).Get(ctx)
	if err != nil {
		return nil, classify("get product", err)
	}
	if !snap.Exists() {
		return nil, repository.ErrNotFound
	}

	var product entity.Product
	if err := snap.DataTo(&product); err != nil {
		return nil, errors.Wrap(err, "failed to decode product")
	}

	return &product, nil
}

func (r *productRepository) FindByCode(ctx context.Context, code int64, ownerUID string) (*entity.Product, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	// Product identity is (pCode, uid). Uniqueness is enforced by this
	// query-before-insert, not by a store-level constraint.
	iter := r.collection().
		Where("pCode", "==", code).
		Where("uid", "==", ownerUID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, classify("query product by code", err)
	}

	var product entity.Product
	if err := snap.DataTo(&product); err != nil {
		return nil, errors.Wrap(err, "failed to decode product")
	}

	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	if _, err := r.collection().Doc(product.PID).Set(ctx, product); err != nil {
		return classify("create product", err)
	}

	return nil
}

func (r *productRepository) Update(ctx context.Context, pid string, delta *entity.ProductDelta) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var updates []firestore.Update
	if delta.PName != nil {
		updates = append(updates, firestore.Update{Path: "pName", Value: *delta.PName})
	}
	if delta.PQty != nil {
		updates = append(updates, firestore.Update{Path: "pQty", Value: *delta.PQty})
	}
	if delta.PExpire != nil {
		updates = append(updates, firestore.Update{Path: "pExpire", Value: *delta.PExpire})
	}
	if delta.PCode != nil {
		updates = append(updates, firestore.Update{Path: "pCode", Value: *delta.PCode})
	}
	if len(updates) == 0 {
		return nil
	}

	if _, err := r.collection().Doc(pid).Update(ctx, updates); err != nil {
		return classify("update product", err)
	}

	return nil
}

func (r *productRepository) SubscribeByOwner(ctx context.Context, ownerUID string) (<-chan repository.ProductSnapshot, repository.CancelFunc, error) {
	query := r.collection().
		Where("uid", "==", ownerUID).
		OrderBy("pCode", firestore.Asc)

	subCtx, cancel := newSubscription(ctx)
	out := make(chan repository.ProductSnapshot)

	go func() {
		defer close(out)

		snapshots := query.Snapshots(subCtx)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if err = subscriptionErr(subCtx, err); err != nil {
					deliver(subCtx, out, repository.ProductSnapshot{Err: classify("products feed", err)})
				}

				return
			}

			products, err := decodeProducts(snap)
			if err != nil {
				deliver(subCtx, out, repository.ProductSnapshot{Err: err})

				return
			}

			if !deliver(subCtx, out, repository.ProductSnapshot{Products: products}) {
				return
			}
		}
	}()

	return out, cancel, nil
}

func decodeProducts(snap *firestore.QuerySnapshot) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, snap.Size)
	iter := snap.Documents
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, classify("read product snapshot", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Wrap(err, "failed to decode product")
		}
		products = append(products, &product)
	}

	return products, nil
}
