package firestore

import (
	"context"
	"log/slog"
	"time"

	"github.com/ir-khan/inventory-management-system/config"
	"github.com/ir-khan/inventory-management-system/internal/domain/constants"
	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type transactionRepository struct {
	store
}

var _ repository.TransactionRepository = (*transactionRepository)(nil)

// NewTransactionRepository creates the Firestore-backed ledger repository.
func NewTransactionRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.TransactionRepository {
	return &transactionRepository{store: newStore(client, cfg, logger)}
}

func (r *transactionRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionTransactions)
}

func (r *transactionRepository) AllocateID(ctx context.Context) (string, error) {
	return r.collection().NewDoc().ID, nil
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	if _, err := r.collection().Doc(txn.TransactionID).Set(ctx, txn); err != nil {
		return classify("create transaction", err)
	}

	return nil
}

func (r *transactionRepository) FindRecentByOwner(ctx context.Context, ownerUID string, limit int) ([]*entity.Transaction, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	iter := r.recentQuery(ownerUID, limit).Documents(ctx)
	defer iter.Stop()

	return collectTransactions(iter)
}

func (r *transactionRepository) FindSalesInRange(ctx context.Context, ownerUID string, from, to time.Time) ([]*entity.Transaction, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	iter := r.collection().
		Where("uid", "==", ownerUID).
		Where("type", "==", string(entity.TransactionSell)).
		Where("timestamp", ">=", from).
		Where("timestamp", "<=", to).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	return collectTransactions(iter)
}

func (r *transactionRepository) SubscribeRecentByOwner(ctx context.Context, ownerUID string, limit int) (<-chan repository.TransactionSnapshot, repository.CancelFunc, error) {
	if limit <= 0 {
		limit = constants.DefaultRecentTransactionLimit
	}

	subCtx, cancel := newSubscription(ctx)
	out := make(chan repository.TransactionSnapshot)

	go func() {
		defer close(out)

		snapshots := r.recentQuery(ownerUID, limit).Snapshots(subCtx)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if err = subscriptionErr(subCtx, err); err != nil {
					deliver(subCtx, out, repository.TransactionSnapshot{Err: classify("transactions feed", err)})
				}

				return
			}

			txns, err := decodeTransactions(snap)
			if err != nil {
				deliver(subCtx, out, repository.TransactionSnapshot{Err: err})

				return
			}

			if !deliver(subCtx, out, repository.TransactionSnapshot{Transactions: txns}) {
				return
			}
		}
	}()

	return out, cancel, nil
}

func (r *transactionRepository) recentQuery(ownerUID string, limit int) firestore.Query {
	return r.collection().
		Where("uid", "==", ownerUID).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit)
}

func decodeTransactions(snap *firestore.QuerySnapshot) ([]*entity.Transaction, error) {
	return collectTransactions(snap.Documents)
}

func collectTransactions(iter *firestore.DocumentIterator) ([]*entity.Transaction, error) {
	var txns []*entity.Transaction
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, classify("read transactions", err)
		}

		var txn entity.Transaction
		if err := doc.DataTo(&txn); err != nil {
			return nil, errors.Wrap(err, "failed to decode transaction")
		}
		txns = append(txns, &txn)
	}

	return txns, nil
}
