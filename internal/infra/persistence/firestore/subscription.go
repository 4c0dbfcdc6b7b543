package firestore

import (
	"context"
	"sync"

	"github.com/ir-khan/inventory-management-system/internal/domain/repository"

	"github.com/pkg/errors"
)

// newSubscription derives the context a snapshot listener runs under and the
// idempotent cancel handle returned to the subscriber.
func newSubscription(parent context.Context) (context.Context, repository.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	var once sync.Once
	return ctx, func() {
		once.Do(cancel)
	}
}

// deliver pushes one snapshot unless the subscription was canceled first.
// Returns false when the subscription is done and the pump should exit.
func deliver[T any](ctx context.Context, out chan<- T, value T) bool {
	select {
	case out <- value:
		return true
	case <-ctx.Done():
		return false
	}
}

// subscriptionErr filters cancellation out of listener failures: a canceled
// subscription ends silently, anything else is reported in-band.
func subscriptionErr(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
