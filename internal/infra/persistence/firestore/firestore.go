// Package firestore implements the repository interfaces against Cloud
// Firestore, the document backend the mobile clients already talk to.
//
// Every operation runs under the configured per-op timeout; a stuck network
// call surfaces as a retryable write failure instead of stalling the calling
// workflow. Document-absent conditions map to repository.ErrNotFound; every
// other failure is wrapped as a domain WriteError.
package firestore

import (
	"context"
	"log/slog"
	"time"

	"github.com/ir-khan/inventory-management-system/config"
	domainerrors "github.com/ir-khan/inventory-management-system/internal/domain/errors"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Config *config.Config
	Logger *slog.Logger
}

// NewClient opens the Firestore client and ties its shutdown to the fx
// lifecycle.
func NewClient(params ClientParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// store carries what every collection repository needs.
type store struct {
	client    *firestore.Client
	opTimeout time.Duration
	logger    *slog.Logger
}

func newStore(client *firestore.Client, cfg *config.Config, logger *slog.Logger) store {
	return store{
		client:    client,
		opTimeout: cfg.Store.OpTimeout,
		logger:    logger,
	}
}

// opCtx bounds a single remote call.
func (s store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

// classify translates a Firestore error into the domain taxonomy.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return repository.ErrNotFound
	}

	return domainerrors.NewWriteError(op, err)
}
