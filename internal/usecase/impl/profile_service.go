// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	domainerrors "github.com/ir-khan/inventory-management-system/internal/domain/errors"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"
	"github.com/ir-khan/inventory-management-system/internal/domain/service"
	"github.com/ir-khan/inventory-management-system/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// mergeJob is one remote profile merge waiting its turn on the writer
// goroutine. Jobs run strictly in submission order so an older edit can
// never land on top of a newer one.
type mergeJob struct {
	uid   string
	delta *entity.ProfileDelta
	reply chan error
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	users    repository.UserProfileRepository
	cache    repository.LocalCache
	monitor  service.ConnectivityMonitor
	validate *validator.Validate
	logger   *slog.Logger

	jobs chan mergeJob
	done chan struct{}

	// pendingMu serializes envelope stash/drain so a drain's clear can never
	// discard an edit stashed while the drain's remote merge was in flight.
	pendingMu sync.Mutex

	cancelOnOnline func()
	closeOnce      sync.Once
}

// NewProfileService is the constructor for profileService. It starts the
// writer goroutine and subscribes the drain to connectivity recovery.
func NewProfileService(
	users repository.UserProfileRepository,
	cache repository.LocalCache,
	monitor service.ConnectivityMonitor,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	srv := &profileService{
		users:    users,
		cache:    cache,
		monitor:  monitor,
		validate: validator.New(),
		logger:   logger,
		jobs:     make(chan mergeJob),
		done:     make(chan struct{}),
	}

	go srv.runWriter()

	srv.cancelOnOnline = monitor.OnOnline(func() {
		go func() {
			if err := srv.Drain(context.Background()); err != nil {
				srv.logger.Warn("Pending profile drain failed, will retry on next recovery",
					slog.Any("error", err),
				)
			}
		}()
	})

	return srv
}

// GetProfile returns the profile for uid, preferring the local cache.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	cached, err := srv.cache.GetUser(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile cache")
	}
	if cached != nil && cached.UID == uid {
		srv.logger.Debug("Profile served from cache", slog.String("uid", uid))

		return cached, nil
	}

	profile, err := srv.users.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile not found: " + uid)
		}

		return nil, errors.Wrap(err, "failed to fetch profile")
	}

	// A stashed edit is newer than whatever the remote returned; keep it
	// visible locally until the drain lands it.
	pending, err := srv.cache.GetPendingWrite(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read pending envelope")
	}
	pending.ApplyTo(profile)

	if err := srv.cache.SaveUser(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to refresh profile cache")
	}

	return profile, nil
}

// UpdateProfile applies a partial profile edit. The cache is updated first;
// the remote merge happens inline when online and is stashed for the drain
// otherwise. A failed inline merge degrades to a stash rather than an error.
func (srv *profileService) UpdateProfile(ctx context.Context, uid string, input *usecase.UpdateProfileInput) (*usecase.UpdateProfileResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidation.WrapMessage("missing update payload")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidation.WrapMessage(err.Error())
	}

	delta := &entity.ProfileDelta{
		Fullname: input.Fullname,
		PfpURL:   input.PfpURL,
	}
	if delta.IsZero() {
		return nil, domainerrors.ErrValidation.WrapMessage("update changes nothing")
	}

	merged, err := srv.mergeIntoCache(ctx, uid, delta)
	if err != nil {
		return nil, err
	}

	if !srv.monitor.IsOnline() {
		srv.logger.Info("Offline, stashing profile update", slog.String("uid", uid))

		if err := srv.stash(ctx, delta); err != nil {
			return nil, err
		}

		return &usecase.UpdateProfileResult{Profile: merged, Flushed: false}, nil
	}

	// This edit supersedes any stashed values for the same fields. Drop them
	// from the envelope before merging so a drain racing the merge cannot
	// re-apply them on top of the fresh value; a failed merge re-stashes the
	// fresh delta below.
	if err := srv.clearStashed(ctx, delta); err != nil {
		return nil, err
	}

	if err := srv.submitMerge(ctx, uid, delta); err != nil {
		srv.logger.Warn("Remote profile merge failed, stashing for drain",
			slog.String("uid", uid),
			slog.Any("error", err),
		)

		if stashErr := srv.stash(ctx, delta); stashErr != nil {
			return nil, stashErr
		}

		return &usecase.UpdateProfileResult{Profile: merged, Flushed: false}, nil
	}

	return &usecase.UpdateProfileResult{Profile: merged, Flushed: true}, nil
}

// AppendProfileRefs appends document references to the profile's reference
// lists, remotely and in the cache.
func (srv *profileService) AppendProfileRefs(ctx context.Context, uid string, refs entity.ProfileRefs) error {
	if refs.IsZero() {
		return nil
	}

	if err := srv.users.AppendRefs(ctx, uid, refs); err != nil {
		return errors.Wrap(err, "failed to append profile refs")
	}

	cached, err := srv.cache.GetUser(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read profile cache")
	}
	if cached == nil || cached.UID != uid {
		return nil
	}
	refs.ApplyTo(cached)

	return errors.Wrap(srv.cache.SaveUser(ctx, cached), "failed to refresh profile cache")
}

// Drain pushes the stashed pending envelope, if any, to the remote store.
// It is triggered on every offline-to-online transition and may be called
// directly. A failed drain leaves the envelope in place for the next edge.
func (srv *profileService) Drain(ctx context.Context) error {
	srv.pendingMu.Lock()
	defer srv.pendingMu.Unlock()

	pending, err := srv.cache.GetPendingWrite(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read pending envelope")
	}
	if pending.IsZero() {
		return nil
	}

	cached, err := srv.cache.GetUser(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read profile cache")
	}
	if cached == nil {
		// No owner to attribute the envelope to; discard it.
		srv.logger.Warn("Dropping pending envelope with no cached owner")

		return errors.Wrap(srv.cache.ClearPendingWrite(ctx), "failed to clear orphaned envelope")
	}

	srv.logger.Info("Draining pending profile update", slog.String("uid", cached.UID))

	if err := srv.submitMerge(ctx, cached.UID, pending); err != nil {
		return errors.Wrap(err, "failed to drain pending envelope")
	}

	return errors.Wrap(srv.cache.ClearPendingWrite(ctx), "failed to clear drained envelope")
}

// Close detaches the connectivity subscription and stops the writer.
func (srv *profileService) Close() error {
	srv.closeOnce.Do(func() {
		srv.cancelOnOnline()
		close(srv.done)
	})

	return nil
}

// mergeIntoCache folds the delta into the cached profile, warming the cache
// from the remote store if needed.
func (srv *profileService) mergeIntoCache(ctx context.Context, uid string, delta *entity.ProfileDelta) (*entity.UserProfile, error) {
	cached, err := srv.cache.GetUser(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile cache")
	}
	if cached == nil || cached.UID != uid {
		if _, err := srv.GetProfile(ctx, uid); err != nil {
			return nil, err
		}
	}

	merged, err := srv.cache.UpdateUser(ctx, delta)
	if err != nil {
		return nil, errors.Wrap(err, "failed to merge update into cache")
	}

	return merged, nil
}

// stash folds the delta into the single pending envelope.
func (srv *profileService) stash(ctx context.Context, delta *entity.ProfileDelta) error {
	srv.pendingMu.Lock()
	defer srv.pendingMu.Unlock()

	return errors.Wrap(srv.cache.SavePendingWrite(ctx, delta), "failed to stash pending update")
}

// clearStashed removes the fields covered by a successfully merged delta
// from the pending envelope. Fields the merge did not touch stay stashed.
func (srv *profileService) clearStashed(ctx context.Context, applied *entity.ProfileDelta) error {
	srv.pendingMu.Lock()
	defer srv.pendingMu.Unlock()

	pending, err := srv.cache.GetPendingWrite(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read pending envelope")
	}
	if pending.IsZero() {
		return nil
	}

	if err := srv.cache.ClearPendingWrite(ctx); err != nil {
		return errors.Wrap(err, "failed to clear pending envelope")
	}

	remainder := pending.Without(applied)
	if remainder.IsZero() {
		return nil
	}

	return errors.Wrap(srv.cache.SavePendingWrite(ctx, remainder), "failed to restash remainder")
}

// submitMerge hands the delta to the writer goroutine and waits for its
// turn to complete. Submission order is remote apply order.
func (srv *profileService) submitMerge(ctx context.Context, uid string, delta *entity.ProfileDelta) error {
	job := mergeJob{uid: uid, delta: delta, reply: make(chan error, 1)}

	select {
	case srv.jobs <- job:
	case <-srv.done:
		return errors.New("profile writer is closed")
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}

	select {
	case err := <-job.reply:
		return err
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// runWriter applies queued remote merges one at a time, in order.
func (srv *profileService) runWriter() {
	for {
		select {
		case job := <-srv.jobs:
			job.reply <- srv.users.Merge(context.Background(), job.uid, job.delta)
		case <-srv.done:
			return
		}
	}
}
