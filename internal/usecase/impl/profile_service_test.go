package impl

import (
	"context"
	"testing"
	"time"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	domainerrors "github.com/ir-khan/inventory-management-system/internal/domain/errors"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"
	mockRepo "github.com/ir-khan/inventory-management-system/internal/mocks/repository"
	"github.com/ir-khan/inventory-management-system/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func createTestProfileService(t *testing.T, online bool) (
	usecase.ProfileUsecase,
	*mockRepo.MockUserProfileRepository,
	*fakeLocalCache,
	*fakeMonitor,
) {
	users := mockRepo.NewMockUserProfileRepository(t)
	cache := newFakeLocalCache()
	monitor := newFakeMonitor(online)

	service := NewProfileService(users, cache, monitor, newDiscardLogger())
	t.Cleanup(func() { _ = service.Close() })

	return service, users, cache, monitor
}

func seedProfile(t *testing.T, cache *fakeLocalCache, uid string) *entity.UserProfile {
	t.Helper()

	profile := &entity.UserProfile{
		UID:      uid,
		Fullname: "Ada Vendor",
		Email:    "ada@example.com",
	}
	require.NoError(t, cache.SaveUser(context.Background(), profile))

	return profile
}

func TestProfileService_GetProfile_CacheHit(t *testing.T) {
	service, _, cache, _ := createTestProfileService(t, true)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	// No remote expectation: a warm cache must not trigger a fetch.
	profile, err := service.GetProfile(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, "Ada Vendor", profile.Fullname)
}

func TestProfileService_GetProfile_CacheMiss_FetchesAndCaches(t *testing.T) {
	service, users, cache, _ := createTestProfileService(t, true)
	ctx := context.Background()

	remote := &entity.UserProfile{UID: "u1", Fullname: "Remote Name", Email: "r@example.com"}
	users.EXPECT().FindByUID(ctx, "u1").Return(remote, nil).Once()

	profile, err := service.GetProfile(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, "Remote Name", profile.Fullname)

	cached, err := cache.GetUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "u1", cached.UID)

	// Second read is served from the refreshed cache.
	again, err := service.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Remote Name", again.Fullname)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	service, users, _, _ := createTestProfileService(t, true)
	ctx := context.Background()

	users.EXPECT().FindByUID(ctx, "missing").Return(nil, repository.ErrNotFound)

	profile, err := service.GetProfile(ctx, "missing")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_GetProfile_PendingEnvelopeOverlaysRemote(t *testing.T) {
	service, users, cache, _ := createTestProfileService(t, true)
	ctx := context.Background()

	require.NoError(t, cache.SavePendingWrite(ctx, &entity.ProfileDelta{Fullname: strPtr("Edited Offline")}))
	users.EXPECT().FindByUID(ctx, "u1").
		Return(&entity.UserProfile{UID: "u1", Fullname: "Stale Remote"}, nil)

	profile, err := service.GetProfile(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, "Edited Offline", profile.Fullname)
}

func TestProfileService_UpdateProfile_Online_Flushes(t *testing.T) {
	service, users, cache, _ := createTestProfileService(t, true)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	var got *entity.ProfileDelta
	users.EXPECT().Merge(mock.Anything, "u1", mock.Anything).
		Run(func(_ context.Context, _ string, delta *entity.ProfileDelta) { got = delta }).
		Return(nil).Once()

	result, err := service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("New Name")})

	require.NoError(t, err)
	assert.True(t, result.Flushed)
	assert.Equal(t, "New Name", result.Profile.Fullname)
	require.NotNil(t, got)
	assert.Equal(t, "New Name", *got.Fullname)

	pending, err := cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestProfileService_UpdateProfile_Offline_Stashes(t *testing.T) {
	service, _, cache, _ := createTestProfileService(t, false)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	result, err := service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("Offline Name")})

	require.NoError(t, err)
	assert.False(t, result.Flushed)
	assert.Equal(t, "Offline Name", result.Profile.Fullname)

	pending, err := cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, "Offline Name", *pending.Fullname)
}

func TestProfileService_UpdateProfile_MergeFailure_DegradesToStash(t *testing.T) {
	service, users, cache, _ := createTestProfileService(t, true)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	users.EXPECT().Merge(mock.Anything, "u1", mock.Anything).
		Return(domainerrors.NewWriteError("users.merge", assert.AnError)).Once()

	result, err := service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("Queued Name")})

	require.NoError(t, err)
	assert.False(t, result.Flushed)

	pending, err := cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, "Queued Name", *pending.Fullname)
}

func TestProfileService_UpdateProfile_FlushSupersedesStashedField(t *testing.T) {
	service, users, cache, _ := createTestProfileService(t, true)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	users.EXPECT().Merge(mock.Anything, "u1", mock.Anything).
		Return(domainerrors.NewWriteError("users.merge", assert.AnError)).Once()

	var got *entity.ProfileDelta
	users.EXPECT().Merge(mock.Anything, "u1", mock.Anything).
		Run(func(_ context.Context, _ string, delta *entity.ProfileDelta) { got = delta }).
		Return(nil).Once()

	// First edit fails and gets stashed.
	_, err := service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("Stale Name")})
	require.NoError(t, err)

	// A newer edit to the same field lands remotely. The stashed value is
	// now obsolete and must not survive to the next drain.
	result, err := service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("Fresh Name")})
	require.NoError(t, err)
	assert.True(t, result.Flushed)
	require.NotNil(t, got)
	assert.Equal(t, "Fresh Name", *got.Fullname)

	pending, err := cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending)

	// No third Merge expectation: draining must not re-apply the stale edit.
	require.NoError(t, service.Drain(ctx))
}

func TestProfileService_UpdateProfile_FlushKeepsUncoveredStashedField(t *testing.T) {
	service, users, cache, _ := createTestProfileService(t, true)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	users.EXPECT().Merge(mock.Anything, "u1", mock.Anything).
		Return(domainerrors.NewWriteError("users.merge", assert.AnError)).Once()
	users.EXPECT().Merge(mock.Anything, "u1", mock.Anything).Return(nil).Once()

	_, err := service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{PfpURL: strPtr("https://cdn.example.com/a.png")})
	require.NoError(t, err)

	// Flushing a different field leaves the stashed picture edit in place.
	_, err = service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("Fresh Name")})
	require.NoError(t, err)

	pending, err := cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Nil(t, pending.Fullname)
	require.NotNil(t, pending.PfpURL)
	assert.Equal(t, "https://cdn.example.com/a.png", *pending.PfpURL)
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	service, _, cache, _ := createTestProfileService(t, true)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	_, err := service.UpdateProfile(ctx, "u1", nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{PfpURL: strPtr("not a url")})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestProfileService_PendingEnvelope_FieldLevelMerge(t *testing.T) {
	service, _, cache, _ := createTestProfileService(t, false)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	_, err := service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("First")})
	require.NoError(t, err)
	_, err = service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{PfpURL: strPtr("https://cdn.example.com/a.png")})
	require.NoError(t, err)
	_, err = service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("Second")})
	require.NoError(t, err)

	pending, err := cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	// Same field: last writer wins. Different field: both survive.
	assert.Equal(t, "Second", *pending.Fullname)
	assert.Equal(t, "https://cdn.example.com/a.png", *pending.PfpURL)
}

func TestProfileService_Drain_OnRecovery(t *testing.T) {
	service, users, cache, monitor := createTestProfileService(t, false)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	_, err := service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("Drained Name")})
	require.NoError(t, err)

	var got *entity.ProfileDelta
	users.EXPECT().Merge(mock.Anything, "u1", mock.Anything).
		Run(func(_ context.Context, _ string, delta *entity.ProfileDelta) { got = delta }).
		Return(nil).Once()

	monitor.goOnline()

	require.Eventually(t, func() bool {
		pending, err := cache.GetPendingWrite(ctx)

		return err == nil && pending == nil
	}, 2*time.Second, 10*time.Millisecond)
	require.NotNil(t, got)
	assert.Equal(t, "Drained Name", *got.Fullname)
}

func TestProfileService_Drain_NoPending_NoRemoteCall(t *testing.T) {
	service, _, cache, _ := createTestProfileService(t, true)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	// No Merge expectation: draining an empty envelope must not touch the
	// remote store.
	require.NoError(t, service.Drain(ctx))
	require.NoError(t, service.Drain(ctx))
}

func TestProfileService_Drain_FailureKeepsEnvelope(t *testing.T) {
	service, users, cache, _ := createTestProfileService(t, false)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	_, err := service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("Sticky Name")})
	require.NoError(t, err)

	users.EXPECT().Merge(mock.Anything, "u1", mock.Anything).
		Return(domainerrors.NewWriteError("users.merge", assert.AnError)).Once()
	users.EXPECT().Merge(mock.Anything, "u1", mock.Anything).Return(nil).Once()

	require.Error(t, service.Drain(ctx))

	pending, err := cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, "Sticky Name", *pending.Fullname)

	// The envelope survives to the next attempt and drains cleanly.
	require.NoError(t, service.Drain(ctx))

	pending, err = cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestProfileService_Drain_Idempotent(t *testing.T) {
	service, users, cache, _ := createTestProfileService(t, false)
	ctx := context.Background()
	seeded := seedProfile(t, cache, "u1")

	_, err := service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("Replayed Name")})
	require.NoError(t, err)

	var first, second *entity.ProfileDelta
	users.EXPECT().Merge(mock.Anything, "u1", mock.Anything).
		Run(func(_ context.Context, _ string, delta *entity.ProfileDelta) { first = delta }).
		Return(nil).Once()
	users.EXPECT().Merge(mock.Anything, "u1", mock.Anything).
		Run(func(_ context.Context, _ string, delta *entity.ProfileDelta) { second = delta }).
		Return(nil).Once()

	require.NoError(t, service.Drain(ctx))

	// Crash between the remote merge and the local clear: the identical
	// envelope is back for the next drain.
	require.NoError(t, cache.SavePendingWrite(ctx, &entity.ProfileDelta{Fullname: strPtr("Replayed Name")}))
	require.NoError(t, service.Drain(ctx))

	// Replaying the same envelope leaves the remote profile unchanged.
	require.NotNil(t, first)
	require.NotNil(t, second)
	remote := seeded.Clone()
	first.ApplyTo(remote)
	afterOnce := remote.Clone()
	second.ApplyTo(remote)
	assert.Equal(t, afterOnce, remote)

	pending, err := cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestProfileService_Close_StopsDrainSubscription(t *testing.T) {
	service, _, cache, monitor := createTestProfileService(t, false)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	_, err := service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Fullname: strPtr("Never Drained")})
	require.NoError(t, err)

	require.NoError(t, service.Close())
	monitor.goOnline()

	// No Merge expectation: a closed service must not react to recovery.
	time.Sleep(50 * time.Millisecond)

	pending, err := cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, "Never Drained", *pending.Fullname)
}

func TestProfileService_AppendProfileRefs_UpdatesRemoteAndCache(t *testing.T) {
	service, users, cache, _ := createTestProfileService(t, true)
	ctx := context.Background()
	seedProfile(t, cache, "u1")

	refs := entity.ProfileRefs{Products: []string{"p1"}, Transactions: []string{"t1"}}
	users.EXPECT().AppendRefs(ctx, "u1", refs).Return(nil).Once()

	require.NoError(t, service.AppendProfileRefs(ctx, "u1", refs))

	cached, err := cache.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, cached.Products)
	assert.Equal(t, []string{"t1"}, cached.Transactions)

	// Re-appending the same ids is a no-op union.
	users.EXPECT().AppendRefs(ctx, "u1", refs).Return(nil).Once()
	require.NoError(t, service.AppendProfileRefs(ctx, "u1", refs))

	cached, err = cache.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, cached.Products)
}
