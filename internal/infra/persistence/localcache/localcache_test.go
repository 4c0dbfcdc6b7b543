package localcache

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (repository.LocalCache, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cache.db")
	cache, err := Open(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache, path
}

func strptr(s string) *string { return &s }

func TestCache_SaveAndGetUser(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	got, err := cache.GetUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "cold cache should report no user")

	profile := &entity.UserProfile{
		UID:      "u1",
		Fullname: "Ada Lovelace",
		Email:    "ada@example.com",
		Products: []string{"p1"},
	}
	require.NoError(t, cache.SaveUser(ctx, profile))

	got, err = cache.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestCache_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	cache, err := Open(path, logger)
	require.NoError(t, err)
	require.NoError(t, cache.SaveUser(ctx, &entity.UserProfile{UID: "u1", Fullname: "Ada"}))
	require.NoError(t, cache.SavePendingWrite(ctx, &entity.ProfileDelta{Fullname: strptr("Grace")}))
	require.NoError(t, cache.Close())

	reopened, err := Open(path, logger)
	require.NoError(t, err)
	defer reopened.Close()

	profile, err := reopened.GetUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ada", profile.Fullname)

	pending, err := reopened.GetPendingWrite(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, "Grace", *pending.Fullname)
}

func TestCache_UpdateUser_LastWriteWinsPerField(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SaveUser(ctx, &entity.UserProfile{UID: "u1", Fullname: "Ada", PfpURL: "old.png"}))

	_, err := cache.UpdateUser(ctx, &entity.ProfileDelta{Fullname: strptr("Grace")})
	require.NoError(t, err)
	_, err = cache.UpdateUser(ctx, &entity.ProfileDelta{PfpURL: strptr("new.png")})
	require.NoError(t, err)

	profile, err := cache.GetUser(ctx)
	require.NoError(t, err)

	// Both edits retained: the merge is per field, not per record.
	assert.Equal(t, "Grace", profile.Fullname)
	assert.Equal(t, "new.png", profile.PfpURL)
}

func TestCache_UpdateUser_ColdCacheFails(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.UpdateUser(context.Background(), &entity.ProfileDelta{Fullname: strptr("Grace")})
	assert.Error(t, err)
}

func TestCache_PendingWrite_MergesIntoSingleEnvelope(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SavePendingWrite(ctx, &entity.ProfileDelta{Fullname: strptr("Grace")}))
	require.NoError(t, cache.SavePendingWrite(ctx, &entity.ProfileDelta{PfpURL: strptr("new.png")}))
	require.NoError(t, cache.SavePendingWrite(ctx, &entity.ProfileDelta{Fullname: strptr("Katherine")}))

	pending, err := cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)

	// One envelope, latest value per field.
	assert.Equal(t, "Katherine", *pending.Fullname)
	assert.Equal(t, "new.png", *pending.PfpURL)
}

func TestCache_ClearPendingWrite(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SavePendingWrite(ctx, &entity.ProfileDelta{Fullname: strptr("Grace")}))
	require.NoError(t, cache.ClearPendingWrite(ctx))

	pending, err := cache.GetPendingWrite(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending)

	// Clearing an already-empty envelope is fine.
	require.NoError(t, cache.ClearPendingWrite(ctx))
}
