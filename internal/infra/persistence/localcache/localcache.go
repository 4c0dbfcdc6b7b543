// Package localcache implements the durable on-device cache on an embedded
// SQLite database (modernc.org/sqlite, pure Go, no cgo). One small kv table
// holds the cached profile and the single pending-write envelope; both
// survive process restarts while the device is offline.
package localcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ir-khan/inventory-management-system/config"
	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Storage keys. They match the keys the mobile app used so the semantics
// stay recognizable: one current user, one pending update.
const (
	keyCurrentUser   = "currentUser"
	keyPendingUpdate = "pendingUpdate"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

type cache struct {
	conn   *sql.DB
	logger *slog.Logger

	// One logical session writes to the cache, but merges are
	// read-modify-write, so guard them against overlapping calls.
	mu sync.Mutex
}

var _ repository.LocalCache = (*cache)(nil)

// Params holds dependencies for the local cache, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens (or creates) the cache database and ties its shutdown to the fx
// lifecycle.
func New(params Params) (repository.LocalCache, error) {
	c, err := Open(params.Config.LocalCache.Path, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing local cache")

			return c.Close()
		},
	})

	return c, nil
}

// Open opens the cache at the given path, creating directories and schema as
// needed. Exported separately from New so tests can use a temp file without
// an fx lifecycle.
func Open(path string, logger *slog.Logger) (repository.LocalCache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create cache directory")
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open local cache")
	}

	if err := conn.Ping(); err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to ping local cache")
	}

	// WAL keeps reads cheap while a write is in flight.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to set WAL mode")
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to create cache schema")
	}

	return &cache{conn: conn, logger: logger}, nil
}

func (c *cache) Close() error {
	return errors.WithStack(c.conn.Close())
}

func (c *cache) SaveUser(ctx context.Context, profile *entity.UserProfile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.putJSON(ctx, keyCurrentUser, profile)
}

func (c *cache) GetUser(ctx context.Context) (*entity.UserProfile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.getUserLocked(ctx)
}

func (c *cache) UpdateUser(ctx context.Context, delta *entity.ProfileDelta) (*entity.UserProfile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	profile, err := c.getUserLocked(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("no cached user to update")
	}

	delta.ApplyTo(profile)
	if err := c.putJSON(ctx, keyCurrentUser, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (c *cache) SavePendingWrite(ctx context.Context, delta *entity.ProfileDelta) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Fold into any existing envelope: at most one outstanding pending
	// write exists, merged field-level last-write-wins.
	envelope := &entity.ProfileDelta{}
	if err := c.getJSON(ctx, keyPendingUpdate, envelope); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		envelope = &entity.ProfileDelta{}
	}
	envelope.MergeFrom(delta)

	return c.putJSON(ctx, keyPendingUpdate, envelope)
}

func (c *cache) GetPendingWrite(ctx context.Context) (*entity.ProfileDelta, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	envelope := &entity.ProfileDelta{}
	if err := c.getJSON(ctx, keyPendingUpdate, envelope); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return envelope, nil
}

func (c *cache) ClearPendingWrite(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.conn.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, keyPendingUpdate)

	return errors.Wrap(err, "failed to clear pending write")
}

func (c *cache) getUserLocked(ctx context.Context) (*entity.UserProfile, error) {
	profile := &entity.UserProfile{}
	if err := c.getJSON(ctx, keyCurrentUser, profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return profile, nil
}

func (c *cache) putJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to encode cache value")
	}

	_, err = c.conn.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)

	return errors.Wrapf(err, "failed to store %s", key)
}

func (c *cache) getJSON(ctx context.Context, key string, out any) error {
	var raw string
	if err := c.conn.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw); err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrapf(json.Unmarshal([]byte(raw), out), "failed to decode %s", key)
}
