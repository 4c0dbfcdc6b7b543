package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/ir-khan/inventory-management-system/internal/domain/entity"
	"github.com/ir-khan/inventory-management-system/internal/domain/repository"

	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeLocalCache is an in-memory LocalCache with the real merge semantics.
// The sqlite-backed implementation has its own tests; here we only need the
// contract.
type fakeLocalCache struct {
	mu      sync.Mutex
	user    *entity.UserProfile
	pending *entity.ProfileDelta
}

func newFakeLocalCache() *fakeLocalCache {
	return &fakeLocalCache{}
}

func (c *fakeLocalCache) SaveUser(_ context.Context, profile *entity.UserProfile) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = profile.Clone()

	return nil
}

func (c *fakeLocalCache) GetUser(_ context.Context) (*entity.UserProfile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.user.Clone(), nil
}

func (c *fakeLocalCache) UpdateUser(_ context.Context, delta *entity.ProfileDelta) (*entity.UserProfile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil, errors.New("no cached user")
	}
	delta.ApplyTo(c.user)

	return c.user.Clone(), nil
}

func (c *fakeLocalCache) SavePendingWrite(_ context.Context, delta *entity.ProfileDelta) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		c.pending = &entity.ProfileDelta{}
	}
	c.pending.MergeFrom(delta)

	return nil
}

func (c *fakeLocalCache) GetPendingWrite(_ context.Context) (*entity.ProfileDelta, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return nil, nil
	}
	copied := *c.pending

	return &copied, nil
}

func (c *fakeLocalCache) ClearPendingWrite(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil

	return nil
}

func (c *fakeLocalCache) Close() error {
	return nil
}

var _ repository.LocalCache = (*fakeLocalCache)(nil)

// fakeMonitor is a hand-driven ConnectivityMonitor. Tests flip the state and
// fire the offline-to-online edge themselves.
type fakeMonitor struct {
	mu     sync.Mutex
	online bool
	subs   map[int]func()
	nextID int
}

func newFakeMonitor(online bool) *fakeMonitor {
	return &fakeMonitor{online: online, subs: make(map[int]func())}
}

func (m *fakeMonitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.online
}

func (m *fakeMonitor) OnOnline(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func (m *fakeMonitor) Close() error {
	return nil
}

// goOnline flips the state and fires registered callbacks, mimicking the
// edge-triggered recovery notification.
func (m *fakeMonitor) goOnline() {
	m.mu.Lock()
	m.online = true
	fns := make([]func(), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (m *fakeMonitor) goOffline() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.online = false
}
