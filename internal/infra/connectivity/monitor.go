// Package connectivity implements the online/offline monitor by probing a
// lightweight HTTP endpoint on a fixed interval. Subscribers receive an
// edge-triggered callback on every offline→online transition, which is what
// drives the profile pending-write drain.
package connectivity

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ir-khan/inventory-management-system/config"
	"github.com/ir-khan/inventory-management-system/internal/domain/service"

	"go.uber.org/fx"
)

const probeTimeout = 3 * time.Second

// ProbeFunc reports whether the network currently looks reachable.
type ProbeFunc func(ctx context.Context) bool

type monitor struct {
	probe    ProbeFunc
	interval time.Duration
	logger   *slog.Logger

	online atomic.Bool

	mu          sync.Mutex
	subscribers map[int]func()
	nextID      int

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

var _ service.ConnectivityMonitor = (*monitor)(nil)

// Params holds dependencies for the monitor, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the HTTP-probe monitor and ties its shutdown to the fx
// lifecycle.
func New(params Params) service.ConnectivityMonitor {
	cfg := params.Config.Connectivity
	m := NewWithProbe(httpProbe(cfg.ProbeURL), cfg.ProbeInterval, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return m.Close()
		},
	})

	return m
}

// NewWithProbe builds a monitor around a custom probe. Exported so tests can
// flip connectivity deterministically.
func NewWithProbe(probe ProbeFunc, interval time.Duration, logger *slog.Logger) service.ConnectivityMonitor {
	m := &monitor{
		probe:       probe,
		interval:    interval,
		logger:      logger,
		subscribers: make(map[int]func()),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	// Seed the state before the first tick so IsOnline is meaningful
	// immediately after construction.
	m.online.Store(m.runProbe())

	go m.loop()

	return m
}

func (m *monitor) IsOnline() bool {
	return m.online.Load()
}

func (m *monitor) OnOnline(fn func()) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
		})
	}
}

func (m *monitor) Close() error {
	m.stopOnce.Do(func() { close(m.stop) })
	<-m.done

	return nil
}

func (m *monitor) loop() {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.tick()
		}
	}
}

func (m *monitor) tick() {
	now := m.runProbe()
	was := m.online.Swap(now)

	// Edge-triggered: only the offline→online flip notifies.
	if now && !was {
		m.logger.Info("Connectivity restored")
		m.notify()
	}
	if !now && was {
		m.logger.Warn("Connectivity lost")
	}
}

func (m *monitor) notify() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (m *monitor) runProbe() bool {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	return m.probe(ctx)
}

// httpProbe treats any completed HTTP exchange as "online"; only transport
// errors count as offline.
func httpProbe(url string) ProbeFunc {
	client := &http.Client{Timeout: probeTimeout}

	return func(ctx context.Context) bool {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
		if err != nil {
			return false
		}

		resp, err := client.Do(req)
		if err != nil {
			return false
		}
		resp.Body.Close()

		return true
	}
}
