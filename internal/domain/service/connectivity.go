package service

// ConnectivityMonitor observes online/offline transitions. IsOnline is a
// cheap poll used to decide between a direct remote write and stashing a
// pending envelope; OnOnline delivers the edge-triggered offline→online
// event that drives the profile drain.
type ConnectivityMonitor interface {
	// IsOnline reports the most recently observed connectivity state.
	IsOnline() bool

	// OnOnline registers fn to run on every offline→online transition.
	// The returned cancel func removes the registration; it is idempotent.
	OnOnline(fn func()) func()

	// Close stops the monitor. Registered callbacks fire no more.
	Close() error
}
