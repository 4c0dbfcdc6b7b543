// Package service defines contracts for external collaborators the engines
// depend on: identity, connectivity, and event publishing.
package service

import "context"

// Session is the verified identity a caller presents to every engine
// operation. Engines never cache a "current user" internally; the session is
// explicit input on each call so the engines stay instantiable per test.
type Session struct {
	UID   string // Stable account id, the key of every owned record.
	Email string // Informational; not used for authorization.
}

// AuthService verifies caller identity. It treats tokens as a cached,
// possibly-stale read and does not manage refresh itself.
type AuthService interface {
	// VerifySession validates an ID token and returns the session it proves.
	VerifySession(ctx context.Context, idToken string) (*Session, error)
}
