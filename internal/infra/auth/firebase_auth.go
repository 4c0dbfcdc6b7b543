// Package auth adapts Firebase Authentication to the domain AuthService
// contract. The mobile clients sign in against the same Firebase project;
// this side only verifies the ID tokens they present.
package auth

import (
	"context"

	domainerrors "github.com/ir-khan/inventory-management-system/internal/domain/errors"
	"github.com/ir-khan/inventory-management-system/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type firebaseAuthService struct {
	client *firebaseauth.Client
}

var _ service.AuthService = (*firebaseAuthService)(nil)

// NewFirebaseAuthService creates the Firebase-backed identity verifier.
func NewFirebaseAuthService(ctx context.Context, app *firebase.App) (service.AuthService, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseAuthService{client: client}, nil
}

func (s *firebaseAuthService) VerifySession(ctx context.Context, idToken string) (*service.Session, error) {
	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid ID token")
	}

	session := &service.Session{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		session.Email = email
	}

	return session, nil
}
