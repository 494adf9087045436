// Package service defines ports to external collaborators consumed by the
// use-case layer.
package service

import (
	"context"
)

// ProfileHints is the identity information the auth provider exposes about an
// account, used to seed a fresh profile document.
type ProfileHints struct {
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
}

// AuthService is the authentication collaborator. Sign-in, sign-up and session
// persistence live entirely on the provider side; this layer only resolves the
// current actor and seeds new profiles.
type AuthService interface {
	// VerifyToken validates a provider-issued identity token and returns the
	// uid of the actor it belongs to.
	VerifyToken(ctx context.Context, token string) (string, error)

	// ProfileHints returns the provider-side identity hints for a uid.
	ProfileHints(ctx context.Context, uid string) (*ProfileHints, error)

	// DeleteAccount removes the account on the provider side.
	DeleteAccount(ctx context.Context, uid string) error
}
