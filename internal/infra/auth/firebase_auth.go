// Package auth adapts Firebase Authentication to the AuthService port. The
// provider keeps full ownership of sign-in, sign-up and session persistence;
// this layer only verifies tokens and reads identity hints.
package auth

import (
	"context"

	"dogber/config"
	"dogber/internal/domain/service"
	"dogber/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type firebaseAuthService struct {
	client *firebaseauth.Client
}

// NewFirebaseAuthService connects to Firebase Authentication.
func NewFirebaseAuthService(ctx context.Context, cfg *config.Config) (service.AuthService, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: cfg.Firebase.ProjectID},
		option.WithCredentialsFile(cfg.Firebase.CredentialsPath),
	)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get auth client")
	}

	return &firebaseAuthService{client: client}, nil
}

func (s *firebaseAuthService) VerifyToken(ctx context.Context, token string) (string, error) {
	decoded, err := s.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", errors.Wrap(err, "verify id token")
	}

	return decoded.UID, nil
}

func (s *firebaseAuthService) ProfileHints(ctx context.Context, uid string) (*service.ProfileHints, error) {
	record, err := s.client.GetUser(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "get user record")
	}

	return &service.ProfileHints{
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		PhotoURL:      record.PhotoURL,
		EmailVerified: record.EmailVerified,
	}, nil
}

func (s *firebaseAuthService) DeleteAccount(ctx context.Context, uid string) error {
	return errors.Wrap(s.client.DeleteUser(ctx, uid), "delete auth user")
}
