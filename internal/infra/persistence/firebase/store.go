// Package firebase adapts the Firebase Realtime Database client to the
// DocumentStore port. Get/Set/Push/Delete map onto read/write/append/delete
// and database transactions back the compare-and-swap primitive.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"

	"dogber/config"
	"dogber/internal/domain/repository"
	"dogber/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

type store struct {
	client *db.Client
}

// New connects to the configured Realtime Database and returns it as a
// DocumentStore.
func New(ctx context.Context, cfg *config.Config) (repository.DocumentStore, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	app, err := firebase.NewApp(ctx,
		&firebase.Config{
			ProjectID:   cfg.Firebase.ProjectID,
			DatabaseURL: cfg.Firebase.DatabaseURL,
		},
		option.WithCredentialsFile(cfg.Firebase.CredentialsPath),
	)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get database client")
	}

	return &store{client: client}, nil
}

func (s *store) Read(ctx context.Context, path string, dest any) (bool, error) {
	var raw json.RawMessage
	if err := s.client.NewRef(path).Get(ctx, &raw); err != nil {
		return false, errors.Wrapf(err, "get %s", path)
	}
	if isNull(raw) {
		return false, nil
	}

	return true, errors.Wrapf(json.Unmarshal(raw, dest), "decode %s", path)
}

func (s *store) Write(ctx context.Context, path string, value any) error {
	return errors.Wrapf(s.client.NewRef(path).Set(ctx, value), "set %s", path)
}

func (s *store) Append(ctx context.Context, path string, value any) (string, error) {
	ref, err := s.client.NewRef(path).Push(ctx, value)
	if err != nil {
		return "", errors.Wrapf(err, "push %s", path)
	}

	return ref.Key, nil
}

func (s *store) Delete(ctx context.Context, path string) error {
	return errors.Wrapf(s.client.NewRef(path).Delete(ctx), "delete %s", path)
}

func (s *store) Swap(ctx context.Context, path string, fn repository.SwapFunc) error {
	err := s.client.NewRef(path).Transaction(ctx, func(node db.TransactionNode) (any, error) {
		var raw json.RawMessage
		if err := node.Unmarshal(&raw); err != nil {
			return nil, errors.Wrapf(err, "decode current value at %s", path)
		}

		current := func(dest any) (bool, error) {
			if isNull(raw) {
				return false, nil
			}

			return true, errors.Wrapf(json.Unmarshal(raw, dest), "decode %s", path)
		}

		return fn(current)
	})

	return errors.Wrapf(err, "transaction %s", path)
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
