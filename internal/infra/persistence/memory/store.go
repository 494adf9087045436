// Package memory provides an in-memory DocumentStore used by tests and local
// development. It mirrors the hierarchical path semantics of the remote store.
package memory

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"dogber/internal/domain/repository"
	"dogber/internal/errors"

	"github.com/google/uuid"
)

// Store is a mutex-guarded document tree addressed by slash-delimited paths.
type Store struct {
	mu   sync.Mutex
	root map[string]any
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{root: make(map[string]any)}
}

var _ repository.DocumentStore = (*Store)(nil)

// Read unmarshals the subtree at path into dest, reporting false when nothing
// exists there.
func (s *Store) Read(_ context.Context, path string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.lookup(path)
	if !ok {
		return false, nil
	}

	return true, decode(node, dest)
}

// Write replaces the subtree at path with value.
func (s *Store) Write(_ context.Context, path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set(path, value)
}

// Append stores value under a generated key below path and returns the key.
func (s *Store) Append(_ context.Context, path string, value any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := uuid.NewString()
	if err := s.set(path+"/"+key, value); err != nil {
		return "", err
	}

	return key, nil
}

// Delete removes the subtree at path. Deleting a missing path is a no-op.
func (s *Store) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	segments := split(path)
	if len(segments) == 0 {
		s.root = make(map[string]any)

		return nil
	}

	parent := s.root
	for _, segment := range segments[:len(segments)-1] {
		child, ok := parent[segment].(map[string]any)
		if !ok {
			return nil
		}
		parent = child
	}
	delete(parent, segments[len(segments)-1])

	return nil
}

// Swap atomically replaces the value at path using fn. The whole store is
// locked for the duration, which is the in-memory analog of a storage-side
// transaction.
func (s *Store) Swap(_ context.Context, path string, fn repository.SwapFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := func(dest any) (bool, error) {
		node, ok := s.lookup(path)
		if !ok {
			return false, nil
		}

		return true, decode(node, dest)
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	return s.set(path, next)
}

func (s *Store) lookup(path string) (any, bool) {
	var node any = s.root
	for _, segment := range split(path) {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = m[segment]
		if !ok {
			return nil, false
		}
	}

	return node, true
}

func (s *Store) set(path string, value any) error {
	normalized, err := normalize(value)
	if err != nil {
		return err
	}

	segments := split(path)
	if len(segments) == 0 {
		m, ok := normalized.(map[string]any)
		if !ok {
			return errors.New("cannot replace the store root with a non-object value")
		}
		s.root = m

		return nil
	}

	parent := s.root
	for _, segment := range segments[:len(segments)-1] {
		child, ok := parent[segment].(map[string]any)
		if !ok {
			child = make(map[string]any)
			parent[segment] = child
		}
		parent = child
	}
	parent[segments[len(segments)-1]] = normalized

	return nil
}

// normalize round-trips the value through JSON so the tree only ever holds the
// generic shapes the remote store would return.
func normalize(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "marshal value")
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, errors.Wrap(err, "unmarshal value")
	}

	return generic, nil
}

func decode(node, dest any) error {
	raw, err := json.Marshal(node)
	if err != nil {
		return errors.Wrap(err, "marshal node")
	}

	return errors.Wrap(json.Unmarshal(raw, dest), "unmarshal node")
}

func split(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "/")
}
