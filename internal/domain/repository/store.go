// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
)

// DecodeFunc unmarshals the current value at a path into dest. It reports
// false when no value exists at the path.
type DecodeFunc func(dest any) (bool, error)

// SwapFunc computes the replacement value for a compare-and-swap write. It is
// handed a decoder for the current value and returns the value to store, or an
// error to abort the swap. The store may invoke it more than once on
// contention.
type SwapFunc func(current DecodeFunc) (any, error)

// DocumentStore is the hierarchical document-store collaborator, addressed by
// slash-delimited paths. Read reports false when nothing exists at the path,
// which is a valid outcome, not an error.
type DocumentStore interface {
	Read(ctx context.Context, path string, dest any) (bool, error)
	Write(ctx context.Context, path string, value any) error
	Append(ctx context.Context, path string, value any) (string, error)
	Delete(ctx context.Context, path string) error

	// Swap atomically replaces the value at path using fn, closing the
	// read-modify-write race window on status and counter fields.
	Swap(ctx context.Context, path string, fn SwapFunc) error
}
