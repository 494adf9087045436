package repository

import (
	"context"

	"dogber/internal/domain/entity"
)

// WalkRepository mediates access to the shared walks/{id} documents and the
// per-user back-reference lists under users/{uid}/walks.
type WalkRepository interface {
	// Create persists a new walk and returns its generated id.
	Create(ctx context.Context, walk *entity.Walk) (string, error)

	// Find retrieves a walk by id, with the id merged into the returned
	// entity. Returns (nil, nil) when the id does not exist.
	Find(ctx context.Context, walkID string) (*entity.Walk, error)

	// Transition performs a compare-and-swap of the status field: the write
	// only happens when the current status is one of from. A mismatch fails
	// with the walk-status-conflict error.
	Transition(ctx context.Context, walkID string, from []entity.WalkStatus, to entity.WalkStatus) error

	// AppendHistory appends one human-readable event string to the walk's log.
	AppendHistory(ctx context.Context, walkID, entry string) error

	// AppendNote appends a note entry; nil entries are preserved.
	AppendNote(ctx context.Context, walkID string, note *string) error

	// AddUserRef appends a back-reference to the walk under the user's record.
	AddUserRef(ctx context.Context, userID, walkID string) error

	// ListUserRefs returns the walk ids referenced under the user's record.
	ListUserRefs(ctx context.Context, userID string) ([]string, error)
}
