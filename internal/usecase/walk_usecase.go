package usecase

import (
	"context"
	"time"

	"dogber/internal/domain/entity"
)

// CreateWalkInput carries everything needed to open a walk request.
type CreateWalkInput struct {
	WalkerID string
	OwnerID  string
	DogIDs   []string
	Start    time.Time
	End      time.Time
	Location entity.GeoPoint
	Notes    *string
}

// WalkUsecase is the walk-request lifecycle state machine: create, accept,
// reject, cancel, complete, plus the read side that resolves per-user
// back-references.
type WalkUsecase interface {
	// Create validates the input, persists a PENDING walk, appends a
	// back-reference under both parties and notifies the walker. Returns the
	// generated walk id.
	Create(ctx context.Context, input *CreateWalkInput) (string, error)

	// Accept moves PENDING to ACTIVE. The owner cannot accept their own walk.
	Accept(ctx context.Context, accepterID, walkID string, notes *string) error

	// Reject moves PENDING to REJECTED. The owner cannot reject their own
	// walk; owners cancel instead.
	Reject(ctx context.Context, rejecterID, walkID string, notes *string) error

	// Cancel moves PENDING or ACTIVE to CANCELLED.
	Cancel(ctx context.Context, cancelerID, walkID string, notes *string) error

	// Complete moves ACTIVE to COMPLETE and notifies the counter-party of the
	// completer.
	Complete(ctx context.Context, completerID, walkID string, notes *string) error

	// GetWalkByKey returns the walk, or (nil, nil) when the id is unknown.
	// An empty id is a validation error, not a not-found result.
	GetWalkByKey(ctx context.Context, walkID string) (*entity.Walk, error)

	// GetAllWalks resolves the user's back-references to full walk documents.
	GetAllWalks(ctx context.Context, userID string) ([]*entity.Walk, error)

	// GetAllWalkKeys returns the raw walk ids referenced by the user.
	GetAllWalkKeys(ctx context.Context, userID string) ([]string, error)
}
