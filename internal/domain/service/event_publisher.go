package service

import (
	"context"
)

// WalkEvent is published after a walk lifecycle transition has been persisted.
// Publishing is best-effort: a failed publish never rolls back the status
// write.
type WalkEvent struct {
	Type    string  `json:"type"` // walk.created, walk.accepted, walk.rejected, walk.cancelled, walk.completed
	WalkID  string  `json:"walk_id"`
	ActorID string  `json:"actor_id"`
	OwnerID string  `json:"owner_id"`
	Walker  string  `json:"walker_id"`
	Status  int     `json:"status"`
	Note    *string `json:"note,omitempty"`
}

// Walk event types.
const (
	WalkEventCreated   = "walk.created"
	WalkEventAccepted  = "walk.accepted"
	WalkEventRejected  = "walk.rejected"
	WalkEventCancelled = "walk.cancelled"
	WalkEventCompleted = "walk.completed"
)

// EventPublisher defines the interface for publishing walk lifecycle events to
// a message queue.
type EventPublisher interface {
	// PublishWalkEvent publishes a walk lifecycle event for async consumers.
	PublishWalkEvent(ctx context.Context, event *WalkEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
