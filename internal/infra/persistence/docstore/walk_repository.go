package docstore

import (
	"context"

	"dogber/internal/domain/entity"
	domainerrors "dogber/internal/domain/errors"
	"dogber/internal/domain/repository"
	"dogber/internal/errors"
)

type walkRepository struct {
	store repository.DocumentStore
}

// NewWalkRepository creates a walk repository over the document store.
func NewWalkRepository(store repository.DocumentStore) repository.WalkRepository {
	return &walkRepository{store: store}
}

func (r *walkRepository) Create(ctx context.Context, walk *entity.Walk) (string, error) {
	id, err := r.store.Append(ctx, walksRoot, walk)
	if err != nil {
		return "", errors.Wrap(err, "append walk")
	}

	return id, nil
}

func (r *walkRepository) Find(ctx context.Context, walkID string) (*entity.Walk, error) {
	var walk entity.Walk
	found, err := r.store.Read(ctx, walkPath(walkID), &walk)
	if err != nil {
		return nil, errors.Wrap(err, "read walk")
	}
	if !found {
		return nil, nil
	}
	walk.ID = walkID

	return &walk, nil
}

// Transition compare-and-swaps the status field. The swap callback re-checks
// the stored status so a concurrent transition loses cleanly instead of being
// overwritten last-write-wins.
func (r *walkRepository) Transition(ctx context.Context, walkID string, from []entity.WalkStatus, to entity.WalkStatus) error {
	err := r.store.Swap(ctx, walkFieldPath(walkID, "status"), func(current repository.DecodeFunc) (any, error) {
		var status entity.WalkStatus
		found, err := current(&status)
		if err != nil {
			return nil, errors.Wrap(err, "decode walk status")
		}
		if !found {
			return nil, domainerrors.ErrWalkStatusConflict.WithDetails("walk status missing")
		}
		for _, allowed := range from {
			if status == allowed {
				return to, nil
			}
		}

		return nil, domainerrors.ErrWalkStatusConflict.WithDetails(
			"walk is " + status.String() + ", not " + statusList(from))
	})

	return errors.Wrap(err, "transition walk status")
}

func statusList(statuses []entity.WalkStatus) string {
	out := ""
	for i, s := range statuses {
		if i > 0 {
			out += " or "
		}
		out += s.String()
	}

	return out
}

func (r *walkRepository) AppendHistory(ctx context.Context, walkID, entry string) error {
	err := r.store.Swap(ctx, walkFieldPath(walkID, "history"), func(current repository.DecodeFunc) (any, error) {
		var history []string
		if _, err := current(&history); err != nil {
			return nil, errors.Wrap(err, "decode walk history")
		}

		return append(history, entry), nil
	})

	return errors.Wrap(err, "append walk history")
}

func (r *walkRepository) AppendNote(ctx context.Context, walkID string, note *string) error {
	err := r.store.Swap(ctx, walkFieldPath(walkID, "notes"), func(current repository.DecodeFunc) (any, error) {
		var notes []*string
		if _, err := current(&notes); err != nil {
			return nil, errors.Wrap(err, "decode walk notes")
		}

		return append(notes, note), nil
	})

	return errors.Wrap(err, "append walk note")
}

func (r *walkRepository) AddUserRef(ctx context.Context, userID, walkID string) error {
	_, err := r.store.Append(ctx, userWalkRefsPath(userID), walkID)

	return errors.Wrap(err, "append walk back-reference")
}

func (r *walkRepository) ListUserRefs(ctx context.Context, userID string) ([]string, error) {
	refs := make(map[string]string)
	if _, err := r.store.Read(ctx, userWalkRefsPath(userID), &refs); err != nil {
		return nil, errors.Wrap(err, "read walk back-references")
	}

	ids := make([]string, 0, len(refs))
	for _, id := range refs {
		ids = append(ids, id)
	}

	return ids, nil
}
