package impl

import (
	"context"
	"fmt"
	"log/slog"

	"dogber/internal/domain/entity"
	domainerrors "dogber/internal/domain/errors"
	"dogber/internal/domain/guard"
	"dogber/internal/domain/repository"
	"dogber/internal/domain/service"
	"dogber/internal/errors"
	"dogber/internal/usecase"
)

// History log lines, appended after the matching status write succeeds. The
// created line carries both parties' display names.
const (
	historyCreatedFormat = "Walk created by %s for %s"
	historyAccepted      = "Walk accepted"
	historyRejected      = "Walk rejected"
	historyCancelled     = "Walk cancelled"
	historyCompleted     = "Walk completed"
)

type walkService struct {
	walkRepo       repository.WalkRepository
	profileRepo    repository.ProfileRepository
	notificationUC usecase.NotificationUsecase
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// NewWalkService creates a new walk service instance
func NewWalkService(
	walkRepo repository.WalkRepository,
	profileRepo repository.ProfileRepository,
	notificationUC usecase.NotificationUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.WalkUsecase {
	return &walkService{
		walkRepo:       walkRepo,
		profileRepo:    profileRepo,
		notificationUC: notificationUC,
		publisher:      publisher,
		logger:         logger,
	}
}

func (s *walkService) Create(ctx context.Context, input *usecase.CreateWalkInput) (string, error) {
	if input == nil {
		return "", domainerrors.NewValidationError("walk cannot be empty")
	}
	if err := guard.NonEmptyString(input.WalkerID, "walker id"); err != nil {
		return "", err
	}
	if err := guard.NonEmptyString(input.OwnerID, "owner id"); err != nil {
		return "", err
	}
	if err := guard.NonEmptyStrings(input.DogIDs, "dogs"); err != nil {
		return "", err
	}
	if err := guard.ValidTime(input.Start, "start"); err != nil {
		return "", err
	}
	if err := guard.ValidTime(input.End, "end"); err != nil {
		return "", err
	}
	if !input.End.After(input.Start) {
		return "", domainerrors.NewValidationError("end must be after start")
	}
	if err := guard.FiniteNumber(input.Location.Lat(), "location latitude"); err != nil {
		return "", err
	}
	if err := guard.FiniteNumber(input.Location.Lng(), "location longitude"); err != nil {
		return "", err
	}
	if err := guard.OptionalNonEmptyString(input.Notes, "notes"); err != nil {
		return "", err
	}

	// The history log is human-readable, so resolve both parties' display
	// names before writing anything.
	ownerName, err := s.partyName(ctx, input.OwnerID)
	if err != nil {
		return "", err
	}
	walkerName, err := s.partyName(ctx, input.WalkerID)
	if err != nil {
		return "", err
	}

	walk := &entity.Walk{
		Walker:   input.WalkerID,
		Owner:    input.OwnerID,
		Dogs:     input.DogIDs,
		Start:    input.Start.UnixMilli(),
		End:      input.End.UnixMilli(),
		Location: input.Location,
		Status:   entity.WalkStatusPending,
		History:  []string{fmt.Sprintf(historyCreatedFormat, ownerName, walkerName)},
	}
	if input.Notes != nil {
		walk.Notes = []*string{input.Notes}
	}

	walkID, err := s.walkRepo.Create(ctx, walk)
	if err != nil {
		return "", errors.Wrap(err, "create walk")
	}

	// Back-references let each party list their walks without scanning the
	// shared collection.
	if err := s.walkRepo.AddUserRef(ctx, input.OwnerID, walkID); err != nil {
		return "", errors.Wrap(err, "reference walk for owner")
	}
	if err := s.walkRepo.AddUserRef(ctx, input.WalkerID, walkID); err != nil {
		return "", errors.Wrap(err, "reference walk for walker")
	}

	s.notify(ctx, input.WalkerID, "Walk requested", "You have a new walk request", walkID)
	s.publish(ctx, &service.WalkEvent{
		Type:    service.WalkEventCreated,
		WalkID:  walkID,
		ActorID: input.OwnerID,
		OwnerID: input.OwnerID,
		Walker:  input.WalkerID,
		Status:  int(entity.WalkStatusPending),
		Note:    input.Notes,
	})

	return walkID, nil
}

func (s *walkService) Accept(ctx context.Context, accepterID, walkID string, notes *string) error {
	walk, err := s.loadForTransition(ctx, accepterID, walkID, notes)
	if err != nil {
		return err
	}
	if walk.Owner == accepterID {
		return domainerrors.ErrOwnerCannotAcceptOwnWalk
	}

	if err := s.walkRepo.Transition(ctx, walkID,
		[]entity.WalkStatus{entity.WalkStatusPending}, entity.WalkStatusActive); err != nil {
		return err
	}

	s.notify(ctx, walk.Owner, "Walk accepted", "Your walk request has been accepted", walk.ID)

	return s.finishTransition(ctx, walk, accepterID, notes,
		historyAccepted, service.WalkEventAccepted, entity.WalkStatusActive)
}

func (s *walkService) Reject(ctx context.Context, rejecterID, walkID string, notes *string) error {
	walk, err := s.loadForTransition(ctx, rejecterID, walkID, notes)
	if err != nil {
		return err
	}
	if walk.Owner == rejecterID {
		return domainerrors.ErrOwnerCannotRejectOwnWalk
	}

	if err := s.walkRepo.Transition(ctx, walkID,
		[]entity.WalkStatus{entity.WalkStatusPending}, entity.WalkStatusRejected); err != nil {
		return err
	}

	s.notify(ctx, walk.Owner, "Walk rejected", "Your walk request has been rejected", walk.ID)

	return s.finishTransition(ctx, walk, rejecterID, notes,
		historyRejected, service.WalkEventRejected, entity.WalkStatusRejected)
}

// Cancel is open to either party, from both the pending and the active state.
func (s *walkService) Cancel(ctx context.Context, cancelerID, walkID string, notes *string) error {
	walk, err := s.loadForTransition(ctx, cancelerID, walkID, notes)
	if err != nil {
		return err
	}

	if err := s.walkRepo.Transition(ctx, walkID,
		[]entity.WalkStatus{entity.WalkStatusPending, entity.WalkStatusActive},
		entity.WalkStatusCancelled); err != nil {
		return err
	}

	s.notify(ctx, walk.Counterparty(cancelerID), "Walk cancelled", "Your walk has been cancelled", walk.ID)

	return s.finishTransition(ctx, walk, cancelerID, notes,
		historyCancelled, service.WalkEventCancelled, entity.WalkStatusCancelled)
}

func (s *walkService) Complete(ctx context.Context, completerID, walkID string, notes *string) error {
	walk, err := s.loadForTransition(ctx, completerID, walkID, notes)
	if err != nil {
		return err
	}

	if err := s.walkRepo.Transition(ctx, walkID,
		[]entity.WalkStatus{entity.WalkStatusActive}, entity.WalkStatusComplete); err != nil {
		return err
	}

	// Tell the other party the walk is done.
	s.notify(ctx, walk.Counterparty(completerID), "Walk completed", "Your walk has been completed", walkID)

	return s.finishTransition(ctx, walk, completerID, notes,
		historyCompleted, service.WalkEventCompleted, entity.WalkStatusComplete)
}

func (s *walkService) GetWalkByKey(ctx context.Context, walkID string) (*entity.Walk, error) {
	if err := guard.NonEmptyString(walkID, "walk id"); err != nil {
		return nil, err
	}

	return s.walkRepo.Find(ctx, walkID)
}

// GetAllWalks resolves the user's back-references. Dangling references are
// skipped rather than surfaced as errors.
func (s *walkService) GetAllWalks(ctx context.Context, userID string) ([]*entity.Walk, error) {
	keys, err := s.GetAllWalkKeys(ctx, userID)
	if err != nil {
		return nil, err
	}

	walks := make([]*entity.Walk, 0, len(keys))
	for _, key := range keys {
		walk, err := s.walkRepo.Find(ctx, key)
		if err != nil {
			return nil, errors.Wrapf(err, "find walk %s", key)
		}
		if walk == nil {
			continue
		}
		walks = append(walks, walk)
	}

	return walks, nil
}

func (s *walkService) GetAllWalkKeys(ctx context.Context, userID string) ([]string, error) {
	if err := guard.NonEmptyString(userID, "user id"); err != nil {
		return nil, err
	}

	return s.walkRepo.ListUserRefs(ctx, userID)
}

// partyName resolves a user's display name for the history log, falling back
// to the email and finally the raw id when the profile is incomplete.
func (s *walkService) partyName(ctx context.Context, userID string) (string, error) {
	profile, err := s.profileRepo.Find(ctx, userID)
	if err != nil {
		return "", errors.Wrapf(err, "find profile %s", userID)
	}
	if profile == nil {
		return userID, nil
	}
	if profile.Name != "" {
		return profile.Name, nil
	}
	if profile.Email != "" {
		return profile.Email, nil
	}

	return userID, nil
}

// loadForTransition runs the shared validation of every lifecycle transition
// and loads the walk document for the role checks.
func (s *walkService) loadForTransition(ctx context.Context, actorID, walkID string, notes *string) (*entity.Walk, error) {
	if err := guard.NonEmptyString(actorID, "user id"); err != nil {
		return nil, err
	}
	if err := guard.NonEmptyString(walkID, "walk id"); err != nil {
		return nil, err
	}
	if err := guard.OptionalNonEmptyString(notes, "notes"); err != nil {
		return nil, err
	}

	walk, err := s.walkRepo.Find(ctx, walkID)
	if err != nil {
		return nil, errors.Wrap(err, "find walk")
	}
	if walk == nil {
		return nil, domainerrors.ErrWalkStatusConflict.WithDetails("walk does not exist")
	}

	return walk, nil
}

// finishTransition appends the history line and optional note, then publishes
// the lifecycle event. The status write has already happened at this point.
func (s *walkService) finishTransition(
	ctx context.Context,
	walk *entity.Walk,
	actorID string,
	notes *string,
	historyEntry, eventType string,
	status entity.WalkStatus,
) error {
	if err := s.walkRepo.AppendHistory(ctx, walk.ID, historyEntry); err != nil {
		return errors.Wrap(err, "append history")
	}
	if notes != nil {
		if err := s.walkRepo.AppendNote(ctx, walk.ID, notes); err != nil {
			return errors.Wrap(err, "append note")
		}
	}

	s.publish(ctx, &service.WalkEvent{
		Type:    eventType,
		WalkID:  walk.ID,
		ActorID: actorID,
		OwnerID: walk.Owner,
		Walker:  walk.Walker,
		Status:  int(status),
		Note:    notes,
	})

	return nil
}

// notify is best-effort: a failed notification never fails the walk write.
func (s *walkService) notify(ctx context.Context, targetID, title, message, walkID string) {
	actionType := "walk"
	if _, err := s.notificationUC.Create(ctx, targetID, title, message, &actionType, &walkID); err != nil {
		s.logger.WarnContext(ctx, "walk notification failed",
			slog.String("target", targetID),
			slog.String("walk", walkID),
			slog.Any("error", err))
	}
}

// publish is best-effort as well; consumers are informational.
func (s *walkService) publish(ctx context.Context, event *service.WalkEvent) {
	if err := s.publisher.PublishWalkEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "walk event publish failed",
			slog.String("type", event.Type),
			slog.String("walk", event.WalkID),
			slog.Any("error", err))
	}
}
