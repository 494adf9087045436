package impl

import (
	"context"
	"testing"
	"time"

	"dogber/internal/domain/entity"
	domainerrors "dogber/internal/domain/errors"
	"dogber/internal/domain/service"
	"dogber/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkInput() *usecase.CreateWalkInput {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	return &usecase.CreateWalkInput{
		WalkerID: "walker",
		OwnerID:  "owner",
		DogIDs:   []string{"dog-1"},
		Start:    start,
		End:      start.Add(time.Hour),
		Location: entity.NewGeoPoint(52.370, 4.895),
	}
}

func createWalk(t *testing.T, stack *testStack) string {
	t.Helper()
	ctx := context.Background()

	// Named profiles so the history log resolves display names.
	require.NoError(t, stack.profileRepo.Create(ctx, "owner", &entity.Profile{Name: "Ana"}))
	require.NoError(t, stack.profileRepo.Create(ctx, "walker", &entity.Profile{Name: "Ben"}))

	walkID, err := stack.walkUC.Create(ctx, walkInput())
	require.NoError(t, err)
	require.NotEmpty(t, walkID)

	return walkID
}

func notificationTitles(t *testing.T, stack *testStack, userID string) []string {
	t.Helper()

	notifications, err := stack.notificationUC.GetNotifications(context.Background(), userID)
	require.NoError(t, err)

	titles := make([]string, 0, len(notifications))
	for _, n := range notifications {
		titles = append(titles, n.Title)
	}

	return titles
}

func assertStatus(t *testing.T, stack *testStack, walkID string, want entity.WalkStatus) {
	t.Helper()

	walk, err := stack.walkUC.GetWalkByKey(context.Background(), walkID)
	require.NoError(t, err)
	require.NotNil(t, walk)
	assert.Equal(t, want, walk.Status)
}

func TestWalkService_Create_StartsPendingWithBackRefs(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	walkID := createWalk(t, stack)

	walk, err := stack.walkUC.GetWalkByKey(ctx, walkID)
	require.NoError(t, err)
	require.NotNil(t, walk)
	assert.Equal(t, entity.WalkStatusPending, walk.Status)
	assert.Equal(t, "walker", walk.Walker)
	assert.Equal(t, "owner", walk.Owner)
	assert.Equal(t, []string{"Walk created by Ana for Ben"}, walk.History)
	assert.InDelta(t, 52.370, walk.Location.Lat(), 1e-9)
	assert.InDelta(t, 4.895, walk.Location.Lng(), 1e-9)

	// Both parties hold a back-reference to the shared document.
	for _, userID := range []string{"owner", "walker"} {
		keys, err := stack.walkUC.GetAllWalkKeys(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []string{walkID}, keys)
	}
}

func TestWalkService_Create_NotifiesWalkerAndPublishes(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	walkID := createWalk(t, stack)

	notifications, err := stack.notificationUC.GetNotifications(ctx, "walker")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	for _, n := range notifications {
		assert.Equal(t, "Walk requested", n.Title)
		require.NotNil(t, n.ActionLink)
		assert.Equal(t, walkID, *n.ActionLink)
	}

	events := stack.bus.Events()
	require.Len(t, events, 1)
	assert.Equal(t, service.WalkEventCreated, events[0].Type)
	assert.Equal(t, walkID, events[0].WalkID)
	assert.Equal(t, "owner", events[0].ActorID)
}

func TestWalkService_Create_Validation(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	input := walkInput()
	input.WalkerID = ""
	_, err := stack.walkUC.Create(ctx, input)
	require.Error(t, err)
	assert.EqualError(t, err, "walker id cannot be empty")

	input = walkInput()
	input.DogIDs = nil
	_, err = stack.walkUC.Create(ctx, input)
	require.Error(t, err)
	assert.EqualError(t, err, "dogs cannot be empty")

	input = walkInput()
	input.End = input.Start.Add(-time.Minute)
	_, err = stack.walkUC.Create(ctx, input)
	require.Error(t, err)
	assert.EqualError(t, err, "end must be after start")

	input = walkInput()
	input.Notes = strPtr("  ")
	_, err = stack.walkUC.Create(ctx, input)
	require.Error(t, err)
	assert.EqualError(t, err, "notes cannot be empty")
}

func TestWalkService_Create_HistoryFallsBackToIDs(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	// No profiles exist, so the raw ids stand in for display names.
	walkID, err := stack.walkUC.Create(ctx, walkInput())
	require.NoError(t, err)

	walk, err := stack.walkUC.GetWalkByKey(ctx, walkID)
	require.NoError(t, err)
	require.NotNil(t, walk)
	assert.Equal(t, []string{"Walk created by owner for walker"}, walk.History)
}

func TestWalkService_Accept_OwnerBlocked(t *testing.T) {
	stack := newTestStack(t)
	walkID := createWalk(t, stack)

	err := stack.walkUC.Accept(context.Background(), "owner", walkID, nil)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeOwnerCannotAcceptOwnWalk, appErr.ErrorCode())
	assertStatus(t, stack, walkID, entity.WalkStatusPending)
}

func TestWalkService_Accept_MovesToActive(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	walkID := createWalk(t, stack)

	require.NoError(t, stack.walkUC.Accept(ctx, "walker", walkID, strPtr("on my way")))

	walk, err := stack.walkUC.GetWalkByKey(ctx, walkID)
	require.NoError(t, err)
	assert.Equal(t, entity.WalkStatusActive, walk.Status)
	assert.Equal(t, []string{"Walk created by Ana for Ben", "Walk accepted"}, walk.History)
	require.Len(t, walk.Notes, 1)
	require.NotNil(t, walk.Notes[0])
	assert.Equal(t, "on my way", *walk.Notes[0])

	// The owner learns their request was taken.
	assert.Equal(t, []string{"Walk accepted"}, notificationTitles(t, stack, "owner"))

	events := stack.bus.Events()
	require.Len(t, events, 2)
	assert.Equal(t, service.WalkEventAccepted, events[1].Type)
	assert.Equal(t, "walker", events[1].ActorID)
}

func TestWalkService_Accept_TwiceConflicts(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	walkID := createWalk(t, stack)

	require.NoError(t, stack.walkUC.Accept(ctx, "walker", walkID, nil))
	err := stack.walkUC.Accept(ctx, "walker", walkID, nil)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWalkStatusConflict, appErr.ErrorCode())
	assertStatus(t, stack, walkID, entity.WalkStatusActive)
}

func TestWalkService_Reject(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	walkID := createWalk(t, stack)

	err := stack.walkUC.Reject(ctx, "owner", walkID, nil)
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeOwnerCannotRejectOwnWalk, appErr.ErrorCode())
	assert.Empty(t, notificationTitles(t, stack, "owner"))

	require.NoError(t, stack.walkUC.Reject(ctx, "walker", walkID, nil))
	assertStatus(t, stack, walkID, entity.WalkStatusRejected)
	assert.Equal(t, []string{"Walk rejected"}, notificationTitles(t, stack, "owner"))

	// Terminal states never transition again.
	err = stack.walkUC.Accept(ctx, "walker", walkID, nil)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWalkStatusConflict, appErr.ErrorCode())
}

func TestWalkService_Cancel_FromPendingAndActive(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	pending := createWalk(t, stack)
	require.NoError(t, stack.walkUC.Cancel(ctx, "owner", pending, nil))
	assertStatus(t, stack, pending, entity.WalkStatusCancelled)

	// The owner cancelled, so the walker is the one told.
	assert.ElementsMatch(t, []string{"Walk requested", "Walk cancelled"},
		notificationTitles(t, stack, "walker"))

	active := createWalk(t, stack)
	require.NoError(t, stack.walkUC.Accept(ctx, "walker", active, nil))
	require.NoError(t, stack.walkUC.Cancel(ctx, "walker", active, strPtr("dog is sick")))
	assertStatus(t, stack, active, entity.WalkStatusCancelled)

	assert.ElementsMatch(t, []string{"Walk accepted", "Walk cancelled"},
		notificationTitles(t, stack, "owner"))

	err := stack.walkUC.Cancel(ctx, "owner", active, nil)
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWalkStatusConflict, appErr.ErrorCode())
}

func TestWalkService_Complete_NotifiesCounterparty(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	walkID := createWalk(t, stack)

	require.NoError(t, stack.walkUC.Accept(ctx, "walker", walkID, nil))
	require.NoError(t, stack.walkUC.Complete(ctx, "walker", walkID, nil))

	assertStatus(t, stack, walkID, entity.WalkStatusComplete)

	assert.ElementsMatch(t, []string{"Walk accepted", "Walk completed"},
		notificationTitles(t, stack, "owner"))

	events := stack.bus.Events()
	require.Len(t, events, 3)
	assert.Equal(t, service.WalkEventCompleted, events[2].Type)
}

func TestWalkService_Complete_RequiresActive(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	walkID := createWalk(t, stack)

	err := stack.walkUC.Complete(ctx, "walker", walkID, nil)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWalkStatusConflict, appErr.ErrorCode())
	assertStatus(t, stack, walkID, entity.WalkStatusPending)
}

func TestWalkService_GetWalkByKey(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	// Unknown ids resolve to nothing, not an error.
	walk, err := stack.walkUC.GetWalkByKey(ctx, "no-such-walk")
	require.NoError(t, err)
	assert.Nil(t, walk)

	// An empty id is a caller mistake.
	_, err = stack.walkUC.GetWalkByKey(ctx, "")
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
	assert.EqualError(t, err, "walk id cannot be empty")
}

func TestWalkService_TransitionUnknownWalk(t *testing.T) {
	stack := newTestStack(t)

	err := stack.walkUC.Accept(context.Background(), "walker", "no-such-walk", nil)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeWalkStatusConflict, appErr.ErrorCode())
	assert.Equal(t, "walk does not exist", appErr.Details())
}

func TestWalkService_GetAllWalks(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	first := createWalk(t, stack)
	second := createWalk(t, stack)

	walks, err := stack.walkUC.GetAllWalks(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, walks, 2)

	ids := []string{walks[0].ID, walks[1].ID}
	assert.ElementsMatch(t, []string{first, second}, ids)

	// Users without walks get an empty slice.
	walks, err = stack.walkUC.GetAllWalks(ctx, "stranger")
	require.NoError(t, err)
	assert.Empty(t, walks)
}
