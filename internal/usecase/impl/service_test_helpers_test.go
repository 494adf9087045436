package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"dogber/config"
	"dogber/internal/domain/repository"
	"dogber/internal/domain/service"
	"dogber/internal/errors"
	"dogber/internal/infra/persistence/docstore"
	"dogber/internal/infra/persistence/memory"
	"dogber/internal/usecase"
)

// fakeAuthService resolves tokens to themselves and serves canned profile
// hints, standing in for the external auth provider.
type fakeAuthService struct {
	hints   map[string]*service.ProfileHints
	deleted []string
}

func (f *fakeAuthService) VerifyToken(_ context.Context, token string) (string, error) {
	return token, nil
}

func (f *fakeAuthService) ProfileHints(_ context.Context, uid string) (*service.ProfileHints, error) {
	hints, ok := f.hints[uid]
	if !ok {
		return nil, errors.Errorf("unknown uid %s", uid)
	}

	return hints, nil
}

func (f *fakeAuthService) DeleteAccount(_ context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)

	return nil
}

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []*service.WalkEvent
}

func (p *capturingPublisher) PublishWalkEvent(_ context.Context, event *service.WalkEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func (p *capturingPublisher) Events() []*service.WalkEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.WalkEvent(nil), p.events...)
}

// testStack wires every service over a single in-memory store so tests
// observe real persistence effects instead of mock expectations.
type testStack struct {
	store *memory.Store
	cfg   *config.Config
	auth  *fakeAuthService
	bus   *capturingPublisher

	profileRepo      repository.ProfileRepository
	walkRepo         repository.WalkRepository
	notificationRepo repository.NotificationRepository

	profileUC      usecase.ProfileUsecase
	walkUC         usecase.WalkUsecase
	notificationUC usecase.NotificationUsecase
	feedbackUC     usecase.FeedbackUsecase
	dogUC          usecase.DogUsecase
	accountUC      usecase.AccountUsecase
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	store := memory.New()
	cfg := &config.Config{}
	cfg.Env.Version = "1.2.3"
	cfg.Welcome = config.WelcomeConfig{Balance: 5, PriceMin: 5, PriceMax: 10}

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	auth := &fakeAuthService{hints: make(map[string]*service.ProfileHints)}
	bus := &capturingPublisher{}

	profileRepo := docstore.NewProfileRepository(store)
	walkRepo := docstore.NewWalkRepository(store)
	notificationRepo := docstore.NewNotificationRepository(store)
	feedbackRepo := docstore.NewFeedbackRepository(store)
	dogRepo := docstore.NewDogRepository(store)

	notificationUC := NewNotificationService(notificationRepo, profileRepo, cfg)

	return &testStack{
		store:            store,
		cfg:              cfg,
		auth:             auth,
		bus:              bus,
		profileRepo:      profileRepo,
		walkRepo:         walkRepo,
		notificationRepo: notificationRepo,
		profileUC:        NewProfileService(profileRepo),
		walkUC:           NewWalkService(walkRepo, profileRepo, notificationUC, bus, logger),
		notificationUC:   notificationUC,
		feedbackUC:       NewFeedbackService(feedbackRepo, profileRepo, notificationUC, logger),
		dogUC:            NewDogService(dogRepo),
		accountUC:        NewAccountService(profileRepo, auth, notificationUC, cfg, logger),
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
