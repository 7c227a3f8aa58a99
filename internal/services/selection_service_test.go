package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripforge/internal/selection"
)

// fakeSelectionRepo records saves on a channel so tests can wait for the
// fire-and-forget persistence goroutine.
type fakeSelectionRepo struct {
	saves    chan []selection.Item
	loadErr  error
	saveErr  error
	seeded   []selection.Item
	saveSeen int
}

func newFakeSelectionRepo() *fakeSelectionRepo {
	return &fakeSelectionRepo{saves: make(chan []selection.Item, 16)}
}

func (f *fakeSelectionRepo) Save(ctx context.Context, userKey string, items []selection.Item) error {
	f.saveSeen++
	f.saves <- items
	return f.saveErr
}

func (f *fakeSelectionRepo) Load(ctx context.Context, userKey string) ([]selection.Item, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.seeded, nil
}

func waitForSave(t *testing.T, repo *fakeSelectionRepo) []selection.Item {
	t.Helper()
	select {
	case items := <-repo.saves:
		return items
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for persistence")
		return nil
	}
}

func authRef() SessionRef {
	return SessionRef{Key: "traveller@example.com", Authenticated: true}
}

func TestToggleTriggersPersistence(t *testing.T) {
	repo := newFakeSelectionRepo()
	service := NewSelectionService(repo)
	ctx := context.Background()

	got, err := service.Toggle(ctx, authRef(), selection.Item{Title: "AI202", Category: selection.CategoryFlight})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 item after toggle, got %d", len(got))
	}

	saved := waitForSave(t, repo)
	if len(saved) != 1 || saved[0].Title != "AI202" {
		t.Fatalf("persisted collection wrong: %+v", saved)
	}
}

func TestAnonymousSessionSkipsPersistence(t *testing.T) {
	repo := newFakeSelectionRepo()
	service := NewSelectionService(repo)
	ctx := context.Background()

	ref := SessionRef{Key: "device-42", Authenticated: false}
	if _, err := service.Toggle(ctx, ref, selection.Item{Title: "Red Fort", Category: selection.CategoryPlace}); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	select {
	case items := <-repo.saves:
		t.Fatalf("anonymous session persisted: %+v", items)
	case <-time.After(100 * time.Millisecond):
	}

	got, err := service.List(ctx, ref)
	if err != nil || len(got) != 1 {
		t.Fatalf("anonymous selection lost: %v (%v)", got, err)
	}
}

func TestPersistenceFailureDoesNotReachCaller(t *testing.T) {
	repo := newFakeSelectionRepo()
	repo.saveErr = errors.New("storage quota exceeded")
	service := NewSelectionService(repo)
	ctx := context.Background()

	got, err := service.Toggle(ctx, authRef(), selection.Item{Title: "Taj Hotel", Category: selection.CategoryHotel})
	if err != nil {
		t.Fatalf("toggle must not surface persistence failures, got %v", err)
	}
	waitForSave(t, repo)

	// The in-memory store stays authoritative.
	got, err = service.List(ctx, authRef())
	if err != nil || len(got) != 1 || got[0].Title != "Taj Hotel" {
		t.Fatalf("in-memory selection lost after save failure: %v (%v)", got, err)
	}
}

func TestSessionHydratesFromStorage(t *testing.T) {
	repo := newFakeSelectionRepo()
	repo.seeded = []selection.Item{
		{Title: "Jaipur", Category: selection.CategoryTravelInfo},
		{Title: "India Gate", Category: selection.CategoryPlace},
	}
	service := NewSelectionService(repo)

	got, err := service.List(context.Background(), authRef())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[1].Title != "India Gate" {
		t.Fatalf("hydration lost items: %+v", got)
	}
}

func TestLoadFailureStartsEmptySession(t *testing.T) {
	repo := newFakeSelectionRepo()
	repo.loadErr = errors.New("connection refused")
	service := NewSelectionService(repo)

	got, err := service.List(context.Background(), authRef())
	if err != nil {
		t.Fatalf("load failure must not crash session start: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty session, got %+v", got)
	}
}

func TestEndSessionKeepsPersistedRecord(t *testing.T) {
	repo := newFakeSelectionRepo()
	service := NewSelectionService(repo)
	ctx := context.Background()

	service.Toggle(ctx, authRef(), selection.Item{Title: "Red Fort", Category: selection.CategoryPlace})
	saved := waitForSave(t, repo)
	service.EndSession(authRef())

	// Next session hydrates from what was persisted, not from the dropped
	// in-memory store.
	repo.seeded = saved
	got, err := service.List(ctx, authRef())
	if err != nil || len(got) != 1 || got[0].Title != "Red Fort" {
		t.Fatalf("selection not recovered after session end: %v (%v)", got, err)
	}
}

func TestMissingSessionKeyRejected(t *testing.T) {
	service := NewSelectionService(newFakeSelectionRepo())

	_, err := service.Toggle(context.Background(), SessionRef{}, selection.Item{Title: "AI202", Category: selection.CategoryFlight})
	if err == nil {
		t.Fatal("expected error for missing session key")
	}
}
