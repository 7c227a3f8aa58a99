package services

import (
	"context"
	"log"
	"sync"
	"time"

	"tripforge/internal/repositories"
	"tripforge/internal/selection"
	"tripforge/pkg/utils"
)

// SessionRef identifies one planning session. Authenticated sessions are
// keyed by the verified email and mirrored to durable storage; anonymous
// sessions live in memory only and vanish with the process.
type SessionRef struct {
	Key           string
	Authenticated bool
}

type SelectionServiceInterface interface {
	SeedSession(ctx context.Context, ref SessionRef, details selection.TravelInfoDetails) ([]selection.Item, error)
	Toggle(ctx context.Context, ref SessionRef, item selection.Item) ([]selection.Item, error)
	List(ctx context.Context, ref SessionRef) ([]selection.Item, error)
	Has(ctx context.Context, ref SessionRef, title string, category selection.Category) bool
	EndSession(ref SessionRef)
}

type SelectionService struct {
	selectionRepo repositories.SelectionRepository
	policy        selection.Policy

	mu     sync.Mutex
	stores map[string]*selection.Store
}

func NewSelectionService(selectionRepo repositories.SelectionRepository) SelectionServiceInterface {
	return &SelectionService{
		selectionRepo: selectionRepo,
		policy:        selection.DefaultPolicy(),
		stores:        make(map[string]*selection.Store),
	}
}

// sessionStore returns the session's store, creating and hydrating it on
// first touch. For authenticated sessions the persisted selection is
// loaded back (load failures degrade to an empty session) and every later
// mutation is mirrored to storage fire-and-forget.
func (s *SelectionService) sessionStore(ctx context.Context, ref SessionRef) (*selection.Store, error) {
	if ref.Key == "" {
		return nil, utils.ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if store, ok := s.stores[ref.Key]; ok {
		return store, nil
	}

	store := selection.NewStore(s.policy)
	if ref.Authenticated {
		items, err := s.selectionRepo.Load(ctx, ref.Key)
		if err != nil {
			log.Printf("Loading selection for %s failed, starting empty: %v", ref.Key, err)
			items = nil
		}
		store.Hydrate(items)
		store.OnChange(s.persist(ref.Key))
	}

	s.stores[ref.Key] = store
	return store, nil
}

// persist returns the store subscriber that mirrors mutations to storage.
// It never blocks the toggle path and swallows failures: the in-memory
// store stays authoritative for the session either way.
func (s *SelectionService) persist(userKey string) func([]selection.Item) {
	return func(items []selection.Item) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.selectionRepo.Save(ctx, userKey, items); err != nil {
				log.Printf("Persisting selection for %s failed: %v", userKey, err)
			}
		}()
	}
}

func (s *SelectionService) SeedSession(ctx context.Context, ref SessionRef, details selection.TravelInfoDetails) ([]selection.Item, error) {
	store, err := s.sessionStore(ctx, ref)
	if err != nil {
		return nil, err
	}

	info, err := selection.NewTravelInfoItem(details)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	return store.Seed(info), nil
}

func (s *SelectionService) Toggle(ctx context.Context, ref SessionRef, item selection.Item) ([]selection.Item, error) {
	if item.Title == "" {
		return nil, utils.ErrInvalidInput
	}

	store, err := s.sessionStore(ctx, ref)
	if err != nil {
		return nil, err
	}
	return store.Toggle(item), nil
}

func (s *SelectionService) List(ctx context.Context, ref SessionRef) ([]selection.Item, error) {
	store, err := s.sessionStore(ctx, ref)
	if err != nil {
		return nil, err
	}
	return store.Snapshot(), nil
}

func (s *SelectionService) Has(ctx context.Context, ref SessionRef, title string, category selection.Category) bool {
	if ref.Key == "" {
		return false
	}
	store, err := s.sessionStore(ctx, ref)
	if err != nil {
		return false
	}
	return store.Has(title, category)
}

// EndSession drops the in-memory store. The persisted record, if any,
// survives for the next session to hydrate from.
func (s *SelectionService) EndSession(ref SessionRef) {
	s.mu.Lock()
	delete(s.stores, ref.Key)
	s.mu.Unlock()
}
