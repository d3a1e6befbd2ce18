package testhelpers

import (
	"context"
	"sync"

	"github.com/ricettario/backend/internal/service"
)

// MemoryDraftStore is an in-process DraftStore for tests that should not
// depend on a running Redis.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string]*service.SuggestionDraft
}

// NewMemoryDraftStore creates an empty MemoryDraftStore
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]*service.SuggestionDraft)}
}

func (s *MemoryDraftStore) SaveDraft(ctx context.Context, draft *service.SuggestionDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *draft
	s.drafts[draft.ID] = &copied
	return nil
}

func (s *MemoryDraftStore) GetDraft(ctx context.Context, id string) (*service.SuggestionDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[id]
	if !ok {
		return nil, service.ErrDraftNotFound
	}
	copied := *draft
	return &copied, nil
}

func (s *MemoryDraftStore) DeleteDraft(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}
