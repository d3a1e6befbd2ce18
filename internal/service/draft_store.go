package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const draftTTL = 24 * time.Hour

// RedisDraftStore keeps suggestion drafts in Redis with a 24h TTL. Drafts
// are transient by design: an unconfirmed suggestion simply expires.
type RedisDraftStore struct {
	client *redis.Client
}

// NewRedisDraftStore creates a new RedisDraftStore instance
func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{client: client}
}

func draftKey(id string) string {
	return fmt.Sprintf("suggestion:draft:%s", id)
}

// SaveDraft writes a draft to Redis
func (s *RedisDraftStore) SaveDraft(ctx context.Context, draft *SuggestionDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := s.client.Set(ctx, draftKey(draft.ID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft to Redis: %w", err)
	}
	return nil
}

// GetDraft reads a draft back from Redis
func (s *RedisDraftStore) GetDraft(ctx context.Context, id string) (*SuggestionDraft, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var draft SuggestionDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

// DeleteDraft removes a draft from Redis
func (s *RedisDraftStore) DeleteDraft(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}
	return nil
}
