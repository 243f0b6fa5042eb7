package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/castilloConsultoresuy/turnolistov2/internal/domain"
	apperrors "github.com/castilloConsultoresuy/turnolistov2/pkg/util/errorutil"
)

// RedisStore persists the queue state blob under a fixed key. SET replaces
// the whole value atomically, matching the whole-snapshot write contract.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore instantiates the store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load fetches the persisted state, or the empty state when the key is absent.
func (s *RedisStore) Load(ctx context.Context) (domain.QueueState, error) {
	raw, err := s.client.Get(ctx, QueueKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.EmptyState(), nil
		}
		return domain.QueueState{}, apperrors.NewStorageFault(fmt.Errorf("load queue state: %w", err))
	}

	state := domain.EmptyState()
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.QueueState{}, apperrors.NewStorageFault(fmt.Errorf("decode queue state: %w", err))
	}
	if state.Tickets == nil {
		state.Tickets = []domain.Ticket{}
	}
	return state, nil
}

// Save replaces the state blob. The key never expires.
func (s *RedisStore) Save(ctx context.Context, state domain.QueueState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return apperrors.NewStorageFault(fmt.Errorf("encode queue state: %w", err))
	}
	if err := s.client.Set(ctx, QueueKey, raw, 0).Err(); err != nil {
		return apperrors.NewStorageFault(fmt.Errorf("save queue state: %w", err))
	}
	return nil
}
