package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/castilloConsultoresuy/turnolistov2/internal/domain"
	apperrors "github.com/castilloConsultoresuy/turnolistov2/pkg/util/errorutil"
)

// PostgresStore persists the queue state blob in a single-row JSONB table.
// Each Save upserts the full snapshot in one statement, so a concurrent
// reader sees either the old or the new blob, never a mix.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore instantiates the store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Load fetches the persisted state, or the empty state when no row exists.
func (s *PostgresStore) Load(ctx context.Context) (domain.QueueState, error) {
	const query = `SELECT state FROM queue_states WHERE queue_key=$1`

	var raw []byte
	if err := s.pool.QueryRow(ctx, query, QueueKey).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

// Save upserts the full state blob for the fixed queue key.
func (s *PostgresStore) Save(ctx context.Context, state domain.QueueState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return apperrors.NewStorageFault(fmt.Errorf("encode queue state: %w", err))
	}

	const query = `
        INSERT INTO queue_states (queue_key, state, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (queue_key) DO UPDATE SET state = EXCLUDED.state, updated_at = NOW()`
	if _, err := s.pool.Exec(ctx, query, QueueKey, raw); err != nil {
		return apperrors.NewStorageFault(fmt.Errorf("save queue state: %w", err))
	}
	return nil
}
