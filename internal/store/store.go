package store

import (
	"context"

	"github.com/castilloConsultoresuy/turnolistov2/internal/domain"
)

// QueueKey is the fixed logical name of the single global queue.
const QueueKey = "queue_state"

// QueueStateStore persists the whole QueueState as one opaque blob. Load
// returns the canonical empty state when nothing has been saved yet; Save
// replaces the entire blob in a single operation so readers never observe a
// partially written snapshot. Serialization of concurrent mutations is the
// caller's responsibility (see service.QueueService).
type QueueStateStore interface {
	Load(ctx context.Context) (domain.QueueState, error)
	Save(ctx context.Context, state domain.QueueState) error
}
