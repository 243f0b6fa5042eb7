package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castilloConsultoresuy/turnolistov2/internal/domain"
)

func TestMemoryStoreLoadEmpty(t *testing.T) {
	s := NewMemoryStore()

	state, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, state.Tickets)
	assert.Empty(t, state.Tickets)
	assert.Nil(t, state.CurrentlyServing)
	assert.Zero(t, state.LastTicketNumber)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	ticket := domain.Ticket{
		ID:        "t-1",
		Number:    1,
		Name:      "Ana",
		Status:    domain.TicketStatusServing,
		CreatedAt: time.Now().UTC(),
	}
	saved := domain.QueueState{
		Tickets:          []domain.Ticket{ticket},
		CurrentlyServing: &ticket,
		LastTicketNumber: 1,
	}
	require.NoError(t, s.Save(ctx, saved))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestMemoryStoreReturnsIndependentCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	state := domain.QueueState{
		Tickets:          []domain.Ticket{{ID: "t-1", Number: 1, Name: "Ana", Status: domain.TicketStatusWaiting}},
		LastTicketNumber: 1,
	}
	require.NoError(t, s.Save(ctx, state))

	// Mutating the caller's copy must not leak into the store.
	state.Tickets[0].Status = domain.TicketStatusServed

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusWaiting, loaded.Tickets[0].Status)

	// Nor must mutating a loaded snapshot.
	loaded.Tickets[0].Name = "changed"
	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.Tickets[0].Name)
}
