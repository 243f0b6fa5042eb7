package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castilloConsultoresuy/turnolistov2/internal/domain"
	"github.com/castilloConsultoresuy/turnolistov2/internal/store"
)

func newTestService() *QueueService {
	return NewQueueService(QueueDependencies{Store: store.NewMemoryStore()})
}

func TestCreateTicketAssignsSequentialNumbers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		ticket, err := svc.CreateTicket(ctx, "Cliente")
		require.NoError(t, err)
		assert.Equal(t, i, ticket.Number)
		assert.Equal(t, domain.TicketStatusWaiting, ticket.Status)
		assert.NotEmpty(t, ticket.ID)
		assert.False(t, ticket.CreatedAt.IsZero())
	}

	state, err := svc.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, state.LastTicketNumber)
	assert.Len(t, state.Tickets, 5)
}

func TestCreateTicketConcurrentNumbersAreCollisionFree(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	numbers := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticket, err := svc.CreateTicket(ctx, "Cliente")
			if assert.NoError(t, err) {
				numbers <- ticket.Number
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[int]bool, n)
	for num := range numbers {
		assert.False(t, seen[num], "duplicate ticket number %d", num)
		seen[num] = true
	}
	assert.Len(t, seen, n)
	for i := 1; i <= n; i++ {
		assert.True(t, seen[i], "missing ticket number %d", i)
	}
}

func TestCreateTicketValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateTicket(ctx, "")
	assert.Error(t, err)

	_, err = svc.CreateTicket(ctx, strings.Repeat("a", 51))
	assert.Error(t, err)

	// 50 runes, not bytes
	_, err = svc.CreateTicket(ctx, strings.Repeat("ñ", 50))
	assert.NoError(t, err)

	state, err := svc.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.LastTicketNumber)
	assert.Len(t, state.Tickets, 1)
}

func TestCallNextServesInFIFOOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateTicket(ctx, "Ana")
	require.NoError(t, err)
	_, err = svc.CreateTicket(ctx, "Luis")
	require.NoError(t, err)

	state, err := svc.CallNextTicket(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.CurrentlyServing)
	assert.Equal(t, 1, state.CurrentlyServing.Number)
	assert.Equal(t, domain.TicketStatusServing, state.Tickets[0].Status)
	assert.Equal(t, domain.TicketStatusWaiting, state.Tickets[1].Status)

	state, err = svc.CallNextTicket(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.CurrentlyServing)
	assert.Equal(t, 2, state.CurrentlyServing.Number)
	assert.Equal(t, domain.TicketStatusServed, state.Tickets[0].Status)
	assert.Equal(t, domain.TicketStatusServing, state.Tickets[1].Status)

	state, err = svc.CallNextTicket(ctx)
	require.NoError(t, err)
	assert.Nil(t, state.CurrentlyServing)
	assert.Equal(t, domain.TicketStatusServed, state.Tickets[1].Status)
}

func TestCallNextWithEmptyQueueIsSafe(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		state, err := svc.CallNextTicket(ctx)
		require.NoError(t, err)
		assert.Nil(t, state.CurrentlyServing)
		assert.Empty(t, state.Tickets)
	}
}

func TestCallNextWithNoWaitingRetiresCurrent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateTicket(ctx, "Ana")
	require.NoError(t, err)

	state, err := svc.CallNextTicket(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.CurrentlyServing)

	state, err = svc.CallNextTicket(ctx)
	require.NoError(t, err)
	assert.Nil(t, state.CurrentlyServing)
	assert.Equal(t, domain.TicketStatusServed, state.Tickets[0].Status)
}

func TestAtMostOneServingTicket(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, name := range []string{"Ana", "Luis", "Marta"} {
		_, err := svc.CreateTicket(ctx, name)
		require.NoError(t, err)
	}

	for i := 0; i < 5; i++ {
		state, err := svc.CallNextTicket(ctx)
		require.NoError(t, err)

		serving := 0
		for _, ticket := range state.Tickets {
			if ticket.Status == domain.TicketStatusServing {
				serving++
				require.NotNil(t, state.CurrentlyServing)
				assert.Equal(t, state.CurrentlyServing.ID, ticket.ID)
			}
		}
		assert.LessOrEqual(t, serving, 1)
		if state.CurrentlyServing == nil {
			assert.Zero(t, serving)
		}
	}
}

func TestServedIsTerminal(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateTicket(ctx, "Ana")
	require.NoError(t, err)
	_, err = svc.CallNextTicket(ctx)
	require.NoError(t, err)
	_, err = svc.CallNextTicket(ctx)
	require.NoError(t, err)

	// Further operations must not touch the served ticket.
	_, err = svc.CreateTicket(ctx, "Luis")
	require.NoError(t, err)
	state, err := svc.CallNextTicket(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusServed, state.Tickets[0].Status)
	require.NotNil(t, state.CurrentlyServing)
	assert.Equal(t, 2, state.CurrentlyServing.Number)
}

func TestResetClearsEverything(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateTicket(ctx, "Ana")
	require.NoError(t, err)
	_, err = svc.CallNextTicket(ctx)
	require.NoError(t, err)

	state, err := svc.ResetQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Tickets)
	assert.Nil(t, state.CurrentlyServing)
	assert.Zero(t, state.LastTicketNumber)

	state, err = svc.GetState(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Tickets)
	assert.Nil(t, state.CurrentlyServing)
	assert.Zero(t, state.LastTicketNumber)

	// Numbering restarts after reset.
	ticket, err := svc.CreateTicket(ctx, "Luis")
	require.NoError(t, err)
	assert.Equal(t, 1, ticket.Number)
}

func TestExampleScenario(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ana, err := svc.CreateTicket(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, 1, ana.Number)

	luis, err := svc.CreateTicket(ctx, "Luis")
	require.NoError(t, err)
	assert.Equal(t, 2, luis.Number)

	state, err := svc.CallNextTicket(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.CurrentlyServing)
	assert.Equal(t, 1, state.CurrentlyServing.Number)

	state, err = svc.CallNextTicket(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.CurrentlyServing)
	assert.Equal(t, 2, state.CurrentlyServing.Number)
	assert.Equal(t, domain.TicketStatusServed, state.Tickets[0].Status)

	state, err = svc.CallNextTicket(ctx)
	require.NoError(t, err)
	assert.Nil(t, state.CurrentlyServing)
	assert.Equal(t, domain.TicketStatusServed, state.Tickets[1].Status)
}
