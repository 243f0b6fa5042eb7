package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyStateMarshalsTicketsAsArray(t *testing.T) {
	raw, err := json.Marshal(EmptyState())
	require.NoError(t, err)
	assert.JSONEq(t, `{"tickets":[],"currentlyServing":null,"lastTicketNumber":0}`, string(raw))
}

func TestTicketJSONShape(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(Ticket{
		ID:        "abc",
		Number:    7,
		Name:      "Ana",
		Status:    TicketStatusWaiting,
		CreatedAt: created,
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"abc","number":7,"name":"Ana","status":"waiting","createdAt":"2026-03-01T10:00:00Z"}`,
		string(raw))
}

func TestCloneIsDeep(t *testing.T) {
	ticket := Ticket{ID: "t-1", Number: 1, Name: "Ana", Status: TicketStatusServing}
	state := QueueState{
		Tickets:          []Ticket{ticket},
		CurrentlyServing: &ticket,
		LastTicketNumber: 1,
	}

	clone := state.Clone()
	clone.Tickets[0].Status = TicketStatusServed
	clone.CurrentlyServing.Name = "changed"

	assert.Equal(t, TicketStatusServing, state.Tickets[0].Status)
	assert.Equal(t, "Ana", state.CurrentlyServing.Name)
}
