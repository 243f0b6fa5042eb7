package events

import (
	"time"

	"github.com/castilloConsultoresuy/turnolistov2/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated EventType = "ticket_created"
	EventTicketCalled  EventType = "ticket_called"
	EventQueueReset    EventType = "queue_reset"
)

// Actor encapsulates who triggered the operation.
type Actor struct {
	Type domain.SubjectType `json:"type"`
}

// Event represents a domain event emitted by the queue service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload describes a freshly issued ticket.
type TicketCreatedPayload struct {
	TicketID string `json:"ticket_id"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Waiting  int    `json:"waiting"`
}

// TicketCalledPayload describes a call-next transition. NowServing is nil
// when the waiting list was empty and nobody got promoted.
type TicketCalledPayload struct {
	NowServing *domain.Ticket `json:"now_serving"`
	Retired    *domain.Ticket `json:"retired,omitempty"`
	Waiting    int            `json:"waiting"`
}

// QueueResetPayload describes a destructive reset.
type QueueResetPayload struct {
	DiscardedTickets int `json:"discarded_tickets"`
}
