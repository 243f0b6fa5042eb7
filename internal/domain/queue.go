package domain

import "time"

// TicketStatus enumerates lifecycle states for queue tickets.
type TicketStatus string

const (
	TicketStatusWaiting TicketStatus = "waiting"
	TicketStatusServing TicketStatus = "serving"
	TicketStatusServed  TicketStatus = "served"
)

// Ticket is a single numbered turn in the queue. All fields except Status
// are immutable after creation; Status only advances waiting -> serving -> served.
type Ticket struct {
	ID        string       `json:"id"`
	Number    int          `json:"number"`
	Name      string       `json:"name"`
	Status    TicketStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// QueueState is the single persisted aggregate: the append-only ticket history
// since the last reset, the denormalized serving ticket, and the number counter.
type QueueState struct {
	Tickets          []Ticket `json:"tickets"`
	CurrentlyServing *Ticket  `json:"currentlyServing"`
	LastTicketNumber int      `json:"lastTicketNumber"`
}

// EmptyState returns the canonical empty queue. Tickets is a non-nil slice so
// the state always marshals as an empty JSON array rather than null.
func EmptyState() QueueState {
	return QueueState{
		Tickets:          []Ticket{},
		CurrentlyServing: nil,
		LastTicketNumber: 0,
	}
}

// Clone returns a deep copy so callers can never mutate a shared snapshot.
func (s QueueState) Clone() QueueState {
	out := QueueState{
		Tickets:          make([]Ticket, len(s.Tickets)),
		LastTicketNumber: s.LastTicketNumber,
	}
	copy(out.Tickets, s.Tickets)
	if s.CurrentlyServing != nil {
		serving := *s.CurrentlyServing
		out.CurrentlyServing = &serving
	}
	return out
}

// SubjectType identifies the kind of actor behind an operation.
type SubjectType string

const (
	SubjectTypeCustomer SubjectType = "customer"
	SubjectTypeAdmin    SubjectType = "admin"
	SubjectTypeSystem   SubjectType = "system"
)
