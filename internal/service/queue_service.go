package service

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/castilloConsultoresuy/turnolistov2/internal/domain"
	"github.com/castilloConsultoresuy/turnolistov2/internal/events"
	"github.com/castilloConsultoresuy/turnolistov2/internal/observability"
	"github.com/castilloConsultoresuy/turnolistov2/internal/store"
	apperrors "github.com/castilloConsultoresuy/turnolistov2/pkg/util/errorutil"
)

// MaxNameLength bounds the customer-supplied name, matching the original
// dashboard's form limit.
const MaxNameLength = 50

// QueueService implements the ticket lifecycle: get, create, call-next and
// reset, each a read-modify-write transaction against the state store. A
// single mutex serializes the mutating operations for the one global queue,
// which is what keeps ticket numbers collision-free under concurrent bursts.
type QueueService struct {
	mu         sync.Mutex
	store      store.QueueStateStore
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
}

// QueueDependencies bundles collaborators for the queue service.
type QueueDependencies struct {
	Store      store.QueueStateStore
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
}

// NewQueueService constructs the service.
func NewQueueService(deps QueueDependencies) *QueueService {
	return &QueueService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
	}
}

// GetState is a pure read-through of the store. Reads skip the write mutex:
// saves replace the whole blob, so a load always sees a complete snapshot.
func (s *QueueService) GetState(ctx context.Context) (domain.QueueState, error) {
	return s.store.Load(ctx)
}

// CreateTicket validates the name, assigns the next sequential number and
// appends the new waiting ticket. The returned ticket reflects exactly the
// state written by the immediately preceding serialized operation.
func (s *QueueService) CreateTicket(ctx context.Context, name string) (*domain.Ticket, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	newNumber := state.LastTicketNumber + 1
	for i := range state.Tickets {
		if state.Tickets[i].Number == newNumber {
			// Unreachable while mutations stay serialized; a duplicate here
			// means the single-writer guarantee was broken.
			panic(fmt.Sprintf("duplicate ticket number %d in queue state", newNumber))
		}
	}

	ticket := domain.Ticket{
		ID:        uuid.NewString(),
		Number:    newNumber,
		Name:      name,
		Status:    domain.TicketStatusWaiting,
		CreatedAt: time.Now().UTC(),
	}

	state.Tickets = append(state.Tickets, ticket)
	state.LastTicketNumber = newNumber

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	waiting := countWaiting(state)
	s.metrics.RecordQueueDepth(waiting)
	s.publishEvent(ctx, events.Event{
		Type:  events.EventTicketCreated,
		Actor: events.Actor{Type: domain.SubjectTypeCustomer},
		Payload: events.TicketCreatedPayload{
			TicketID: ticket.ID,
			Number:   ticket.Number,
			Name:     ticket.Name,
			Waiting:  waiting,
		},
	})
	return &ticket, nil
}

// CallNextTicket retires the currently serving ticket to served and promotes
// the lowest-numbered waiting ticket to serving. With an empty waiting list it
// still retires the current ticket and leaves nobody serving; calling it
// repeatedly on an empty queue is a safe no-op.
func (s *QueueService) CallNextTicket(ctx context.Context) (domain.QueueState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(ctx)
	if err != nil {
		return domain.QueueState{}, err
	}

	var retired *domain.Ticket
	var nowServing *domain.Ticket
	nextIdx := -1
	for i := range state.Tickets {
		if state.Tickets[i].Status == domain.TicketStatusWaiting {
			nextIdx = i
			break
		}
	}

	for i := range state.Tickets {
		if state.CurrentlyServing != nil && state.Tickets[i].ID == state.CurrentlyServing.ID {
			state.Tickets[i].Status = domain.TicketStatusServed
			served := state.Tickets[i]
			retired = &served
		} else if i == nextIdx {
			state.Tickets[i].Status = domain.TicketStatusServing
			serving := state.Tickets[i]
			nowServing = &serving
		}
	}
	state.CurrentlyServing = nowServing

	if err := s.store.Save(ctx, state); err != nil {
		return domain.QueueState{}, err
	}

	waiting := countWaiting(state)
	s.metrics.RecordQueueDepth(waiting)
	s.publishEvent(ctx, events.Event{
		Type:  events.EventTicketCalled,
		Actor: events.Actor{Type: domain.SubjectTypeAdmin},
		Payload: events.TicketCalledPayload{
			NowServing: nowServing,
			Retired:    retired,
			Waiting:    waiting,
		},
	})
	return state, nil
}

// ResetQueue replaces the persisted state with the canonical empty state,
// discarding all ticket history. Destructive and irreversible.
func (s *QueueService) ResetQueue(ctx context.Context) (domain.QueueState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(ctx)
	if err != nil {
		return domain.QueueState{}, err
	}
	discarded := len(state.Tickets)

	empty := domain.EmptyState()
	if err := s.store.Save(ctx, empty); err != nil {
		return domain.QueueState{}, err
	}

	s.metrics.RecordQueueDepth(0)
	s.publishEvent(ctx, events.Event{
		Type:    events.EventQueueReset,
		Actor:   events.Actor{Type: domain.SubjectTypeAdmin},
		Payload: events.QueueResetPayload{DiscardedTickets: discarded},
	})
	return empty, nil
}

func validateName(name string) error {
	length := utf8.RuneCountInString(name)
	if length == 0 {
		return apperrors.NewValidationError("name must not be empty", nil)
	}
	if length > MaxNameLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("name must be at most %d characters", MaxNameLength),
			map[string]any{"length": length},
		)
	}
	return nil
}

func countWaiting(state domain.QueueState) int {
	waiting := 0
	for i := range state.Tickets {
		if state.Tickets[i].Status == domain.TicketStatusWaiting {
			waiting++
		}
	}
	return waiting
}

func (s *QueueService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
