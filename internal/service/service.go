// Package service implements the registry that coordinates events,
// participants, ID assignment and registration side effects.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/VZ1308/EventManagementSystem/internal/model"
	"github.com/VZ1308/EventManagementSystem/internal/notify"
	"github.com/VZ1308/EventManagementSystem/internal/repository"
)

// ParticipantAddedFunc observes a registration. Returning an error stops the
// remaining observers and the notifier for that registration.
type ParticipantAddedFunc func(ctx context.Context, r *Registry, p *model.Participant) error

// Registry owns every event and participant and the participant ID sequence.
type Registry struct {
	mu                sync.RWMutex
	events            *repository.EventRepository
	participants      *repository.ParticipantRepository
	nextParticipantID int
	observers         []ParticipantAddedFunc

	notifier notify.Notifier
	logger   zerolog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registry activity.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry constructs a Registry whose participant IDs start at 1.
// A nil notifier is replaced by notify.Nop.
func NewRegistry(notifier notify.Notifier, opts ...Option) *Registry {
	if notifier == nil {
		notifier = notify.Nop
	}
	r := &Registry{
		events:            repository.NewEventRepository(),
		participants:      repository.NewParticipantRepository(),
		nextParticipantID: 1,
		notifier:          notifier,
		logger:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnParticipantAdded attaches fn. It fires on every later AddParticipant,
// after the observers attached before it.
func (r *Registry) OnParticipantAdded(fn ParticipantAddedFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

// AddEvent appends e. The event validated itself on construction.
func (r *Registry) AddEvent(ctx context.Context, e *model.Event) {
	r.mu.Lock()
	r.events.Add(e)
	r.mu.Unlock()

	r.logger.Info().
		Str("event_id", e.ID()).
		Str("event", e.Name()).
		Msg("event added")
}

// AddParticipant assigns p the next ID, records it globally and on e, then
// runs the observers in attachment order followed by the notifier.
//
// The recording steps are not rolled back: when an observer fails, p stays
// registered, the notifier is skipped and the observer's error is returned.
func (r *Registry) AddParticipant(ctx context.Context, e *model.Event, p *model.Participant) error {
	r.mu.Lock()
	if err := p.SetID(r.nextParticipantID); err != nil {
		r.mu.Unlock()
		return fmt.Errorf("assign participant id: %w", err)
	}
	r.nextParticipantID++
	r.participants.Add(p)
	e.AddParticipant(p)
	observers := make([]ParticipantAddedFunc, len(r.observers))
	copy(observers, r.observers)
	r.mu.Unlock()

	r.logger.Info().
		Int("participant_id", p.ID()).
		Str("participant", p.Name()).
		Str("event", e.Name()).
		Msg("participant added")

	// Observers and the notifier run unlocked so they may call back into r.
	for i, observe := range observers {
		if err := observe(ctx, r, p); err != nil {
			r.logger.Error().Err(err).Int("observer", i).Int("participant_id", p.ID()).
				Msg("participant observer failed")
			return fmt.Errorf("participant added observer: %w", err)
		}
	}

	r.notifier.Notify(ctx, e, p)
	return nil
}

// Events returns all events in the order they were added.
func (r *Registry) Events() []*model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.events.List()
}

// Participants returns every registered participant in registration order.
func (r *Registry) Participants() []*model.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.participants.List()
}

// Event returns the event with the given ID or repository.ErrNotFound.
func (r *Registry) Event(id string) (*model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.events.GetByID(id)
}

// Participant returns the participant with the given ID or repository.ErrNotFound.
func (r *Registry) Participant(id int) (*model.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.participants.GetByID(id)
}

// EventParticipants returns the participants of e in registration order.
func (r *Registry) EventParticipants(e *model.Event) []*model.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return e.Participants()
}

// EventView renders e for the HTTP surface.
func (r *Registry) EventView(e *model.Event) model.EventResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return model.NewEventResponse(e, len(e.Participants()))
}
