// Package repository keeps the registry's events and participants in memory,
// in insertion order. Nothing is persisted; data lives as long as the process.
//
// The repositories are not synchronised. The registry serialises all access.
package repository

import (
	"errors"

	"github.com/VZ1308/EventManagementSystem/internal/model"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// EventRepository holds events in the order they were added.
type EventRepository struct {
	events []*model.Event
	byID   map[string]*model.Event
}

// NewEventRepository constructs an empty EventRepository.
func NewEventRepository() *EventRepository {
	return &EventRepository{byID: make(map[string]*model.Event)}
}

// Add appends e. The same name and date may be added any number of times.
func (r *EventRepository) Add(e *model.Event) {
	r.events = append(r.events, e)
	r.byID[e.ID()] = e
}

// List returns all events in insertion order.
func (r *EventRepository) List() []*model.Event {
	out := make([]*model.Event, len(r.events))
	copy(out, r.events)
	return out
}

// GetByID returns a single event or ErrNotFound.
func (r *EventRepository) GetByID(id string) (*model.Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// Count returns the number of stored events.
func (r *EventRepository) Count() int {
	return len(r.events)
}

// ParticipantRepository holds every registered participant, indexed by ID.
type ParticipantRepository struct {
	participants []*model.Participant
	byID         map[int]*model.Participant
}

// NewParticipantRepository constructs an empty ParticipantRepository.
func NewParticipantRepository() *ParticipantRepository {
	return &ParticipantRepository{byID: make(map[int]*model.Participant)}
}

// Add appends p. The caller has already assigned p a unique ID.
func (r *ParticipantRepository) Add(p *model.Participant) {
	r.participants = append(r.participants, p)
	r.byID[p.ID()] = p
}

// List returns all participants in registration order.
func (r *ParticipantRepository) List() []*model.Participant {
	out := make([]*model.Participant, len(r.participants))
	copy(out, r.participants)
	return out
}

// GetByID returns a single participant or ErrNotFound.
func (r *ParticipantRepository) GetByID(id int) (*model.Participant, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}
