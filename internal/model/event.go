package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/VZ1308/EventManagementSystem/internal/clock"
)

// DateLayout is the calendar date format used for input and display.
const DateLayout = "2006-01-02"

// Event is a scheduled occurrence that participants register for.
// The date rule is evaluated against the event's clock at assignment time.
type Event struct {
	id           string
	name         string
	date         time.Time
	description  string
	location     string
	participants []*Participant

	clock clock.Clock
}

// NewEvent validates against the system clock.
func NewEvent(name string, date time.Time, description, location string) (*Event, error) {
	return NewEventWithClock(clock.NewSystem(), name, date, description, location)
}

// NewEventWithClock validates each field in order and fails on the first
// rejected one. The new event has a fresh ID and no participants.
func NewEventWithClock(c clock.Clock, name string, date time.Time, description, location string) (*Event, error) {
	e := &Event{
		id:    uuid.NewString(),
		clock: c,
	}
	setters := []func() error{
		func() error { return e.SetName(name) },
		func() error { return e.SetDate(date) },
		func() error { return e.SetDescription(description) },
		func() error { return e.SetLocation(location) },
	}
	for _, set := range setters {
		if err := set(); err != nil {
			return nil, err
		}
	}
	e.participants = []*Participant{}
	return e, nil
}

func (e *Event) ID() string          { return e.id }
func (e *Event) Name() string        { return e.name }
func (e *Event) Date() time.Time     { return e.date }
func (e *Event) Description() string { return e.description }
func (e *Event) Location() string    { return e.location }

// Participants returns a copy of the participant list in registration order.
// The list itself is not synchronised; concurrent readers go through the registry.
func (e *Event) Participants() []*Participant {
	out := make([]*Participant, len(e.participants))
	copy(out, e.participants)
	return out
}

// AddParticipant appends p. Membership is not checked.
func (e *Event) AddParticipant(p *Participant) {
	e.participants = append(e.participants, p)
}

func (e *Event) SetName(name string) error {
	if err := ValidateText("name", name); err != nil {
		return err
	}
	e.name = name
	return nil
}

func (e *Event) SetDate(date time.Time) error {
	if err := ValidateEventDate(e.clock, date); err != nil {
		return err
	}
	e.date = date
	return nil
}

func (e *Event) SetDescription(description string) error {
	if err := ValidateText("description", description); err != nil {
		return err
	}
	e.description = description
	return nil
}

func (e *Event) SetLocation(location string) error {
	if err := ValidateText("location", location); err != nil {
		return err
	}
	e.location = location
	return nil
}

// Validate re-runs every field check. The date is compared with today, so an
// event reports invalid once its day has passed.
func (e *Event) Validate() error {
	checks := []error{
		ValidateText("name", e.name),
		ValidateEventDate(e.clock, e.date),
		ValidateText("description", e.description),
		ValidateText("location", e.location),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// IsValid reports whether Validate passes. The error, if any, goes to the log.
func (e *Event) IsValid() bool {
	if err := e.Validate(); err != nil {
		log.Warn().Err(err).Str("event_id", e.id).Msg("event has invalid values")
		return false
	}
	return true
}

// String is the one-line listing form: name, date and location.
func (e *Event) String() string {
	return fmt.Sprintf("%s - %s - %s", e.name, e.date.Format(DateLayout), e.location)
}
