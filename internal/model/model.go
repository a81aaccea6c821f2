// Package model defines the self-validating entities of the event registry
// and the payloads exchanged over the HTTP surface.
package model

import "time"

// CreateEventRequest is the payload for creating a new event.
type CreateEventRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// ParseDate parses Date in DateLayout, local time.
func (r CreateEventRequest) ParseDate() (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, r.Date, time.Local)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: "must be formatted as YYYY-MM-DD"}
	}
	return d, nil
}

// AddParticipantRequest is the payload for registering a participant.
type AddParticipantRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
}

// EventResponse is the JSON view of an Event.
type EventResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Participants int    `json:"participants"`
}

// ParticipantResponse is the JSON view of a Participant.
type ParticipantResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
}

// NewParticipantResponse copies p's fields into the JSON view.
func NewParticipantResponse(p *Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Email:       p.Email(),
		PhoneNumber: p.PhoneNumber(),
		Address:     p.Address(),
		City:        p.City(),
		PostalCode:  p.PostalCode(),
	}
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewEventResponse copies e's fields into the JSON view. The participant
// count is passed in because the caller owns the lock over e's list.
func NewEventResponse(e *Event, participants int) EventResponse {
	return EventResponse{
		ID:           e.ID(),
		Name:         e.Name(),
		Date:         e.Date().Format(DateLayout),
		Description:  e.Description(),
		Location:     e.Location(),
		Participants: participants,
	}
}
