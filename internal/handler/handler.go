// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the registry.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/VZ1308/EventManagementSystem/internal/clock"
	"github.com/VZ1308/EventManagementSystem/internal/model"
	"github.com/VZ1308/EventManagementSystem/internal/repository"
	"github.com/VZ1308/EventManagementSystem/internal/service"
)

// EventHandler holds all HTTP handlers for the event registry API.
type EventHandler struct {
	registry *service.Registry
	clock    clock.Clock
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(registry *service.Registry, c clock.Clock) *EventHandler {
	return &EventHandler{registry: registry, clock: c}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// lookupEvent writes a 404 and returns nil when the {id} event is unknown.
func (h *EventHandler) lookupEvent(w http.ResponseWriter, r *http.Request) *model.Event {
	event, err := h.registry.Event(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return nil
		}
		writeError(w, http.StatusInternalServerError, "failed to get event")
		return nil
	}
	return event
}

func participantViews(ps []*model.Participant) []model.ParticipantResponse {
	out := make([]model.ParticipantResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, model.NewParticipantResponse(p))
	}
	return out
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	event, err := model.NewEventWithClock(h.clock, req.Name, date, req.Description, req.Location)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.registry.AddEvent(r.Context(), event)
	writeJSON(w, http.StatusCreated, h.registry.EventView(event))
}

// ListEvents handles GET /events
// Returns a JSON array of all events in the order they were added.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.registry.Events()

	// Return an empty array rather than null for better client compatibility.
	views := make([]model.EventResponse, 0, len(events))
	for _, e := range events {
		views = append(views, h.registry.EventView(e))
	}
	writeJSON(w, http.StatusOK, views)
}

// GetEvent handles GET /events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event := h.lookupEvent(w, r)
	if event == nil {
		return
	}
	writeJSON(w, http.StatusOK, h.registry.EventView(event))
}

// AddParticipant handles POST /events/{id}/participants
// The registry assigns the participant ID; observer failures are reported
// as 500 even though the participant is already registered.
func (h *EventHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	event := h.lookupEvent(w, r)
	if event == nil {
		return
	}

	var req model.AddParticipantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	p, err := model.NewParticipant(1, req.Name, req.Email, req.PhoneNumber, req.Address, req.City, req.PostalCode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.registry.AddParticipant(r.Context(), event, p); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, model.NewParticipantResponse(p))
}

// ListEventParticipants handles GET /events/{id}/participants
func (h *EventHandler) ListEventParticipants(w http.ResponseWriter, r *http.Request) {
	event := h.lookupEvent(w, r)
	if event == nil {
		return
	}
	writeJSON(w, http.StatusOK, participantViews(h.registry.EventParticipants(event)))
}

// ListParticipants handles GET /participants
func (h *EventHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, participantViews(h.registry.Participants()))
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
