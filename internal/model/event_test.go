package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VZ1308/EventManagementSystem/internal/clock"
)

var (
	today     = time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC)
	testClock = clock.NewFixed(today.Add(15 * time.Hour))
)

func newTestEvent(t *testing.T, date time.Time) *Event {
	t.Helper()
	e, err := NewEventWithClock(testClock, "Meetup", date, "desc", "loc")
	require.NoError(t, err)
	return e
}

func TestNewEvent_Valid(t *testing.T) {
	tomorrow := today.AddDate(0, 0, 1)
	e := newTestEvent(t, tomorrow)

	assert.NotEmpty(t, e.ID())
	assert.Equal(t, "Meetup", e.Name())
	assert.Equal(t, tomorrow, e.Date())
	assert.Equal(t, "desc", e.Description())
	assert.Equal(t, "loc", e.Location())
	assert.Empty(t, e.Participants())
	assert.True(t, e.IsValid())
	assert.True(t, e.IsValid())
}

func TestNewEvent_TodayIsAllowed(t *testing.T) {
	e := newTestEvent(t, today)
	assert.True(t, e.IsValid())
}

func TestNewEvent_UniqueIDs(t *testing.T) {
	a := newTestEvent(t, today)
	b := newTestEvent(t, today)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewEvent_Invalid(t *testing.T) {
	tomorrow := today.AddDate(0, 0, 1)
	tests := []struct {
		name                   string
		evName, desc, location string
		date                   time.Time
		field                  string
	}{
		{"empty name", "", "desc", "loc", tomorrow, "name"},
		{"blank name", "  ", "desc", "loc", tomorrow, "name"},
		{"zero date", "Meetup", "desc", "loc", time.Time{}, "date"},
		{"yesterday", "Meetup", "desc", "loc", today.AddDate(0, 0, -1), "date"},
		{"one second before today", "Meetup", "desc", "loc", today.Add(-time.Second), "date"},
		{"empty description", "Meetup", "", "loc", tomorrow, "description"},
		{"blank location", "Meetup", "desc", "\n", tomorrow, "location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEventWithClock(testClock, tt.evName, tt.date, tt.desc, tt.location)
			require.Error(t, err)
			assert.Nil(t, e)
			assert.True(t, errors.Is(err, ErrInvalidArgument))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestNewEvent_SystemClock(t *testing.T) {
	_, err := NewEvent("Meetup", time.Now().AddDate(0, 0, 1), "desc", "loc")
	require.NoError(t, err)

	_, err = NewEvent("Meetup", time.Now().AddDate(0, 0, -1), "desc", "loc")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEvent_SetDateRejectsPast(t *testing.T) {
	e := newTestEvent(t, today.AddDate(0, 0, 2))

	assert.ErrorIs(t, e.SetDate(today.AddDate(0, 0, -2)), ErrInvalidArgument)
	assert.Equal(t, today.AddDate(0, 0, 2), e.Date())
}

func TestEvent_IsValidAfterDatePasses(t *testing.T) {
	tomorrow := today.AddDate(0, 0, 1)
	e := newTestEvent(t, tomorrow)

	// Move the event's clock two days ahead.
	e.clock = clock.NewFixed(today.AddDate(0, 0, 2))

	assert.False(t, e.IsValid())
	assert.ErrorIs(t, e.Validate(), ErrInvalidArgument)
}

func TestEvent_AddParticipantKeepsOrder(t *testing.T) {
	e := newTestEvent(t, today)
	a, err := NewParticipant(1, "A", "a@x.com", "1234567", "s", "c", "11111")
	require.NoError(t, err)
	b, err := NewParticipant(1, "B", "b@x.com", "1234567", "s", "c", "22222")
	require.NoError(t, err)

	e.AddParticipant(a)
	e.AddParticipant(b)

	got := e.Participants()
	require.Len(t, got, 2)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])

	got[0] = nil
	assert.Same(t, a, e.Participants()[0], "Participants returns a copy")
}

func TestEvent_String(t *testing.T) {
	e := newTestEvent(t, time.Date(2030, 4, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Meetup - 2030-04-01 - loc", e.String())
}

func TestCreateEventRequest_ParseDate(t *testing.T) {
	d, err := CreateEventRequest{Date: "2030-04-01"}.ParseDate()
	require.NoError(t, err)
	assert.Equal(t, 2030, d.Year())
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, 1, d.Day())

	_, err = CreateEventRequest{Date: "01.04.2030"}.ParseDate()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
