package menu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VZ1308/EventManagementSystem/internal/clock"
	"github.com/VZ1308/EventManagementSystem/internal/model"
	"github.com/VZ1308/EventManagementSystem/internal/notify"
	"github.com/VZ1308/EventManagementSystem/internal/service"
)

var now = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

func run(t *testing.T, reg *service.Registry, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	m := New(reg, in, &out, WithClock(clock.NewFixed(now)), WithInteractive(false))

	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func addEventLines(name string) []string {
	return []string{"1", name, "A nice evening", "2030-06-02", "Main Hall"}
}

func addParticipantLines(index, name string) []string {
	return []string{"2", index, name, name + "@x.com", "+1234567", "Street 1", "Town", "12345"}
}

func TestMenu_ExitImmediately(t *testing.T) {
	out := run(t, service.NewRegistry(nil), "4")

	assert.Contains(t, out, "==== Event Management System ====")
	assert.Contains(t, out, "Program will be terminated...")
	assert.NotContains(t, out, clearScreen)
}

func TestMenu_EndOfInputExits(t *testing.T) {
	var out bytes.Buffer
	m := New(service.NewRegistry(nil), strings.NewReader(""), &out, WithInteractive(false))

	assert.NoError(t, m.Run(context.Background()))
}

func TestMenu_InvalidChoice(t *testing.T) {
	out := run(t, service.NewRegistry(nil), "9", "4")
	assert.Contains(t, out, "Invalid input. Please try again.")
}

func TestMenu_AddEvent(t *testing.T) {
	reg := service.NewRegistry(nil)
	lines := append(addEventLines("Meetup"), "4")

	out := run(t, reg, lines...)

	assert.Contains(t, out, "The event 'Meetup' has been successfully added.")
	events := reg.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Meetup", events[0].Name())
	assert.Equal(t, "A nice evening", events[0].Description())
	assert.Equal(t, "Main Hall", events[0].Location())
	assert.Equal(t, time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC), events[0].Date())
}

func TestMenu_AddEventRepromptsBadInput(t *testing.T) {
	reg := service.NewRegistry(nil)

	out := run(t, reg,
		"1",
		"   ", "Meetup",
		"", "desc",
		"tomorrow", "2030-05-31", "2030-06-01",
		"Hall",
		"4",
	)

	assert.Contains(t, out, "Invalid input: invalid name: must not be empty")
	assert.Contains(t, out, "Invalid input: invalid description: must not be empty")
	assert.Contains(t, out, "Invalid date. Please enter in the format yyyy-mm-dd.")
	assert.Contains(t, out, "Invalid input: invalid date: must not be in the past")
	require.Len(t, reg.Events(), 1)
	assert.Equal(t, "Meetup", reg.Events()[0].Name())
}

func TestMenu_AddParticipantWithoutEvents(t *testing.T) {
	out := run(t, service.NewRegistry(nil), "2", "4")
	assert.Contains(t, out, "There are no available events. Please add an event first.")
}

func TestMenu_AddParticipant(t *testing.T) {
	var notified []string
	reg := service.NewRegistry(notify.NotifierFunc(func(_ context.Context, e *model.Event, p *model.Participant) {
		notified = append(notified, p.Name()+"@"+e.Name())
	}))

	var lines []string
	lines = append(lines, addEventLines("Meetup")...)
	lines = append(lines, addEventLines("Workshop")...)
	lines = append(lines, addParticipantLines("2", "ana")...)
	lines = append(lines, "4")

	out := run(t, reg, lines...)

	assert.Contains(t, out, "Available Events:")
	assert.Contains(t, out, "1. Meetup - 2030-06-02 - Main Hall")
	assert.Contains(t, out, "2. Workshop - 2030-06-02 - Main Hall")
	assert.Contains(t, out, "Participant 'ana' has been successfully added to event 'Workshop'.")
	assert.Equal(t, []string{"ana@Workshop"}, notified)

	ps := reg.Participants()
	require.Len(t, ps, 1)
	assert.Equal(t, 1, ps[0].ID())
	assert.Equal(t, "ana@x.com", ps[0].Email())
}

func TestMenu_AddParticipantRepromptsBadInput(t *testing.T) {
	reg := service.NewRegistry(nil)
	var lines []string
	lines = append(lines, addEventLines("Meetup")...)
	lines = append(lines,
		"2",
		"0", "x", "5", "1",
		"Ana",
		"not-an-email", "ana@x.com",
		"abc", "+1234567",
		"Street 1",
		"Town",
		"1234", "123456", "12345",
		"4",
	)

	out := run(t, reg, lines...)

	assert.Equal(t, 3, strings.Count(out, "Invalid input. Please enter a valid event number."))
	assert.Contains(t, out, "invalid email: is not a valid email address")
	assert.Contains(t, out, "invalid phone number: is not a valid phone number")
	assert.Equal(t, 2, strings.Count(out, "invalid postal code: must be 5 digits"))
	require.Len(t, reg.Participants(), 1)
	assert.Equal(t, "12345", reg.Participants()[0].PostalCode())
}

func TestMenu_AddParticipantObserverFailure(t *testing.T) {
	reg := service.NewRegistry(nil)
	reg.OnParticipantAdded(func(context.Context, *service.Registry, *model.Participant) error {
		return errors.New("mail queue full")
	})

	var lines []string
	lines = append(lines, addEventLines("Meetup")...)
	lines = append(lines, addParticipantLines("1", "ana")...)
	lines = append(lines, "4")

	out := run(t, reg, lines...)

	assert.Contains(t, out, "Participant 'ana' was registered, but a notification failed")
	assert.Len(t, reg.Participants(), 1)
}

func TestMenu_ShowEvents(t *testing.T) {
	reg := service.NewRegistry(nil)

	out := run(t, reg, "3", "4")
	assert.Contains(t, out, "No events available.")

	var lines []string
	lines = append(lines, addEventLines("Meetup")...)
	lines = append(lines, addParticipantLines("1", "ana")...)
	lines = append(lines, "3", "4")

	out = run(t, reg, lines...)
	assert.Contains(t, out, "==== All Events ====")
	assert.Contains(t, out, "Meetup - 2030-06-02 - Main Hall")
	assert.Contains(t, out, "  Participant 1: ana, email: ana@x.com, phone: +1234567, address: Street 1, 12345 Town")
}

func TestMenu_InteractivePauses(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("3\n\n4\n")
	m := New(service.NewRegistry(nil), in, &out, WithInteractive(true))

	require.NoError(t, m.Run(context.Background()))
	assert.Contains(t, out.String(), clearScreen)
	assert.Contains(t, out.String(), "Press Enter to continue...")
	assert.Contains(t, out.String(), "Program will be terminated...")
}

func TestMenu_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := New(service.NewRegistry(nil), strings.NewReader("4\n"), &bytes.Buffer{}, WithInteractive(false))

	assert.ErrorIs(t, m.Run(ctx), context.Canceled)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
