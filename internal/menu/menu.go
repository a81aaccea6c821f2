// Package menu is the console driver: it collects field values one prompt at
// a time, builds entities and hands them to the registry.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/VZ1308/EventManagementSystem/internal/clock"
	"github.com/VZ1308/EventManagementSystem/internal/model"
	"github.com/VZ1308/EventManagementSystem/internal/service"
)

// errInputClosed ends the menu when the input reaches EOF mid-prompt.
var errInputClosed = errors.New("input closed")

const clearScreen = "\033[H\033[2J"

// Menu runs the four-command loop over a reader and a writer.
type Menu struct {
	registry    *service.Registry
	in          *bufio.Scanner
	out         io.Writer
	clock       clock.Clock
	interactive bool
}

// Option configures a Menu.
type Option func(*Menu)

// WithClock sets the clock used for event date checks.
func WithClock(c clock.Clock) Option {
	return func(m *Menu) {
		m.clock = c
	}
}

// WithInteractive toggles screen clearing and the pause after each command.
func WithInteractive(interactive bool) Option {
	return func(m *Menu) {
		m.interactive = interactive
	}
}

// New constructs a Menu. It is interactive when out is a terminal.
func New(registry *service.Registry, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		registry:    registry,
		in:          bufio.NewScanner(in),
		out:         out,
		clock:       clock.NewSystem(),
		interactive: IsTerminal(out),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run shows the menu until the user exits or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.clear()
		m.println("==== Event Management System ====")
		m.println("1. Add New Event")
		m.println("2. Add Participant to Event")
		m.println("3. Show All Events")
		m.println("4. Exit Program")

		choice, err := m.prompt("Please choose an option: ")
		if err != nil {
			return m.inputErr(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.addEvent(ctx)
		case "2":
			err = m.addParticipant(ctx)
		case "3":
			m.showEvents()
		case "4":
			m.println("Program will be terminated...")
			return nil
		default:
			m.println("Invalid input. Please try again.")
		}
		if err != nil {
			return m.inputErr(err)
		}

		if m.interactive {
			if _, err := m.prompt("Press Enter to continue..."); err != nil {
				return m.inputErr(err)
			}
		}
	}
}

func (m *Menu) addEvent(ctx context.Context) error {
	m.clear()
	m.println("==== Add New Event ====")

	name, err := m.promptField("Event Name: ", func(v string) error { return model.ValidateText("name", v) })
	if err != nil {
		return err
	}
	description, err := m.promptField("Event Description: ", func(v string) error { return model.ValidateText("description", v) })
	if err != nil {
		return err
	}
	date, err := m.promptDate("Event Date (yyyy-mm-dd): ")
	if err != nil {
		return err
	}
	location, err := m.promptField("Event Location: ", func(v string) error { return model.ValidateText("location", v) })
	if err != nil {
		return err
	}

	e, err := model.NewEventWithClock(m.clock, name, date, description, location)
	if err != nil {
		m.printf("Error: %v\n", err)
		return nil
	}
	m.registry.AddEvent(ctx, e)
	m.printf("The event '%s' has been successfully added.\n", e.Name())
	return nil
}

func (m *Menu) addParticipant(ctx context.Context) error {
	m.clear()
	m.println("==== Add Participant to Event ====")

	events := m.registry.Events()
	if len(events) == 0 {
		m.println("There are no available events. Please add an event first.")
		return nil
	}

	m.println("Available Events:")
	for i, e := range events {
		m.printf("%d. %s\n", i+1, e)
	}

	var selected *model.Event
	for selected == nil {
		raw, err := m.prompt("Select an event (number): ")
		if err != nil {
			return err
		}
		idx, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr != nil || idx < 1 || idx > len(events) {
			m.println("Invalid input. Please enter a valid event number.")
			continue
		}
		selected = events[idx-1]
	}

	fields := []struct {
		label    string
		validate func(string) error
		value    string
	}{
		{label: "Participant Name: ", validate: func(v string) error { return model.ValidateText("name", v) }},
		{label: "Participant Email: ", validate: model.ValidateEmail},
		{label: "Participant Phone Number: ", validate: model.ValidatePhoneNumber},
		{label: "Participant Address: ", validate: func(v string) error { return model.ValidateText("address", v) }},
		{label: "Participant City: ", validate: func(v string) error { return model.ValidateText("city", v) }},
		{label: "Participant Postal Code: ", validate: model.ValidatePostalCode},
	}
	for i := range fields {
		v, err := m.promptField(fields[i].label, fields[i].validate)
		if err != nil {
			return err
		}
		fields[i].value = v
	}

	// The id is a placeholder; the registry assigns the real one.
	p, err := model.NewParticipant(1, fields[0].value, fields[1].value, fields[2].value,
		fields[3].value, fields[4].value, fields[5].value)
	if err != nil {
		m.printf("Error: %v\n", err)
		return nil
	}

	if err := m.registry.AddParticipant(ctx, selected, p); err != nil {
		m.printf("Participant '%s' was registered, but a notification failed: %v\n", p.Name(), err)
		return nil
	}
	m.printf("Participant '%s' has been successfully added to event '%s'.\n", p.Name(), selected.Name())
	return nil
}

func (m *Menu) showEvents() {
	m.clear()
	m.println("==== All Events ====")

	events := m.registry.Events()
	if len(events) == 0 {
		m.println("No events available.")
		return
	}
	for _, e := range events {
		m.println(e.String())
		for _, p := range m.registry.EventParticipants(e) {
			m.printf("  %s\n", p)
		}
	}
}

// promptField re-prompts until validate accepts the entered value.
func (m *Menu) promptField(label string, validate func(string) error) (string, error) {
	for {
		v, err := m.prompt(label)
		if err != nil {
			return "", err
		}
		if err := validate(v); err != nil {
			m.printf("Invalid input: %v\n", err)
			continue
		}
		return v, nil
	}
}

// promptDate re-prompts until the value parses and is not before today.
func (m *Menu) promptDate(label string) (time.Time, error) {
	for {
		raw, err := m.prompt(label)
		if err != nil {
			return time.Time{}, err
		}
		date, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(raw), m.clock.Now().Location())
		if err != nil {
			m.println("Invalid date. Please enter in the format yyyy-mm-dd.")
			continue
		}
		if err := model.ValidateEventDate(m.clock, date); err != nil {
			m.printf("Invalid input: %v\n", err)
			continue
		}
		return date, nil
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		m.println("")
		return "", errInputClosed
	}
	return m.in.Text(), nil
}

// inputErr treats a closed input as a normal exit.
func (m *Menu) inputErr(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

func (m *Menu) clear() {
	if m.interactive {
		fmt.Fprint(m.out, clearScreen)
	}
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
