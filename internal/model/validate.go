package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/VZ1308/EventManagementSystem/internal/clock"
)

// ErrInvalidArgument is matched by every field validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	emailPattern      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern      = regexp.MustCompile(`^\+?[0-9\s]{7,15}$`)
	postalCodePattern = regexp.MustCompile(`^\d{5}$`)
)

// ValidationError names the field that was rejected and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports ErrInvalidArgument as the kind of every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ValidateID rejects identifiers that are not positive.
func ValidateID(id int) error {
	if id <= 0 {
		return invalid("id", "must be a positive number")
	}
	return nil
}

// ValidateText rejects empty and whitespace-only values for the named field.
func ValidateText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "must not be empty")
	}
	return nil
}

func ValidateEmail(value string) error {
	if err := ValidateText("email", value); err != nil {
		return err
	}
	if !emailPattern.MatchString(value) {
		return invalid("email", "is not a valid email address")
	}
	return nil
}

// ValidatePhoneNumber accepts an optional leading '+' followed by 7 to 15
// digits or spaces.
func ValidatePhoneNumber(value string) error {
	if err := ValidateText("phone number", value); err != nil {
		return err
	}
	if !phonePattern.MatchString(value) {
		return invalid("phone number", "is not a valid phone number")
	}
	return nil
}

// ValidatePostalCode accepts exactly five ASCII digits.
func ValidatePostalCode(value string) error {
	if err := ValidateText("postal code", value); err != nil {
		return err
	}
	if !postalCodePattern.MatchString(value) {
		return invalid("postal code", "must be 5 digits")
	}
	return nil
}

// ValidateEventDate rejects the zero date and any date before today on c.
func ValidateEventDate(c clock.Clock, date time.Time) error {
	if date.IsZero() {
		return invalid("date", "must be set")
	}
	if date.Before(clock.Today(c)) {
		return invalid("date", "must not be in the past")
	}
	return nil
}
