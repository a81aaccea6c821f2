package model

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Participant is a person registered for an event. Every setter runs the
// same check as NewParticipant, so a Participant never holds an invalid value.
type Participant struct {
	id          int
	name        string
	email       string
	phoneNumber string
	address     string
	city        string
	postalCode  string
}

// NewParticipant validates each field in order and fails on the first
// rejected one. The id is a placeholder until the registry assigns one.
func NewParticipant(id int, name, email, phoneNumber, address, city, postalCode string) (*Participant, error) {
	p := &Participant{}
	setters := []func() error{
		func() error { return p.SetID(id) },
		func() error { return p.SetName(name) },
		func() error { return p.SetEmail(email) },
		func() error { return p.SetPhoneNumber(phoneNumber) },
		func() error { return p.SetAddress(address) },
		func() error { return p.SetCity(city) },
		func() error { return p.SetPostalCode(postalCode) },
	}
	for _, set := range setters {
		if err := set(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Participant) ID() int             { return p.id }
func (p *Participant) Name() string        { return p.name }
func (p *Participant) Email() string       { return p.email }
func (p *Participant) PhoneNumber() string { return p.phoneNumber }
func (p *Participant) Address() string     { return p.address }
func (p *Participant) City() string        { return p.city }
func (p *Participant) PostalCode() string  { return p.postalCode }

// SetID is used by the registry to overwrite the placeholder id.
func (p *Participant) SetID(id int) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Participant) SetName(name string) error {
	if err := ValidateText("name", name); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Participant) SetEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	p.email = email
	return nil
}

func (p *Participant) SetPhoneNumber(phoneNumber string) error {
	if err := ValidatePhoneNumber(phoneNumber); err != nil {
		return err
	}
	p.phoneNumber = phoneNumber
	return nil
}

func (p *Participant) SetAddress(address string) error {
	if err := ValidateText("address", address); err != nil {
		return err
	}
	p.address = address
	return nil
}

func (p *Participant) SetCity(city string) error {
	if err := ValidateText("city", city); err != nil {
		return err
	}
	p.city = city
	return nil
}

func (p *Participant) SetPostalCode(postalCode string) error {
	if err := ValidatePostalCode(postalCode); err != nil {
		return err
	}
	p.postalCode = postalCode
	return nil
}

// Validate re-runs every field check against the current values.
func (p *Participant) Validate() error {
	checks := []error{
		ValidateID(p.id),
		ValidateText("name", p.name),
		ValidateEmail(p.email),
		ValidatePhoneNumber(p.phoneNumber),
		ValidateText("address", p.address),
		ValidateText("city", p.city),
		ValidatePostalCode(p.postalCode),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// IsValid reports whether Validate passes. The error, if any, goes to the log.
func (p *Participant) IsValid() bool {
	if err := p.Validate(); err != nil {
		log.Warn().Err(err).Int("participant_id", p.id).Msg("participant has invalid values")
		return false
	}
	return true
}

// String renders every field in a fixed order.
func (p *Participant) String() string {
	return fmt.Sprintf("Participant %d: %s, email: %s, phone: %s, address: %s, %s %s",
		p.id, p.name, p.email, p.phoneNumber, p.address, p.postalCode, p.city)
}
