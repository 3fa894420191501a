package class

import (
	"errors"
)

var majors = newRegistry(maxMajorValue, maxMinorValue)

// Major is a 7 bit top level error classification.
type Major uint8

// Description gets the major registered description.
func (m Major) Description() string {
	if e := m.entry(); e != nil {
		return e.description
	}
	return ""
}

// InBounds checks if the major value is not greater than the allowed size.
func (m Major) InBounds() bool {
	return (m >> majorBitSize) == 0
}

// Minors gets the registered minors for given major 'm'.
func (m Major) Minors() []Minor {
	e := m.entry()
	if e == nil {
		return nil
	}
	minors := make([]Minor, e.children.size())
	for i := range minors {
		minors[i] = Minor{value: uint16(i + 1), major: m}
	}
	return minors
}

// Name returns the major registered name.
func (m Major) Name() string {
	if e := m.entry(); e != nil {
		return e.name
	}
	return ""
}

// MustRegisterMinor registers the minor classification for the major 'm'.
// Panics on failure.
func (m Major) MustRegisterMinor(name string, description ...string) Minor {
	minor, err := m.RegisterMinor(name, description...)
	if err != nil {
		panic(err)
	}
	return minor
}

// RegisterMinor registers the minor classification with the 'name' unique
// within the major 'm' and an optional 'description'.
func (m Major) RegisterMinor(name string, description ...string) (Minor, error) {
	if !m.InBounds() {
		return Minor{}, errors.New("major out of bounds")
	}
	e := m.entry()
	if e == nil {
		return Minor{}, errors.New("major not registered")
	}
	value, err := e.children.register(name, description)
	if err != nil {
		return Minor{}, err
	}
	return Minor{value: value, major: m}, nil
}

func (m Major) entry() *entry {
	if !m.InBounds() {
		return nil
	}
	return majors.get(uint16(m))
}

// RegisterMajor registers new major error classification with provided
// unique 'name' and an optional 'description'.
func RegisterMajor(name string, description ...string) (Major, error) {
	value, err := majors.register(name, description)
	if err != nil {
		return 0, err
	}
	return Major(value), nil
}

// MustRegisterMajor registers new major error classification.
// Panics when the major already exists.
func MustRegisterMajor(name string, description ...string) Major {
	m, err := RegisterMajor(name, description...)
	if err != nil {
		panic(err)
	}
	return m
}
