package class

import (
	"errors"
)

// Minor is a 10 bit mid level error classification unique within its Major.
type Minor struct {
	value uint16
	major Major
}

// Description gets the minor's description.
func (m Minor) Description() string {
	if e := m.entry(); e != nil {
		return e.description
	}
	return ""
}

// InBounds checks if the minor value is in the possible 10-bit range.
func (m Minor) InBounds() bool {
	return m.value != 0 && m.value>>minorBitSize == 0
}

// Indexes returns minor's registered indexes.
func (m Minor) Indexes() []Index {
	e := m.entry()
	if e == nil {
		return nil
	}
	indexes := make([]Index, e.children.size())
	for i := range indexes {
		indexes[i] = Index{value: uint16(i + 1), minor: m}
	}
	return indexes
}

// Major gets the minor's root Major.
func (m Minor) Major() Major {
	return m.major
}

// MustRegisterIndex registers and returns index for given minor value.
// Panics if the index name already exists or the minor is not valid.
func (m Minor) MustRegisterIndex(name string, description ...string) Index {
	idx, err := m.RegisterIndex(name, description...)
	if err != nil {
		panic(err)
	}
	return idx
}

// Name gets the minors registered name.
func (m Minor) Name() string {
	if e := m.entry(); e != nil {
		return e.name
	}
	return ""
}

// RegisterIndex registers the index for given Minor.
func (m Minor) RegisterIndex(name string, description ...string) (Index, error) {
	e := m.entry()
	if e == nil {
		return Index{}, errors.New("invalid minor provided")
	}
	value, err := e.children.register(name, description)
	if err != nil {
		return Index{}, err
	}
	return Index{value: value, minor: m}, nil
}

// Valid checks if the Minor is registered.
func (m Minor) Valid() bool {
	return m.valid()
}

// Value gets the minor's uint16 value.
func (m Minor) Value() uint16 {
	return m.value
}

func (m Minor) entry() *entry {
	if !m.InBounds() {
		return nil
	}
	major := m.major.entry()
	if major == nil {
		return nil
	}
	return major.children.get(m.value)
}

func (m Minor) valid() bool {
	return m.entry() != nil
}
