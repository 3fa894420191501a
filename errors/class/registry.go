package class

import (
	"errors"
	"fmt"
	"sync"
)

// registry stores the names and descriptions of a single classification level.
// The registered values starts from 1. Each entry might nest the registry of
// the lower level, i.e. the major entries contains the minors registry.
type registry struct {
	lock       sync.RWMutex
	limit      int
	childLimit int
	entries    []*entry
	byName     map[string]uint16
}

type entry struct {
	name        string
	description string
	children    *registry
}

func newRegistry(limit, childLimit int) *registry {
	return &registry{
		limit:      limit,
		childLimit: childLimit,
		byName:     map[string]uint16{},
	}
}

func (r *registry) register(name string, description []string) (uint16, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.byName[name]; exists {
		return 0, fmt.Errorf("classification: '%s' already registered", name)
	}
	value := len(r.entries) + 1
	if value > r.limit {
		return 0, errors.New("too many classifications registered")
	}

	e := &entry{name: name}
	if len(description) > 0 {
		e.description = description[0]
	}
	if r.childLimit > 0 {
		e.children = newRegistry(r.childLimit, r.nestedLimit())
	}
	r.entries = append(r.entries, e)
	r.byName[name] = uint16(value)
	return uint16(value), nil
}

// nestedLimit is the limit of the registry two levels below 'r'.
func (r *registry) nestedLimit() int {
	if r.childLimit == maxMinorValue {
		return maxIndexValue
	}
	return 0
}

func (r *registry) get(value uint16) *entry {
	if r == nil || value == 0 {
		return nil
	}
	r.lock.RLock()
	defer r.lock.RUnlock()

	if int(value) > len(r.entries) {
		return nil
	}
	return r.entries[value-1]
}

func (r *registry) size() int {
	if r == nil {
		return 0
	}
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.entries)
}

func (r *registry) reset() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.entries = nil
	r.byName = map[string]uint16{}
}
