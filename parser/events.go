package parser

import (
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/schema"
)

// EventKind is the kind of the parse event.
type EventKind int

// Event kinds. The document data markers: EventCollection, EventNull and EventSingle
// are always the first event of the sequence.
const (
	EventCollection EventKind = iota + 1
	EventNull
	EventSingle
	EventResource
	EventIdentifier
)

// String implements fmt.Stringer interface.
func (k EventKind) String() string {
	switch k {
	case EventCollection:
		return "collection"
	case EventNull:
		return "null"
	case EventSingle:
		return "single"
	case EventResource:
		return "resource"
	case EventIdentifier:
		return "identifier"
	}
	return "unknown"
}

// Event is the single element of the parsed sequence.
type Event struct {
	Kind       EventKind
	Position   schema.Position
	Resource   *Resource
	Identifier *Identifier
}

// IsDocumentData checks if the event is the document data marker.
func (e Event) IsDocumentData() bool {
	return e.Kind == EventCollection || e.Kind == EventNull || e.Kind == EventSingle
}

type resourceKey struct {
	resourceType string
	id           string
}

// frame is the element of the traversal stack.
type frame interface {
	// next gets the next event of the frame. The 'alive' is false if the frame is exhausted.
	next(e *Events) (event *Event, alive bool, err error)
}

// Events is the pull iterator over the parse events. The traversal uses an explicit
// stack of frames so that the events are produced one by one on each Next call.
// Stopping the iteration early is valid.
type Events struct {
	container *schema.Container
	ctx       *parseContext
	paths     Paths
	data      interface{}

	visited map[resourceKey]struct{}
	stack   []frame
	current Event
	started bool
	done    bool
	err     error
}

// Next moves to the next event. Returns false when the sequence is finished or an error occurred.
func (e *Events) Next() bool {
	if e.done {
		return false
	}
	if !e.started {
		e.started = true
		event, err := e.start()
		if err != nil {
			return e.fail(err)
		}
		e.current = event
		return true
	}

	for len(e.stack) > 0 {
		top := e.stack[len(e.stack)-1]
		event, alive, err := top.next(e)
		if err != nil {
			return e.fail(err)
		}
		if event != nil {
			e.current = *event
			return true
		}
		if !alive {
			e.stack = e.stack[:len(e.stack)-1]
		}
	}
	e.done = true
	return false
}

// Event gets the current event.
func (e *Events) Event() Event {
	return e.current
}

// Err gets the error that stopped the iteration.
func (e *Events) Err() error {
	return e.err
}

func (e *Events) fail(err error) bool {
	logger.Debugf("Parsing failed: %v", err)
	e.err = err
	e.done = true
	e.stack = nil
	return false
}

func (e *Events) push(f frame) {
	e.stack = append(e.stack, f)
}

// start classifies the root data and returns the document data marker event.
func (e *Events) start() (Event, error) {
	root := schema.Position{}
	data := e.data

	if e.container.HasSchema(data) {
		e.push(&sequenceFrame{position: root, source: single(data)})
		return Event{Kind: EventSingle, Position: root}, nil
	}
	if id, ok := schema.AsIdentifier(data); ok {
		e.push(&sequenceFrame{position: root, source: single(id)})
		return Event{Kind: EventSingle, Position: root}, nil
	}
	if next, ok := sequence(data); ok {
		e.push(&sequenceFrame{position: root, source: next})
		return Event{Kind: EventCollection, Position: root}, nil
	}
	if isNil(data) {
		return Event{Kind: EventNull, Position: root}, nil
	}
	return Event{}, errors.Newf(class.EncodingInvalidInput, "no schema found for the top-level data: '%T'", data)
}

// visit gets the event for the resource 'r'. The resources seen before are emitted
// again only at the root level and their relationships are never expanded twice.
func (e *Events) visit(r *Resource) *Event {
	key := resourceKey{resourceType: r.Type(), id: r.ID()}
	_, seen := e.visited[key]

	if !seen {
		e.visited[key] = struct{}{}
		e.push(&relationshipsFrame{resource: r})
	}
	if !seen || r.Position().Level <= 0 {
		return &Event{Kind: EventResource, Position: r.Position(), Resource: r}
	}
	logger.Debug3f("Resource: '%s' with id: '%s' at path: '%s' already parsed", key.resourceType, key.id, r.Position().Path)
	return nil
}

func single(value interface{}) func() (interface{}, bool) {
	var done bool
	return func() (interface{}, bool) {
		if done {
			return nil, false
		}
		done = true
		return value, true
	}
}

// sequenceFrame iterates over the top-level resources and identifiers.
type sequenceFrame struct {
	position schema.Position
	source   func() (interface{}, bool)
}

func (f *sequenceFrame) next(e *Events) (*Event, bool, error) {
	value, ok := f.source()
	if !ok {
		return nil, false, nil
	}
	if e.container.HasSchema(value) {
		r, err := newResource(e.container, e.ctx, f.position, value)
		if err != nil {
			return nil, false, err
		}
		return e.visit(r), true, nil
	}
	if id, ok := schema.AsIdentifier(value); ok {
		return &Event{Kind: EventIdentifier, Position: f.position, Identifier: newIdentifier(f.position, id)}, true, nil
	}
	return nil, false, errors.Newf(class.EncodingInvalidInput, "top-level element: '%T' is neither a resource nor an identifier", value)
}

// relationshipsFrame walks over the requested relationships of the resource.
type relationshipsFrame struct {
	resource      *Resource
	relationships []*Relationship
	parsed        bool
	index         int
}

func (f *relationshipsFrame) next(e *Events) (*Event, bool, error) {
	if !f.parsed {
		relationships, err := f.resource.Relationships()
		if err != nil {
			return nil, false, err
		}
		f.relationships = relationships
		f.parsed = true
	}

	for f.index < len(f.relationships) {
		rel := f.relationships[f.index]
		f.index++

		if !rel.HasData() || !e.paths.IsRequested(rel.Position().Path) {
			continue
		}
		data, err := rel.Data()
		if err != nil {
			return nil, false, err
		}
		switch data.Kind() {
		case DataResource:
			if event := e.visit(data.Resource()); event != nil {
				return event, true, nil
			}
		case DataCollection:
			if resources := data.Resources(); len(resources) > 0 {
				e.push(&childrenFrame{resources: resources})
				return nil, true, nil
			}
		}
	}
	return nil, false, nil
}

// childrenFrame visits the resources of the relationship collection.
type childrenFrame struct {
	resources []*Resource
	index     int
}

func (f *childrenFrame) next(e *Events) (*Event, bool, error) {
	for f.index < len(f.resources) {
		r := f.resources[f.index]
		f.index++
		if event := e.visit(r); event != nil {
			return event, true, nil
		}
	}
	return nil, false, nil
}
