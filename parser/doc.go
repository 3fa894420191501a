/*
Package parser walks the graph of the domain objects exposed by the schemas
and produces the flat, ordered sequence of the parse events.

The parsing is lazy. The events are pulled one by one from the Events iterator:

	events := parser.New(container, fieldSets).Parse(data, []string{"comments.author"})
	for events.Next() {
		event := events.Event()
		...
	}
	if err := events.Err(); err != nil {
		...
	}

The first event is always the document data marker: EventCollection, EventNull
or EventSingle. It is followed by the resources and identifiers in depth-first
pre-order. The relationships of a resource are expanded only when their path is
requested by the include paths and only the first time the resource is reached,
which terminates the traversal of the cyclic graphs.
*/
package parser
