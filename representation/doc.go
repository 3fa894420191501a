/*
Package representation contains the writers that assemble the parse events
into the ordered jsonapi document structure and the filters of the resource
fields (sparse field sets).

The writers never produce the JSON text. They build the nested ordered maps
and slices that are marshaled afterwards, so the member order of the output
follows the schema order.
*/
package representation
