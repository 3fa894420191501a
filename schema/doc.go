/*
Package schema contains the contracts between the domain models and the jsonapi encoder.

A Schema tells the encoder how to get the resource type, id, attributes and
relationships from a domain object. Schemas are registered for the model types
within the Container, which creates them lazily and reuses them across encodings:

	c := schema.NewContainer()
	err := c.Register(&Author{}, &AuthorSchema{})
	err = c.Register(Comment{}, func() schema.Schema { return &CommentSchema{} })
	err = c.RegisterStruct(&City{}, schema.SnakeCase)

Besides the required Schema methods a schema might implement the optional
capabilities: ResourceLinker, RelationshipLinker, RelationshipLinkPolicy,
IdentifierMetaProvider and ResourceMetaProvider. The encoder uses the defaults
for the capabilities a schema doesn't implement.
*/
package schema
