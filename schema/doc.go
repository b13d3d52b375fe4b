// Package schema binds names and declared types to tuple positions.
//
// A Schema is an immutable ordered mapping from attribute names to
// zero-based indices and declared types; it is built incrementally with a
// Builder and may be shared by any number of bound tuples. A Bound couples
// a schema with a tuple whose values were checked against the declared
// types at construction; since tuples never change in place, the check
// holds for the lifetime of the value.
//
// Type checking is by exact type identity, not assignability: a value
// conforms to a declared type only when reflect.TypeOf(value) is that very
// type. An attribute declared without a type (nil) is unconstrained and
// accepts any value.
package schema
