// Package tuple provides an immutable, heterogeneous, fixed-size ordered
// container with structural equality, hashing and lexicographic ordering.
//
// # Overview
//
// A Tuple is a statically sized sequence of values whose elements cannot be
// added, removed or replaced after construction. Every editing operation
// (Insert, Remove, Concat, Sub, ...) is persistent: it returns a new Tuple
// and leaves the receiver observably unchanged. This makes tuples safe to
// share freely, including across goroutines, and suitable as map or
// sorted-container keys.
//
// # Creating Tuples
//
// Use constructor functions to create tuples:
//
//	t := tuple.Of(5, 7, 2.3, 9)
//	s := tuple.FromSlice([]any{"a", "b"})
//	e := tuple.Empty()
//
// OfStrings builds a tuple from the string form of each input:
//
//	t, err := tuple.OfStrings(5, 7) // ("5", "7")
//
// # Access
//
// At returns the element at an index as any. Get is the checked typed
// accessor:
//
//	n, err := tuple.Get[int](t, 0)
//
// # Ordering
//
// Tuples are totally ordered by CompareTo. Elements are compared by their
// string form, not by native ordering, so for example 9 sorts after 10
// ("9" > "10" lexicographically). The ordering is consistent with Equal only
// when element string forms uniquely determine equality; two unequal tuples
// whose elements render identically compare as equal order-wise. This is a
// documented quirk and is kept for compatibility.
//
// # Serialization
//
// Tuples marshal to and from JSON as arrays of type-tagged elements. Element
// types are resolved through the typereg package; types beyond the builtins
// must be registered before decoding.
package tuple
