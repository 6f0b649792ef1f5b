// Package jdom models JSON documents as typed element trees with
// path-addressed reads and writes.
//
// Parse turns document text into an Element, a closed set of variants:
// Null, Bool, Number, String, *Array and *Object. Numbers are exact
// decimals and keep their source literal; objects keep insertion order
// and upsert in place. Compact and Pretty render trees back to text.
//
// The two composite variants implement Composite and carry the path
// operations Query, Assign, Delete and Update. A path expression is a
// chain of dot-separated segments compiled by ParsePath; each segment can
// be marked optional ('?': a missing child resolves to nil instead of
// ErrNotFound) or lenient ('~': a scalar in the way resolves to nil
// instead of ErrTypeMismatch):
//
//	doc, err := jdom.ParseObject(`{"users":[{"name":"ada"}]}`)
//	...
//	el, err := jdom.Query(doc, "users.0.name")    // String("ada")
//	_, err = jdom.Assign(doc, "users.0.role", jdom.String("admin"))
//	el, err = jdom.Query(doc, "users.1?.name")    // nil, nil
//
// Assigning past the end of an array pads the gap with Null elements.
// Failed operations leave the tree unchanged.
//
// Trees are not safe for concurrent mutation: callers sharing a tree
// across goroutines synchronize externally or hand off clones.
package jdom
