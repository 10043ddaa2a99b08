// Package graph provides the in-memory triple collection the mapping
// profiles read from and write to, together with the term constructors
// that decide between reference nodes and literals.
//
// The store keeps triples in insertion order and deduplicates on add, so
// "first matching object" lookups are deterministic for a given input
// document. Concrete syntaxes (Turtle, N-Triples, RDF/XML, JSON-LD, TriG,
// N-Quads) are handled by the rdf-go codec; the store itself never touches
// serialization details beyond the prefix table it hands to the encoder.
//
// A Graph is request scoped: build one per parse or serialize operation
// and discard it afterwards. It is not safe for concurrent mutation.
package graph
