package graph

import (
	"context"
	"fmt"
	"io"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Graph is an insertion-ordered, duplicate-free triple collection.
//
// Pattern lookups iterate in insertion order, which for parsed documents is
// the statement order of the source. Profile semantics such as "the first
// distribution with a registry match wins" depend on this.
type Graph struct {
	triples  []rdf.Triple
	seen     map[tripleKey]struct{}
	prefixes map[string]string
}

type tripleKey struct {
	s, p, o string
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		seen:     make(map[tripleKey]struct{}),
		prefixes: make(map[string]string),
	}
}

func key(s rdf.Term, p string, o rdf.Term) tripleKey {
	return tripleKey{s: s.String(), p: p, o: o.String()}
}

// Add inserts the triple if it is not already present.
func (g *Graph) Add(s rdf.Term, p string, o rdf.Term) {
	if s == nil || o == nil || p == "" {
		return
	}
	k := key(s, p, o)
	if _, dup := g.seen[k]; dup {
		return
	}
	g.seen[k] = struct{}{}
	g.triples = append(g.triples, rdf.Triple{S: s, P: rdf.IRI{Value: p}, O: o})
}

// Bind records a prefix for the namespace, used when serializing to
// prefix-aware syntaxes.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Len returns the number of triples.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the underlying triples in insertion order. The slice is
// shared; callers must not mutate it.
func (g *Graph) Triples() []rdf.Triple {
	return g.triples
}

// Has reports whether a triple matching the pattern exists. A nil subject
// or object matches anything.
func (g *Graph) Has(s rdf.Term, p string, o rdf.Term) bool {
	for _, t := range g.triples {
		if p != "" && t.P.Value != p {
			continue
		}
		if s != nil && t.S != s {
			continue
		}
		if o != nil && t.O != o {
			continue
		}
		return true
	}
	return false
}

// Objects returns all objects of triples with the given subject and
// predicate, in insertion order.
func (g *Graph) Objects(s rdf.Term, p string) []rdf.Term {
	var out []rdf.Term
	for _, t := range g.triples {
		if t.S == s && t.P.Value == p {
			out = append(out, t.O)
		}
	}
	return out
}

// FirstObject returns the first object for the subject and predicate, or
// nil if none exists.
func (g *Graph) FirstObject(s rdf.Term, p string) rdf.Term {
	for _, t := range g.triples {
		if t.S == s && t.P.Value == p {
			return t.O
		}
	}
	return nil
}

// Subjects returns all subjects of triples with the given predicate and
// object, in insertion order without duplicates. A nil object matches any.
func (g *Graph) Subjects(p string, o rdf.Term) []rdf.Term {
	var out []rdf.Term
	found := make(map[string]struct{})
	for _, t := range g.triples {
		if t.P.Value != p {
			continue
		}
		if o != nil && t.O != o {
			continue
		}
		if _, dup := found[t.S.String()]; dup {
			continue
		}
		found[t.S.String()] = struct{}{}
		out = append(out, t.S)
	}
	return out
}

// Load parses a concrete syntax ("turtle", "ntriples", "rdfxml", "jsonld",
// "trig", "nquads") from r and adds every statement to the graph. Named
// graph information in quad formats is discarded.
func (g *Graph) Load(ctx context.Context, r io.Reader, format string) error {
	f, ok := rdf.ParseFormat(format)
	if !ok || f == rdf.FormatAuto {
		return fmt.Errorf("parse %s: unknown format: %s", format, format)
	}
	err := rdf.Parse(ctx, r, f, func(st rdf.Statement) error {
		t := st.AsTriple()
		g.Add(t.S, t.P.Value, t.O)
		return nil
	})
	if err != nil {
		return fmt.Errorf("parse %s: %w", format, err)
	}
	return nil
}

// Write serializes the graph to w in the given concrete syntax. The
// underlying encoders expose no prefix options, so bound prefixes do not
// affect the output.
func (g *Graph) Write(ctx context.Context, w io.Writer, format string) error {
	f, ok := rdf.ParseFormat(format)
	if !ok || f == rdf.FormatAuto {
		return fmt.Errorf("serialize %s: unknown format: %s", format, format)
	}
	enc, err := rdf.NewWriter(w, f, rdf.OptContext(ctx))
	if err != nil {
		return fmt.Errorf("serialize %s: %w", format, err)
	}
	for _, t := range g.triples {
		if err := enc.Write(t.ToStatement()); err != nil {
			return fmt.Errorf("serialize %s: %w", format, err)
		}
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("serialize %s: %w", format, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("serialize %s: %w", format, err)
	}
	return nil
}
