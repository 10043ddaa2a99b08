package profiles

import (
	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/graph"
)

// Record is any value holder with the portal lookup rule: top-level
// field, then extras, then the legacy dcat_-prefixed extras key. Both
// dataset.Dataset and dataset.Resource satisfy it.
type Record interface {
	Value(key string) (any, bool)
	StringValue(key string) string
}

// termKind selects how a record value is rendered as an RDF term.
type termKind int

const (
	// literalTerm renders the value as a plain literal.
	literalTerm termKind = iota
	// refTerm renders the value as a cleaned reference.
	refTerm
	// refOrLiteralTerm renders http(s) values that survive cleaning as
	// references and everything else as literals.
	refOrLiteralTerm
)

// tripleSpec describes one record-key-to-predicate mapping.
type tripleSpec struct {
	key       string
	predicate string
	fallbacks []string
	kind      termKind
	datatype  string
	modifier  func(string) string
}

// addTriples applies each spec as a single-value triple.
func (b *Base) addTriples(r Record, subject rdf.Term, specs []tripleSpec) {
	for _, spec := range specs {
		b.addTriple(r, subject, spec)
	}
}

// addDateTriples applies each spec as a date triple.
func (b *Base) addDateTriples(r Record, subject rdf.Term, specs []tripleSpec) {
	for _, spec := range specs {
		if value := b.recordValue(r, spec); value != "" {
			b.addDateTriple(subject, spec.predicate, value)
		}
	}
}

// addListTriples applies each spec as a list triple: the raw value is
// decoded with the JSON-then-comma list rule and one triple is written
// per item.
func (b *Base) addListTriples(r Record, subject rdf.Term, specs []tripleSpec) {
	for _, spec := range specs {
		raw, ok := b.recordRawValue(r, spec)
		if !ok {
			continue
		}
		for _, item := range dataset.ReadListValue(raw) {
			if item == "" {
				continue
			}
			b.g.Add(subject, spec.predicate, b.specTerm(spec, item))
		}
	}
}

// addTriple writes one triple from the record, honoring the spec's
// fallback keys, modifier, term kind and datatype.
func (b *Base) addTriple(r Record, subject rdf.Term, spec tripleSpec) {
	value := b.recordValue(r, spec)
	if value == "" {
		return
	}
	b.g.Add(subject, spec.predicate, b.specTerm(spec, value))
}

func (b *Base) specTerm(spec tripleSpec, value string) rdf.Term {
	switch {
	case spec.kind == refTerm:
		return graph.CleanedRef(value)
	case spec.kind == refOrLiteralTerm:
		return graph.TermOrLiteral(value)
	case spec.datatype != "":
		return graph.TypedLiteral(value, spec.datatype)
	default:
		return graph.Literal(value)
	}
}

// recordValue resolves the spec's key chain to a string and applies the
// modifier.
func (b *Base) recordValue(r Record, spec tripleSpec) string {
	value := r.StringValue(spec.key)
	for _, fallback := range spec.fallbacks {
		if value != "" {
			break
		}
		value = r.StringValue(fallback)
	}
	if value != "" && spec.modifier != nil {
		value = spec.modifier(value)
	}
	return value
}

// recordRawValue resolves the spec's key chain without stringifying, so
// list-valued fields keep their slice shape.
func (b *Base) recordRawValue(r Record, spec tripleSpec) (any, bool) {
	if v, ok := r.Value(spec.key); ok && !isEmptyValue(v) {
		return v, true
	}
	for _, fallback := range spec.fallbacks {
		if v, ok := r.Value(fallback); ok && !isEmptyValue(v) {
			return v, true
		}
	}
	return nil, false
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}
