package profiles

import (
	"strconv"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/kangmoesss/ckanext-dcat/graph"
	"github.com/kangmoesss/ckanext-dcat/vocabulary"
)

// object returns the first object for the subject and predicate, or nil.
func (b *Base) object(subject rdf.Term, predicate string) rdf.Term {
	return b.g.FirstObject(subject, predicate)
}

// objectValue returns the string value of an object with language-tag
// preference: a literal tagged with the default locale wins immediately;
// otherwise the first literal seen is the fallback. Non-literal objects
// are returned as-is (references have no language). Returns "" when
// nothing matches — callers treat the empty string as absent.
func (b *Base) objectValue(subject rdf.Term, predicate string) string {
	fallback := ""
	for _, o := range b.g.Objects(subject, predicate) {
		lit, ok := o.(rdf.Literal)
		if !ok {
			return graph.TermText(o)
		}
		if lit.Lang != "" && lit.Lang == b.cfg.DefaultLocale {
			return lit.Lexical
		}
		if fallback == "" {
			fallback = lit.Lexical
		}
	}
	return fallback
}

// objectValueMulti tries predicates in order; the first non-empty value
// wins.
func (b *Base) objectValueMulti(subject rdf.Term, predicates []string) string {
	value := ""
	for _, predicate := range predicates {
		value = b.objectValue(subject, predicate)
		if value != "" {
			break
		}
	}
	return value
}

// objectValueInt parses the object value as an integer, accepting values
// that parse as a float and truncate cleanly.
func (b *Base) objectValueInt(subject rdf.Term, predicate string) (int64, bool) {
	value := b.objectValue(subject, predicate)
	if value == "" {
		return 0, false
	}
	return parseLooseInt(value)
}

// objectValueIntList collects every parseable integer object, silently
// dropping unparseable items.
func (b *Base) objectValueIntList(subject rdf.Term, predicate string) []int64 {
	var out []int64
	for _, o := range b.g.Objects(subject, predicate) {
		if n, ok := parseLooseInt(graph.TermText(o)); ok {
			out = append(out, n)
		}
	}
	return out
}

func parseLooseInt(value string) (int64, bool) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return int64(f), true
}

// objectValueList returns the string form of every matching object.
func (b *Base) objectValueList(subject rdf.Term, predicate string) []string {
	var out []string
	for _, o := range b.g.Objects(subject, predicate) {
		out = append(out, graph.TermText(o))
	}
	return out
}

// vcardPropertyValue reads a vCard property, preferring the simple string
// property, then the structured one (through vcard:hasValue for blank
// nodes).
func (b *Base) vcardPropertyValue(subject rdf.Term, predicate, stringProperty string) string {
	if stringProperty != "" {
		if result := b.objectValue(subject, stringProperty); result != "" {
			return result
		}
	}
	obj := b.object(subject, predicate)
	if graph.IsBlank(obj) {
		return b.objectValue(obj, vocabulary.VCardHasValue)
	}
	return b.objectValue(subject, predicate)
}

// accessRights returns the rights statement for the subject: the label of
// a typed dct:RightsStatement blank node, else the raw literal or
// reference text, else "".
func (b *Base) accessRights(subject rdf.Term, predicate string) string {
	obj := b.object(subject, predicate)
	if obj == nil {
		return ""
	}
	if graph.IsBlank(obj) {
		if t := b.object(obj, vocabulary.RDFType); t != nil && graph.RefValue(t) == vocabulary.DCTRightsStatement {
			return b.objectValue(obj, vocabulary.RDFSLabel)
		}
		return ""
	}
	return graph.TermText(obj)
}
